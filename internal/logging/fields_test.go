package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "nhl-scoreboard", "1.4.0")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "nhl-scoreboard" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "1.4.0" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldGameID, "2024020001")}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldGameID {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestWithCommonServiceOnly(t *testing.T) {
	attrs := WithCommon(nil, "nhl-scoreboard", "")
	if len(attrs) != 1 || attrs[0].Key != FieldService {
		t.Fatalf("expected just the service attr, got %+v", attrs)
	}
}
