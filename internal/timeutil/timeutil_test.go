package timeutil

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"20:00", 1200, false},
		{"0:00", 0, false},
		{"04:37", 277, false},
		{"", 0, true},
		{"20", 0, true},
		{"xx:10", 0, true},
		{"10:xx", 0, true},
		{"10:75", 0, true},
		{"-1:30", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseClock(%q) err = %v, want err %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestElapsedFromRemaining(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"20:00", "0:00"},
		{"0:00", "20:00"},
		{"12:34", "7:26"},
		{"garbage", "??:??"},
		{"", "??:??"},
	}
	for _, tc := range cases {
		if got := ElapsedFromRemaining(tc.in); got != tc.want {
			t.Errorf("ElapsedFromRemaining(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseOffsetMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"-05:00", -300},
		{"+01:30", 90},
		{"", 0},
		{"05:00", 0},
		{"-5", 0},
		{"-aa:00", 0},
	}
	for _, tc := range cases {
		if got := ParseOffsetMinutes(tc.in); got != tc.want {
			t.Errorf("ParseOffsetMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLocalizeStartTime(t *testing.T) {
	cases := []struct {
		utc    string
		offset string
		want   string
	}{
		{"2026-02-11T23:30:00Z", "-05:00", "18H30"},
		{"2026-02-11T23:00:00Z", "-05:00", "18H"},
		{"2026-02-11T02:00:00Z", "-05:00", "21H"},
		{"2026-02-11T23:30:00Z", "+01:30", "01H"},
		{"not-a-time", "-05:00", "??:??"},
		{"", "", "??:??"},
	}
	for _, tc := range cases {
		if got := LocalizeStartTime(tc.utc, tc.offset); got != tc.want {
			t.Errorf("LocalizeStartTime(%q, %q) = %q, want %q", tc.utc, tc.offset, got, tc.want)
		}
	}
}

func TestStartTimeLocal(t *testing.T) {
	date, minute, shift, ok := StartTimeLocal("2026-02-11T02:00:00Z", "-05:00")
	if !ok {
		t.Fatal("expected ok")
	}
	if date != "2026-02-11" || minute != 21*60 || shift != -1 {
		t.Fatalf("unexpected date=%s minute=%d shift=%d", date, minute, shift)
	}

	if _, _, _, ok := StartTimeLocal("junk", ""); ok {
		t.Fatal("expected parse failure")
	}
}
