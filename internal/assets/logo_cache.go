// Package assets serves team visuals: cached logo bitmaps loaded from
// RGB565 files, and team color palettes for animations.
package assets

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"nhl-scoreboard/internal/render"
)

const (
	cacheSlots    = 6
	negativeSlots = 4

	// negativeRetryDelay is how long a failed load suppresses re-reads.
	negativeRetryDelay = 3 * time.Second
)

type logoSlot struct {
	abbrev string
	bitmap render.Bitmap
}

type negativeEntry struct {
	abbrev  string
	retryAt time.Time
}

// LogoCache holds a small fixed number of decoded logos plus a negative
// cache so missing files are not retried on every frame.
type LogoCache struct {
	mu       sync.Mutex
	dir      string
	now      func() time.Time
	slots    [cacheSlots]logoSlot
	negative [negativeSlots]negativeEntry
}

// NewLogoCache builds a cache reading logo files from dir.
func NewLogoCache(dir string) *LogoCache {
	return &LogoCache{dir: dir, now: time.Now}
}

// WithClock overrides the cache's clock. Intended for tests.
func (c *LogoCache) WithClock(now func() time.Time) *LogoCache {
	c.now = now
	return c
}

// Get returns the logo for a team abbreviation, loading it on first use.
// Lookup is case-insensitive. A load failure is remembered and retried only
// after the negative-cache delay.
func (c *LogoCache) Get(abbrev string) (render.Bitmap, bool) {
	key := strings.ToUpper(strings.TrimSpace(abbrev))
	if key == "" {
		return render.Bitmap{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.slots {
		if c.slots[i].abbrev == key {
			return c.slots[i].bitmap, true
		}
	}

	if c.negativeHit(key) {
		return render.Bitmap{}, false
	}

	bm, err := loadLogoFile(filepath.Join(c.dir, key+".rgb565"))
	if err != nil {
		c.rememberNegative(key)
		return render.Bitmap{}, false
	}

	target := -1
	for i := range c.slots {
		if c.slots[i].abbrev == "" {
			target = i
			break
		}
	}
	if target < 0 {
		// Full cache: reuse slot 0. Two teams plus goal animations never
		// need more than the slot count in practice.
		target = 0
	}
	c.slots[target] = logoSlot{abbrev: key, bitmap: bm}
	return bm, true
}

// Clear drops every cached logo and negative entry. Called when the tracked
// game changes.
func (c *LogoCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.slots {
		c.slots[i] = logoSlot{}
	}
	for i := range c.negative {
		c.negative[i] = negativeEntry{}
	}
}

func (c *LogoCache) negativeHit(key string) bool {
	now := c.now()
	for i := range c.negative {
		if c.negative[i].abbrev == key {
			return now.Before(c.negative[i].retryAt)
		}
	}
	return false
}

func (c *LogoCache) rememberNegative(key string) {
	retryAt := c.now().Add(negativeRetryDelay)
	for i := range c.negative {
		if c.negative[i].abbrev == key {
			c.negative[i].retryAt = retryAt
			return
		}
	}
	for i := range c.negative {
		if c.negative[i].abbrev == "" {
			c.negative[i] = negativeEntry{abbrev: key, retryAt: retryAt}
			return
		}
	}
	c.negative[0] = negativeEntry{abbrev: key, retryAt: retryAt}
}

// loadLogoFile reads a square RGB565 little-endian logo. Only the two sizes
// the logo build pipeline produces are accepted.
func loadLogoFile(path string) (render.Bitmap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return render.Bitmap{}, err
	}
	size, err := logoSizeFromBytes(len(raw))
	if err != nil {
		return render.Bitmap{}, err
	}

	pixels := make([]render.Color, size*size)
	for i := range pixels {
		v := binary.LittleEndian.Uint16(raw[i*2:])
		pixels[i] = render.DecodeRGB565(render.AdjustForLowDepth(v))
	}
	return render.Bitmap{Width: size, Height: size, Pixels: pixels}, nil
}

func logoSizeFromBytes(n int) (int, error) {
	switch n {
	case 20 * 20 * 2:
		return 20, nil
	case 25 * 25 * 2:
		return 25, nil
	default:
		return 0, errBadLogoSize
	}
}
