package speaker

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/tsawler/notemark/model"
)

const (
	// DefaultExpiration is how long an unused palette stays cached.
	DefaultExpiration = 30 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// Assigner hands out speaker palettes, caching them by normalized name.
type Assigner struct {
	cache *cache.Cache
}

// NewAssigner creates an Assigner whose entries expire after ttl.
// A non-positive ttl uses DefaultExpiration.
func NewAssigner(ttl time.Duration) *Assigner {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &Assigner{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Palette returns the palette for name.
func (a *Assigner) Palette(name string) model.Palette {
	key := Normalize(name)
	if v, ok := a.cache.Get(key); ok {
		return v.(model.Palette)
	}
	p := PaletteFor(name)
	a.cache.SetDefault(key, p)
	return p
}

// Len returns the number of cached palettes.
func (a *Assigner) Len() int {
	return a.cache.ItemCount()
}

// Flush drops every cached palette.
func (a *Assigner) Flush() {
	a.cache.Flush()
}

// Sides alternates dialogue line placement in emission order.
// The zero value starts on the left.
type Sides struct {
	emitted int
}

// Next returns the side of the next emitted line.
func (s *Sides) Next() model.Side {
	side := model.SideLeft
	if s.emitted%2 == 1 {
		side = model.SideRight
	}
	s.emitted++
	return side
}

// Emitted returns how many lines have been placed.
func (s *Sides) Emitted() int {
	return s.emitted
}
