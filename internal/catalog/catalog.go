// internal/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"franchise-fit/internal/models"
)

var (
	ErrDuplicateSlug     = errors.New("duplicate franchise slug")
	ErrInvalidFranchise  = errors.New("invalid franchise record")
	ErrInvalidInvestment = errors.New("investment filter must look like min-max")
)

// Catalog is an immutable, in-memory set of franchises. It is safe for
// concurrent readers.
type Catalog struct {
	items  []models.Franchise
	bySlug map[string]int
}

// New validates records and builds a catalog. Input order is kept.
func New(items []models.Franchise) (*Catalog, error) {
	c := &Catalog{
		items:  make([]models.Franchise, len(items)),
		bySlug: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, f := range c.items {
		if err := validate(f); err != nil {
			return nil, err
		}
		key := slugKey(f.Slug)
		if _, dup := c.bySlug[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, f.Slug)
		}
		c.bySlug[key] = i
	}
	return c, nil
}

func slugKey(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func validate(f models.Franchise) error {
	switch {
	case slugKey(f.Slug) == "":
		return fmt.Errorf("%w: missing slug (name %q)", ErrInvalidFranchise, f.Name)
	case f.InvestmentMin < 0 || f.InvestmentMax < f.InvestmentMin:
		return fmt.Errorf("%w: %s investment range %d-%d", ErrInvalidFranchise, f.Slug, f.InvestmentMin, f.InvestmentMax)
	case f.UnitCount < 0:
		return fmt.Errorf("%w: %s negative unit count", ErrInvalidFranchise, f.Slug)
	}
	return nil
}

func (c *Catalog) Len() int { return len(c.items) }

// All returns a copy of every record in load order.
func (c *Catalog) All() []models.Franchise {
	out := make([]models.Franchise, len(c.items))
	copy(out, c.items)
	return out
}

// BySlug looks a franchise up by slug, ignoring case.
func (c *Catalog) BySlug(slug string) (models.Franchise, bool) {
	i, ok := c.bySlug[slugKey(slug)]
	if !ok {
		return models.Franchise{}, false
	}
	return c.items[i], true
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range c.items {
		if f.Category == "" {
			continue
		}
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		out = append(out, f.Category)
	}
	sort.Strings(out)
	return out
}

// Filter narrows the catalog for browsing. Zero fields match everything.
type Filter struct {
	// Query is matched as a case-insensitive substring of the name.
	Query string `json:"query,omitempty"`
	// Category must match exactly.
	Category string `json:"category,omitempty"`
	// Investment is "min-max" in dollars; a franchise matches when its
	// investment range overlaps it.
	Investment string `json:"investment,omitempty"`
}

// InvestmentRange is a parsed Filter.Investment.
type InvestmentRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ParseInvestment parses "min-max". An empty string yields ok=false.
func ParseInvestment(s string) (r InvestmentRange, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return r, false, nil
	}
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return r, false, fmt.Errorf("%w: %q", ErrInvalidInvestment, s)
	}
	if r.Min, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return r, false, fmt.Errorf("%w: %q", ErrInvalidInvestment, s)
	}
	if r.Max, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return r, false, fmt.Errorf("%w: %q", ErrInvalidInvestment, s)
	}
	if r.Min < 0 || r.Max < r.Min {
		return r, false, fmt.Errorf("%w: %q", ErrInvalidInvestment, s)
	}
	return r, true, nil
}

// Overlaps reports whether f's investment range intersects r.
func (r InvestmentRange) Overlaps(f models.Franchise) bool {
	return f.InvestmentMin <= r.Max && f.InvestmentMax >= r.Min
}

// Filter returns the matching franchises in catalog order.
func (c *Catalog) Filter(f Filter) ([]models.Franchise, error) {
	inv, hasInv, err := ParseInvestment(f.Investment)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Franchise, 0, len(c.items))
	for _, item := range c.items {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if hasInv && !inv.Overlaps(item) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
