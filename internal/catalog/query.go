package catalog

import (
	"github.com/gosimple/slug"
	"sort"
	"strings"
)

const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"

	AllCategories = "All"
	PerPage       = 12
)

type Query struct {
	Category string // display name or slug; empty or "All" matches everything
	Sort     string
	Page     int // 1-based
	PerPage  int
}

type Page struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

// Slug is the URL form of a category name.
func Slug(category string) string { return slug.Make(category) }

func matchesCategory(p Product, want string) bool {
	if want == "" || strings.EqualFold(want, AllCategories) {
		return true
	}
	return p.Category == want || Slug(p.Category) == want
}

// Apply filters, sorts and paginates products. The featured order is the
// source order.
func Apply(products []Product, q Query) Page {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, q.Category) {
			filtered = append(filtered, p)
		}
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return ParsePrice(filtered[i].Price).LessThan(ParsePrice(filtered[j].Price))
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return ParsePrice(filtered[i].Price).GreaterThan(ParsePrice(filtered[j].Price))
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	}

	per := q.PerPage
	if per <= 0 {
		per = PerPage
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	totalPages := (len(filtered) + per - 1) / per
	// past the last page: empty, and (page-1)*per is never computed so it cannot overflow
	start := len(filtered)
	if page-1 < totalPages {
		start = (page - 1) * per
	}
	end := start + per
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page{
		Products:   filtered[start:end],
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}
}

// Categories returns "All" followed by each distinct category in first-seen order.
func Categories(products []Product) []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
