package catalog

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"$129.99":   "129.99",
		"1,299.50":  "1299.5",
		"USD 10":    "10",
		"":          "0",
		"free":      "0",
		"$1.2.3":    "0",
		"€ 24.99 ":  "24.99",
	}
	for in, want := range cases {
		assert.True(t, ParsePrice(in).Equal(decimal.RequireFromString(want)), "%q -> %s", in, ParsePrice(in))
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$5.00", FormatPrice(decimal.NewFromInt(5)))
}

func TestApplyCategoryAndSort(t *testing.T) {
	page := Apply(Seed, Query{Category: "Electronics", Sort: SortPriceLow})
	require.Equal(t, 4, page.Total)
	assert.Equal(t, "9", page.Products[0].ID)
	assert.Equal(t, "2", page.Products[3].ID)

	page = Apply(Seed, Query{Category: "electronics", Sort: SortPriceHigh})
	require.Equal(t, 4, page.Total)
	assert.Equal(t, "2", page.Products[0].ID)
}

func TestApplyFeaturedKeepsOrder(t *testing.T) {
	page := Apply(Seed, Query{Category: AllCategories})
	require.Len(t, page.Products, 12)
	for i, p := range page.Products {
		assert.Equal(t, Seed[i].ID, p.ID)
	}
	assert.Equal(t, 1, page.TotalPages)
}

func TestApplyRatingIsStable(t *testing.T) {
	page := Apply(Seed, Query{Sort: SortRating})
	assert.Equal(t, "2", page.Products[0].ID)
	assert.Equal(t, "8", page.Products[1].ID)
}

func TestApplyPagination(t *testing.T) {
	page := Apply(Seed, Query{PerPage: 5, Page: 3})
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, "11", page.Products[0].ID)

	page = Apply(Seed, Query{PerPage: 5, Page: 9})
	assert.Empty(t, page.Products)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "Electronics", "Sports", "Fashion", "Home & Garden"}, Categories(Seed))
}

func TestStaticSource(t *testing.T) {
	src := Static{Products: Seed}
	p, err := src.ProductByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Running Shoes", p.Name)

	_, err = src.ProductByID(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "home-and-garden", Slug("Home & Garden"))

	page := Apply(Seed, Query{Category: "home-and-garden"})
	assert.Equal(t, 2, page.Total)
}

func TestApplyHugePageIsEmpty(t *testing.T) {
	for _, page := range []int{math.MaxInt64, math.MaxInt64 / 6, math.MaxInt64/PerPage + 1, 2} {
		var got Page
		assert.NotPanics(t, func() { got = Apply(Seed, Query{Page: page}) }, "page %d", page)
		assert.Empty(t, got.Products, "page %d", page)
		assert.Equal(t, 12, got.Total)
		assert.Equal(t, 1, got.TotalPages)
	}
}
