package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/singitronic/storefront/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortToken(t *testing.T) {
	cases := []struct {
		raw   string
		field string
		dir   string
	}{
		{"sort=priceAsc", "price", "asc"},
		{"sort=priceDesc", "price", "desc"},
		{"sort=titleAsc&page=2", "title", "asc"},
		{"page=2&sort=ratingDesc", "rating", "desc"},
		{"sort=price", "price", "asc"},
		{"page=3", "", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		field, dir := parseSortToken(c.raw)
		assert.Equal(t, c.field, field, "raw=%q", c.raw)
		assert.Equal(t, c.dir, dir, "raw=%q", c.raw)
	}
}

func TestParseListOptionsPagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?page=3", nil)
	opts := parseListOptions(r)
	assert.Equal(t, 20, opts.Skip, "skip steps by 10 per page")
	assert.Equal(t, 12, opts.Take, "take stays at 12")

	r = httptest.NewRequest("GET", "/api/products", nil)
	opts = parseListOptions(r)
	assert.Equal(t, 0, opts.Skip, "missing page means page 1")

	r = httptest.NewRequest("GET", "/api/products?page=junk", nil)
	opts = parseListOptions(r)
	assert.Equal(t, 0, opts.Skip, "junk page means page 1")
}

func TestParseFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?filters[price][$lte]=3000&filters[rating][$gte]=1", nil)
	filters := parseFilters(r)
	require.Len(t, filters, 2)

	byField := map[string]repositories.Filter{}
	for _, f := range filters {
		byField[f.Field] = f
	}
	assert.Equal(t, repositories.Filter{Field: "price", Op: "lte", Value: "3000"}, byField["price"])
	assert.Equal(t, repositories.Filter{Field: "rating", Op: "gte", Value: "1"}, byField["rating"])
}

func TestParseFiltersIgnoresMalformedKeys(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?filters[price=3000&filters[price][lte]=1&other=2", nil)
	assert.Empty(t, parseFilters(r))
}
