package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/singitronic/storefront/app/repositories"
)

// Catalog listing query shaping.
//
// The storefront client sends three kinds of parameters:
//
//	page=2                          pagination
//	sort=priceAsc                   "<field><Asc|Desc>" token
//	filters[price][$lte]=3000       filter expressions
//
// The sort token is read from the raw query string rather than the parsed
// values, matching the behaviour storefront clients already depend on.
const (
	catalogPageSize = 10
	catalogTake     = 12
)

// parseListOptions derives the catalog query shape from the request.
// Note the skip step uses a page size of 10 while the take is 12; the
// mismatch is kept on purpose, existing clients paginate against it.
func parseListOptions(r *http.Request) repositories.ListOptions {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	opts := repositories.ListOptions{
		Skip: (page - 1) * catalogPageSize,
		Take: catalogTake,
	}

	opts.SortField, opts.SortDir = parseSortToken(r.URL.RawQuery)
	opts.Filters = parseFilters(r)
	return opts
}

// parseSortToken extracts the sort=<field><Asc|Desc> token from the raw
// query string and splits it into a field and a direction.
func parseSortToken(rawQuery string) (field, dir string) {
	var token string
	for _, pair := range strings.Split(rawQuery, "&") {
		if v, ok := strings.CutPrefix(pair, "sort="); ok {
			token = v
			break
		}
	}
	if token == "" {
		return "", ""
	}

	switch {
	case strings.HasSuffix(token, "Desc"):
		return strings.TrimSuffix(token, "Desc"), "desc"
	case strings.HasSuffix(token, "Asc"):
		return strings.TrimSuffix(token, "Asc"), "asc"
	default:
		return token, "asc"
	}
}

// parseFilters collects filters[<field>][$<op>]=<value> expressions.
func parseFilters(r *http.Request) []repositories.Filter {
	var filters []repositories.Filter
	for key, values := range r.URL.Query() {
		if !strings.HasPrefix(key, "filters[") || len(values) == 0 {
			continue
		}

		rest := strings.TrimPrefix(key, "filters[")
		end := strings.Index(rest, "]")
		if end < 0 {
			continue
		}
		field := rest[:end]

		rest = rest[end:]
		opStart := strings.Index(rest, "[$")
		opEnd := strings.LastIndex(rest, "]")
		if opStart < 0 || opEnd <= opStart+2 {
			continue
		}
		op := rest[opStart+2 : opEnd]

		filters = append(filters, repositories.Filter{
			Field: field,
			Op:    op,
			Value: values[0],
		})
	}
	return filters
}
