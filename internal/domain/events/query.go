package events

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 5
	defaultSortJSON = "createdAt"
)

// sortColumns maps the JSON field names clients may sort by to their SQL
// columns. Anything outside this map falls back to createdAt; raw input never
// reaches an ORDER BY clause.
var sortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"status":    "status",
	"eventDate": "event_date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ParseListParams turns untrusted query parameters into a safe query spec.
// It never fails: unknown sort columns, non-"asc" orders and unparsable page
// numbers all fall back to defaults rather than erroring.
func ParseListParams(values url.Values) ListParams {
	column, ok := sortColumns[values.Get("sortColumn")]
	if !ok {
		column = sortColumns[defaultSortJSON]
	}

	order := "DESC"
	if values.Get("sortOrder") == "asc" {
		order = "ASC"
	}

	return ListParams{
		SortColumn: column,
		SortOrder:  order,
		Keyword:    strings.TrimSpace(values.Get("keyword")),
		Page:       positiveInt(values.Get("page"), 1),
		PageSize:   positiveInt(values.Get("pageSize"), DefaultPageSize),
	}
}

func positiveInt(raw string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
