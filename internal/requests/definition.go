package requests

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

type FilterKind int

const (
	// FilterExact matches the supplied value verbatim.
	FilterExact FilterKind = iota
	// FilterSet targets a multi-valued field; a comma-separated value list
	// becomes a set-membership ($in) match.
	FilterSet
)

// Definition is the per-type declaration the generic service and handler run
// on: URL slug, display label, the filter allow-list and the sortable
// fields. Everything type-specific and constant lives here instead of being
// re-coded per resource.
type Definition struct {
	Slug     string
	Label    string
	Filters  map[string]FilterKind
	Sortable []string
}

// defaultSort orders newest submissions first.
var defaultSort = bson.D{{Key: "submittedAt", Value: -1}}

// buildFilter translates allow-listed query parameters into a Mongo filter.
// Parameters outside the allow-list are ignored.
func (d Definition) buildFilter(values url.Values) bson.M {
	query := bson.M{}
	for field, kind := range d.Filters {
		raw := strings.TrimSpace(values.Get(field))
		if raw == "" {
			continue
		}
		if kind == FilterSet && strings.Contains(raw, ",") {
			parts := strings.Split(raw, ",")
			set := make([]string, 0, len(parts))
			for _, part := range parts {
				if part = strings.TrimSpace(part); part != "" {
					set = append(set, part)
				}
			}
			query[field] = bson.M{"$in": set}
			continue
		}
		query[field] = raw
	}
	return query
}

// buildSort resolves sortBy/sortOrder against the sortable allow-list,
// falling back to submittedAt desc.
func (d Definition) buildSort(sortBy, sortOrder string) bson.D {
	sortBy = strings.TrimSpace(sortBy)
	if !oneOf(sortBy, d.Sortable...) {
		return defaultSort
	}
	direction := -1
	if strings.EqualFold(strings.TrimSpace(sortOrder), "asc") {
		direction = 1
	}
	return bson.D{{Key: sortBy, Value: direction}}
}

func baseFilters(extra map[string]FilterKind) map[string]FilterKind {
	filters := map[string]FilterKind{
		"status": FilterExact,
	}
	for field, kind := range extra {
		filters[field] = kind
	}
	return filters
}

func baseSortable(extra ...string) []string {
	return append([]string{"submittedAt", "updatedAt", "fullName", "status"}, extra...)
}
