package common

import (
	"fmt"
	"sort"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	MaxListLimit = 100
)

// ListSchema maps the public names accepted in a list query onto database
// columns. Only names present here reach the database.
type ListSchema struct {
	Sort   map[string]string
	Filter map[string]string
}

// ListQuery holds pagination, sorting and equality filters for List operations.
type ListQuery struct {
	Limit     int    `validate:"gte=0,lte=100"`
	Offset    int    `validate:"gte=0"`
	SortBy    string
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Filters   map[string]string
}

// NewListQuery returns an unbounded query in insertion order.
func NewListQuery() *ListQuery {
	return &ListQuery{Filters: map[string]string{}}
}

// Validate checks the query against the fields allowed by schema.
func (q *ListQuery) Validate(schema ListSchema) error {
	if err := ValidateStruct(q); err != nil {
		return err
	}
	if q.SortBy != "" {
		if _, ok := schema.Sort[q.SortBy]; !ok {
			return Invalid("sortBy must be one of %v", keys(schema.Sort))
		}
	}
	for name := range q.Filters {
		if _, ok := schema.Filter[name]; !ok {
			return Invalid("unsupported filter %q", name)
		}
	}
	return nil
}

// OrderClause returns the ORDER BY expression for q, defaulting to "id asc".
func (q *ListQuery) OrderClause(schema ListSchema) string {
	column, ok := schema.Sort[q.SortBy]
	if !ok {
		column = "id"
	}
	order := q.SortOrder
	if order == "" {
		order = SortAsc
	}
	return fmt.Sprintf("%s %s", column, order)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
