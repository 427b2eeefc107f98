package repository

import "gorm.io/gorm"

// Condition is a single where-clause fragment with its arguments.
type Condition struct {
	Query string
	Args  []interface{}
}

// QuerySpec is a composable query specification: the joins, preloads and
// predicates a resource endpoint needs, kept separate from how the generic
// repository executes them. Controllers build one per request and hand it
// to the repository; the repository never knows which endpoint it serves.
type QuerySpec struct {
	Joins      []string
	Preloads   []string
	Selects    []string
	Conditions []Condition
	Order      string
}

// NewSpec returns an empty query specification.
func NewSpec() *QuerySpec {
	return &QuerySpec{}
}

// Where appends a predicate.
func (s *QuerySpec) Where(query string, args ...interface{}) *QuerySpec {
	s.Conditions = append(s.Conditions, Condition{Query: query, Args: args})
	return s
}

// Join appends a join clause.
func (s *QuerySpec) Join(clause string) *QuerySpec {
	s.Joins = append(s.Joins, clause)
	return s
}

// Preload appends a gorm preload association.
func (s *QuerySpec) Preload(association string) *QuerySpec {
	s.Preloads = append(s.Preloads, association)
	return s
}

// Select sets the selected columns.
func (s *QuerySpec) Select(columns ...string) *QuerySpec {
	s.Selects = columns
	return s
}

// OrderBy sets the result ordering.
func (s *QuerySpec) OrderBy(order string) *QuerySpec {
	s.Order = order
	return s
}

// Apply composes the full specification into the query builder.
func (s *QuerySpec) Apply(q *gorm.DB) *gorm.DB {
	q = s.filter(q)
	for _, preload := range s.Preloads {
		q = q.Preload(preload)
	}
	if len(s.Selects) > 0 {
		q = q.Select(s.Selects)
	}
	if s.Order != "" {
		q = q.Order(s.Order)
	}
	return q
}

// filter applies only the row-restricting parts (joins and predicates).
// Counting uses this so totals match the filtered set without paying for
// preloads or ordering.
func (s *QuerySpec) filter(q *gorm.DB) *gorm.DB {
	for _, join := range s.Joins {
		q = q.Joins(join)
	}
	for _, cond := range s.Conditions {
		q = q.Where(cond.Query, cond.Args...)
	}
	return q
}
