// Package query describes recipe searches as store-agnostic values.
//
// A Spec is built from a validated filter.Filter and carries a Predicate,
// an ordering and paging bounds. Nothing here touches a database; the
// service layer translates a Spec into gorm scopes.
package query

import (
	"fmt"
	"strings"
)

// Recipe fields a condition or ordering may reference.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldSummary     = "summary"
	FieldRoastLevel  = "roastLevel"
	FieldGrindSize   = "grindSize"
	FieldBeanWeight  = "beanWeight"
	FieldWaterTemp   = "waterTemp"
	FieldWaterAmount = "waterAmount"
	FieldBrewingTime = "brewingTime"
	FieldViewCount   = "viewCount"
	FieldIsPublished = "isPublished"
	FieldPublishedAt = "publishedAt"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// Relation names a many-to-many association of a recipe.
type Relation string

const (
	RelationEquipment Relation = "equipment"
	RelationTags      Relation = "tags"
)

// Condition is one clause of a Predicate.
type Condition interface {
	fmt.Stringer
	condition()
}

// Equals matches records whose field equals Value.
type Equals struct {
	Field string
	Value any
}

// In matches records whose field is one of Values.
type In struct {
	Field  string
	Values []string
}

// Between matches records whose field lies within the inclusive bounds.
// A nil bound is open.
type Between struct {
	Field string
	Min   *float64
	Max   *float64
}

// Contains matches records where any of Fields contains Text,
// case-insensitively.
type Contains struct {
	Fields []string
	Text   string
}

// HasRelated matches records with at least one related row whose Field is
// one of Values.
type HasRelated struct {
	Relation Relation
	Field    string
	Values   []string
}

func (Equals) condition()     {}
func (In) condition()         {}
func (Between) condition()    {}
func (Contains) condition()   {}
func (HasRelated) condition() {}

func (c Equals) String() string {
	return fmt.Sprintf("%s = %v", c.Field, c.Value)
}

func (c In) String() string {
	return fmt.Sprintf("%s IN (%s)", c.Field, quoteAll(c.Values))
}

func (c Between) String() string {
	switch {
	case c.Min != nil && c.Max != nil:
		return fmt.Sprintf("%s BETWEEN %g AND %g", c.Field, *c.Min, *c.Max)
	case c.Min != nil:
		return fmt.Sprintf("%s >= %g", c.Field, *c.Min)
	case c.Max != nil:
		return fmt.Sprintf("%s <= %g", c.Field, *c.Max)
	default:
		return "TRUE"
	}
}

func (c Contains) String() string {
	parts := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		parts[i] = fmt.Sprintf("%s ILIKE %q", f, "%"+c.Text+"%")
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func (c HasRelated) String() string {
	return fmt.Sprintf("EXISTS %s.%s IN (%s)", c.Relation, c.Field, quoteAll(c.Values))
}

func quoteAll(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(parts, ", ")
}

// Predicate is the conjunction of its conditions. The zero value matches
// everything. Predicates are immutable: And returns a new value.
type Predicate struct {
	conds []Condition
}

// And returns a predicate that also requires every condition in cs.
func (p Predicate) And(cs ...Condition) Predicate {
	if len(cs) == 0 {
		return p
	}
	conds := make([]Condition, 0, len(p.conds)+len(cs))
	conds = append(conds, p.conds...)
	conds = append(conds, cs...)
	return Predicate{conds: conds}
}

// Conditions returns a copy of the predicate's clauses in the order they
// were added.
func (p Predicate) Conditions() []Condition {
	out := make([]Condition, len(p.conds))
	copy(out, p.conds)
	return out
}

func (p Predicate) String() string {
	if len(p.conds) == 0 {
		return "TRUE"
	}
	parts := make([]string, len(p.conds))
	for i, c := range p.conds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}
