package query

import (
	"fmt"
	"strings"

	"github.com/pageza/brewfinder/backend/internal/filter"
	"github.com/pageza/brewfinder/backend/internal/model"
)

// Order is one sort key. Ordinal, when set, ranks values by their position
// in the slice instead of comparing them directly.
type Order struct {
	Field   string
	Desc    bool
	Ordinal []string
}

func (o Order) String() string {
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	if len(o.Ordinal) > 0 {
		return fmt.Sprintf("%s(ordinal) %s", o.Field, dir)
	}
	return o.Field + " " + dir
}

// Spec is everything needed to run one page of a recipe search.
type Spec struct {
	Predicate Predicate
	Orders    []Order
	Skip      int
	Take      int

	// Page and Limit echo the filter for pagination metadata.
	Page  int
	Limit int
}

func (s Spec) String() string {
	orders := make([]string, len(s.Orders))
	for i, o := range s.Orders {
		orders[i] = o.String()
	}
	return fmt.Sprintf("WHERE %s ORDER BY %s OFFSET %d LIMIT %d",
		s.Predicate, strings.Join(orders, ", "), s.Skip, s.Take)
}

// fragment contributes zero or more conditions for one aspect of a filter.
type fragment func(filter.Filter) []Condition

var fragments = []fragment{
	published,
	roastLevels,
	grindSizes,
	equipmentNames,
	tagSlugs,
	ranges,
	search,
}

// Build folds every fragment into a Spec for f. f must already be
// validated.
func Build(f filter.Filter) Spec {
	var p Predicate
	for _, frag := range fragments {
		p = p.And(frag(f)...)
	}
	return Spec{
		Predicate: p,
		Orders:    orders(f),
		Skip:      f.Offset(),
		Take:      f.Limit,
		Page:      f.Page,
		Limit:     f.Limit,
	}
}

// Published matches only published recipes.
func Published() Condition {
	return Equals{Field: FieldIsPublished, Value: true}
}

func published(filter.Filter) []Condition {
	return []Condition{Published()}
}

func roastLevels(f filter.Filter) []Condition {
	if len(f.RoastLevel) == 0 {
		return nil
	}
	return []Condition{In{Field: FieldRoastLevel, Values: stringsOf(f.RoastLevel)}}
}

func grindSizes(f filter.Filter) []Condition {
	if len(f.GrindSize) == 0 {
		return nil
	}
	return []Condition{In{Field: FieldGrindSize, Values: stringsOf(f.GrindSize)}}
}

func equipmentNames(f filter.Filter) []Condition {
	if len(f.Equipment) == 0 {
		return nil
	}
	return []Condition{HasRelated{Relation: RelationEquipment, Field: "name", Values: f.Equipment}}
}

func tagSlugs(f filter.Filter) []Condition {
	if len(f.Tags) == 0 {
		return nil
	}
	return []Condition{HasRelated{Relation: RelationTags, Field: "slug", Values: f.Tags}}
}

func ranges(f filter.Filter) []Condition {
	var out []Condition
	for _, r := range []struct {
		field string
		rng   *filter.Range
	}{
		{FieldBeanWeight, f.BeanWeight},
		{FieldWaterTemp, f.WaterTemp},
		{FieldWaterAmount, f.WaterAmount},
	} {
		if r.rng == nil || (r.rng.Min == nil && r.rng.Max == nil) {
			continue
		}
		out = append(out, Between{Field: r.field, Min: r.rng.Min, Max: r.rng.Max})
	}
	return out
}

func search(f filter.Filter) []Condition {
	if f.Search == "" {
		return nil
	}
	return []Condition{Contains{Fields: []string{FieldTitle, FieldSummary}, Text: f.Search}}
}

func orders(f filter.Filter) []Order {
	if f.Sort == "" {
		return []Order{{Field: FieldID}}
	}

	primary := Order{Field: f.Sort, Desc: f.Order != filter.Asc}
	switch f.Sort {
	case filter.SortRoastLevel:
		primary.Ordinal = stringsOf(model.RoastLevels)
	case filter.SortGrindSize:
		primary.Ordinal = stringsOf(model.GrindSizes)
	case filter.SortID:
		return []Order{primary}
	}
	return []Order{primary, {Field: FieldID}}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
