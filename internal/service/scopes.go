package service

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/query"
)

// columns maps query fields to recipe columns. Anything not listed here is
// rejected, so raw SQL fragments below only ever embed these names.
var columns = map[string]string{
	query.FieldID:          "recipes.id",
	query.FieldTitle:       "recipes.title",
	query.FieldSummary:     "recipes.summary",
	query.FieldRoastLevel:  "recipes.roast_level",
	query.FieldGrindSize:   "recipes.grind_size",
	query.FieldBeanWeight:  "recipes.bean_weight",
	query.FieldWaterTemp:   "recipes.water_temp",
	query.FieldWaterAmount: "recipes.water_amount",
	query.FieldBrewingTime: "recipes.brewing_time",
	query.FieldViewCount:   "recipes.view_count",
	query.FieldIsPublished: "recipes.is_published",
	query.FieldPublishedAt: "recipes.published_at",
	query.FieldCreatedAt:   "recipes.created_at",
	query.FieldUpdatedAt:   "recipes.updated_at",
}

type relation struct {
	joinTable string
	joinKey   string
	table     string
	fields    map[string]string
}

var relations = map[query.Relation]relation{
	query.RelationEquipment: {
		joinTable: "recipe_equipment",
		joinKey:   "equipment_id",
		table:     "equipment",
		fields:    map[string]string{"name": "name"},
	},
	query.RelationTags: {
		joinTable: "recipe_tags",
		joinKey:   "tag_id",
		table:     "tags",
		fields:    map[string]string{"slug": "slug", "name": "name"},
	},
}

type where struct {
	sql  string
	args []interface{}
}

func column(field string) (string, error) {
	col, ok := columns[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return col, nil
}

// translate turns a predicate into SQL clauses, one per condition.
func translate(p query.Predicate) ([]where, error) {
	var out []where
	for _, c := range p.Conditions() {
		w, err := translateCondition(c)
		if err != nil {
			return nil, err
		}
		out = append(out, w...)
	}
	return out, nil
}

func translateCondition(c query.Condition) ([]where, error) {
	switch c := c.(type) {
	case query.Equals:
		col, err := column(c.Field)
		if err != nil {
			return nil, err
		}
		return []where{{sql: col + " = ?", args: []interface{}{c.Value}}}, nil

	case query.In:
		col, err := column(c.Field)
		if err != nil {
			return nil, err
		}
		return []where{{sql: col + " IN ?", args: []interface{}{c.Values}}}, nil

	case query.Between:
		col, err := column(c.Field)
		if err != nil {
			return nil, err
		}
		var out []where
		if c.Min != nil {
			out = append(out, where{sql: col + " >= ?", args: []interface{}{*c.Min}})
		}
		if c.Max != nil {
			out = append(out, where{sql: col + " <= ?", args: []interface{}{*c.Max}})
		}
		return out, nil

	case query.Contains:
		pattern := "%" + escapeLike(strings.ToLower(c.Text)) + "%"
		parts := make([]string, len(c.Fields))
		args := make([]interface{}, len(c.Fields))
		for i, f := range c.Fields {
			col, err := column(f)
			if err != nil {
				return nil, err
			}
			parts[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		return []where{{sql: "(" + strings.Join(parts, " OR ") + ")", args: args}}, nil

	case query.HasRelated:
		rel, ok := relations[c.Relation]
		if !ok {
			return nil, fmt.Errorf("%w: relation %s", ErrUnknownField, c.Relation)
		}
		col, ok := rel.fields[c.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, c.Relation, c.Field)
		}
		sql := fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %[1]s j JOIN %[2]s r ON r.id = j.%[3]s WHERE j.recipe_id = recipes.id AND r.%[4]s IN ?)",
			rel.joinTable, rel.table, rel.joinKey, col,
		)
		return []where{{sql: sql, args: []interface{}{c.Values}}}, nil

	default:
		return nil, fmt.Errorf("%w: condition %T", ErrUnknownField, c)
	}
}

// orderClause renders the orders of a query.Spec. Ordinal values come from the
// model's enum lists and are quoted as SQL literals.
func orderClause(orders []query.Order) (string, error) {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		col, err := column(o.Field)
		if err != nil {
			return "", err
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		if len(o.Ordinal) == 0 {
			parts = append(parts, col+" "+dir)
			continue
		}
		var b strings.Builder
		b.WriteString("CASE " + col)
		for i, v := range o.Ordinal {
			fmt.Fprintf(&b, " WHEN '%s' THEN %d", strings.ReplaceAll(v, "'", "''"), i)
		}
		fmt.Fprintf(&b, " ELSE %d END %s", len(o.Ordinal), dir)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", "), nil
}

func whereScope(clauses []where) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, w := range clauses {
			db = db.Where(w.sql, w.args...)
		}
		return db
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
