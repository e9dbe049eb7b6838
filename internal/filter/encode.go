package filter

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Encode serializes f into query-string values that FromQuery reads back
// into an equal Filter. List elements must not contain commas.
func Encode(f Filter) url.Values {
	values := url.Values{}
	values.Set(KeyPage, strconv.Itoa(f.Page))
	values.Set(KeyLimit, strconv.Itoa(f.Limit))

	if len(f.RoastLevel) > 0 {
		values.Set(KeyRoastLevel, joinEnum(f.RoastLevel))
	}
	if len(f.GrindSize) > 0 {
		values.Set(KeyGrindSize, joinEnum(f.GrindSize))
	}
	if len(f.Equipment) > 0 {
		values.Set(KeyEquipment, strings.Join(f.Equipment, ","))
	}
	if len(f.Tags) > 0 {
		values.Set(KeyTags, strings.Join(f.Tags, ","))
	}

	setRange(values, KeyBeanWeight, f.BeanWeight)
	setRange(values, KeyWaterTemp, f.WaterTemp)
	setRange(values, KeyWaterAmount, f.WaterAmount)

	if f.Search != "" {
		values.Set(KeySearch, f.Search)
	}
	if f.Sort != "" {
		values.Set(KeySort, f.Sort)
	}
	if f.Order != "" {
		values.Set(KeyOrder, string(f.Order))
	}
	return values
}

func setRange(values url.Values, key string, r *Range) {
	if r == nil {
		return
	}
	// Range holds only float pointers, which always marshal.
	b, _ := json.Marshal(r)
	values.Set(key, string(b))
}
