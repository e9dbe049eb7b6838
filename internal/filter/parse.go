package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/model"
)

var errTrailingData = errors.New("unexpected data after range object")

// Parse converts raw query-string values into a Partial. It never fails:
// values that cannot be read are left out, and malformed JSON ranges are
// logged and recorded in Partial.Malformed.
func Parse(values url.Values, log *zap.Logger) Partial {
	var p Partial

	p.Page = parseInt(values, KeyPage)
	p.Limit = parseInt(values, KeyLimit)

	for _, v := range splitList(values, KeyRoastLevel) {
		p.RoastLevel = append(p.RoastLevel, model.RoastLevel(v))
	}
	for _, v := range splitList(values, KeyGrindSize) {
		p.GrindSize = append(p.GrindSize, model.GrindSize(v))
	}
	p.Equipment = splitList(values, KeyEquipment)
	p.Tags = splitList(values, KeyTags)

	for _, key := range []string{KeyBeanWeight, KeyWaterTemp, KeyWaterAmount} {
		raw := values.Get(key)
		if raw == "" {
			continue
		}
		r, err := parseRange(raw)
		if err != nil {
			if log != nil {
				log.Warn("dropping malformed range parameter",
					zap.String("param", key),
					zap.String("value", raw),
					zap.Error(err),
				)
			}
			p.Malformed = append(p.Malformed, key)
			continue
		}
		switch key {
		case KeyBeanWeight:
			p.BeanWeight = r
		case KeyWaterTemp:
			p.WaterTemp = r
		case KeyWaterAmount:
			p.WaterAmount = r
		}
	}

	if values.Has(KeySearch) {
		s := values.Get(KeySearch)
		p.Search = &s
	}
	if values.Has(KeySort) {
		s := values.Get(KeySort)
		p.Sort = &s
	}
	switch o := SortOrder(values.Get(KeyOrder)); o {
	case Asc, Desc:
		p.Order = &o
	}

	return p
}

func parseInt(values url.Values, key string) *int {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// splitList reads a comma-separated key. Repeated keys are concatenated and
// empty elements dropped.
func splitList(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseRange(raw string) (*Range, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))

	var r Range
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	return &r, nil
}
