package filter

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pageza/brewfinder/backend/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	values := url.Values{
		"page":       {"3"},
		"limit":      {"15"},
		"roastLevel": {"LIGHT,MEDIUM", "DARK"},
		"grindSize":  {"FINE,,BOGUS"},
		"equipment":  {"Hario V60, Comandante C40"},
		"tags":       {"iced"},
		"beanWeight": {`{"min":15,"max":20}`},
		"waterTemp":  {`{"min":90}`},
		"search":     {"Kenya"},
		"sort":       {"beanWeight"},
		"order":      {"asc"},
	}

	p := Parse(values, zap.NewNop())

	assert.Equal(t, ptr(3), p.Page)
	assert.Equal(t, ptr(15), p.Limit)
	assert.Equal(t, []model.RoastLevel{model.RoastLight, model.RoastMedium, model.RoastDark}, p.RoastLevel)
	// elements are cast, not validated, at this stage
	assert.Equal(t, []model.GrindSize{model.GrindFine, "BOGUS"}, p.GrindSize)
	assert.Equal(t, []string{"Hario V60", "Comandante C40"}, p.Equipment)
	assert.Equal(t, []string{"iced"}, p.Tags)
	assert.Equal(t, &Range{Min: ptr(15.0), Max: ptr(20.0)}, p.BeanWeight)
	assert.Equal(t, &Range{Min: ptr(90.0)}, p.WaterTemp)
	assert.Nil(t, p.WaterAmount)
	assert.Equal(t, ptr("Kenya"), p.Search)
	assert.Equal(t, ptr("beanWeight"), p.Sort)
	assert.Equal(t, ptr(Asc), p.Order)
	assert.Empty(t, p.Malformed)
}

func TestParseAbsentKeys(t *testing.T) {
	p := Parse(url.Values{}, nil)
	assert.Equal(t, Partial{}, p)
}

func TestParseDropsUnreadableValues(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	values := url.Values{
		"page":        {"two"},
		"limit":       {"1.5"},
		"order":       {"DESC"},
		"beanWeight":  {`{"min":15`},
		"waterAmount": {`[100,200]`},
		"waterTemp":   {`{"max":"hot"}`},
	}

	p := Parse(values, zap.New(core))

	assert.Nil(t, p.Page)
	assert.Nil(t, p.Limit)
	assert.Nil(t, p.Order)
	assert.Nil(t, p.BeanWeight)
	assert.Nil(t, p.WaterAmount)
	assert.Nil(t, p.WaterTemp)
	assert.ElementsMatch(t, []string{KeyBeanWeight, KeyWaterAmount, KeyWaterTemp}, p.Malformed)
	assert.Equal(t, 3, logs.FilterMessage("dropping malformed range parameter").Len())
}

func TestParseIgnoresExtraRangeKeys(t *testing.T) {
	p := Parse(url.Values{"beanWeight": {`{"min":15,"max":20,"unit":"g"}`}}, nil)
	require.NotNil(t, p.BeanWeight)
	assert.Equal(t, &Range{Min: ptr(15.0), Max: ptr(20.0)}, p.BeanWeight)
	assert.Empty(t, p.Malformed)

	f, err := Validate(p, Options{StrictRanges: true})
	require.NoError(t, err)
	assert.Equal(t, p.BeanWeight, f.BeanWeight)
}

func TestParseRejectsTrailingJSON(t *testing.T) {
	p := Parse(url.Values{"beanWeight": {`{"min":1}{"max":2}`}}, nil)
	assert.Nil(t, p.BeanWeight)
	assert.Equal(t, []string{KeyBeanWeight}, p.Malformed)
}

func TestValidateDefaults(t *testing.T) {
	f, err := Validate(Partial{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Filter{Page: 1, Limit: 20}, f)
	assert.Equal(t, 0, f.Offset())
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want int
	}{
		{name: "first page", f: Filter{Page: 1, Limit: 20}, want: 0},
		{name: "third page", f: Filter{Page: 3, Limit: 15}, want: 30},
		{name: "saturates instead of wrapping", f: Filter{Page: math.MaxInt/2 + 1, Limit: 4}, want: math.MaxInt},
		{name: "largest page", f: Filter{Page: math.MaxInt, Limit: MaxLimit}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Offset())
		})
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{name: "first page", query: "page=1&limit=1"},
		{name: "max limit", query: "page=9999&limit=100"},
		{name: "limit too large", query: "limit=101", wantErr: "limit"},
		{name: "limit zero", query: "limit=0", wantErr: "limit"},
		{name: "negative limit", query: "limit=-5", wantErr: "limit"},
		{name: "page zero", query: "page=0", wantErr: "page"},
		{name: "unknown roast", query: "roastLevel=LIGHT,BURNT", wantErr: "roastLevel[1]"},
		{name: "unknown grind", query: "grindSize=POWDER", wantErr: "grindSize[0]"},
		{name: "unknown sort", query: "sort=password", wantErr: "sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = FromQuery(values, Options{})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.wantErr, verr.Fields[0].Field)
			assert.NotEmpty(t, verr.Fields[0].Message)
		})
	}
}

func TestValidateCollectsEveryField(t *testing.T) {
	values := url.Values{
		"page":       {"0"},
		"limit":      {"500"},
		"roastLevel": {"CHARRED"},
	}
	_, err := FromQuery(values, Options{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestStrictRanges(t *testing.T) {
	values := url.Values{"beanWeight": {"not-json"}}

	f, err := FromQuery(values, Options{})
	require.NoError(t, err)
	assert.Nil(t, f.BeanWeight)

	_, err = FromQuery(values, Options{StrictRanges: true})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KeyBeanWeight, verr.Fields[0].Field)
}

func TestRangesAreNotCrossChecked(t *testing.T) {
	f, err := FromQuery(url.Values{"waterTemp": {`{"min":96,"max":85}`}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, &Range{Min: ptr(96.0), Max: ptr(85.0)}, f.WaterTemp)
}

func TestEncodeRoundTrip(t *testing.T) {
	filters := []Filter{
		{Page: 1, Limit: 20},
		{Page: 2, Limit: 10, RoastLevel: []model.RoastLevel{model.RoastLight, model.RoastMedium}},
		{
			Page:        4,
			Limit:       100,
			RoastLevel:  []model.RoastLevel{model.RoastFrench},
			GrindSize:   []model.GrindSize{model.GrindExtraFine, model.GrindCoarse},
			Equipment:   []string{"Hario V60", "Kalita Wave 185"},
			Tags:        []string{"iced", "beginner"},
			BeanWeight:  &Range{Min: ptr(15.0), Max: ptr(20.0)},
			WaterTemp:   &Range{Max: ptr(92.5)},
			WaterAmount: &Range{},
			Search:      "washed ethiopia & co",
			Sort:        SortWaterTemp,
			Order:       Desc,
		},
	}

	for _, f := range filters {
		got, err := FromQuery(Encode(f), Options{StrictRanges: true})
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestEncodeThroughURL(t *testing.T) {
	f := Filter{Page: 2, Limit: 10, BeanWeight: &Range{Min: ptr(15.0), Max: ptr(20.0)}}

	values, err := url.ParseQuery(Encode(f).Encode())
	require.NoError(t, err)

	got, err := FromQuery(values, Options{})
	require.NoError(t, err)
	assert.Equal(t, f, got)
}
