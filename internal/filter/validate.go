package filter

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// FieldError describes one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a search request cannot be accepted.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "invalid search parameters: " + strings.Join(msgs, "; ")
}

// Options tunes how FromQuery treats questionable input.
type Options struct {
	// StrictRanges turns malformed JSON range parameters into validation
	// errors. When false they are logged and ignored.
	StrictRanges bool
	Logger       *zap.Logger
}

// FromQuery parses and validates a recipe search query string.
func FromQuery(values url.Values, opts Options) (Filter, error) {
	return Validate(Parse(values, opts.Logger), opts)
}

// Validate applies defaults to p and checks every field. The returned error,
// when non-nil, is always a *ValidationError.
func Validate(p Partial, opts Options) (Filter, error) {
	f := Filter{
		Page:        DefaultPage,
		Limit:       DefaultLimit,
		RoastLevel:  p.RoastLevel,
		GrindSize:   p.GrindSize,
		Equipment:   p.Equipment,
		Tags:        p.Tags,
		BeanWeight:  p.BeanWeight,
		WaterTemp:   p.WaterTemp,
		WaterAmount: p.WaterAmount,
	}
	if p.Page != nil {
		f.Page = *p.Page
	}
	if p.Limit != nil {
		f.Limit = *p.Limit
	}
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Sort != nil {
		f.Sort = *p.Sort
	}
	if p.Order != nil {
		f.Order = *p.Order
	}

	var fields []FieldError
	if opts.StrictRanges {
		for _, key := range p.Malformed {
			fields = append(fields, FieldError{
				Field:   key,
				Message: fmt.Sprintf(`%s must be a JSON object like {"min":1,"max":2}`, key),
			})
		}
	}

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Filter{}, &ValidationError{Fields: append(fields, FieldError{Message: err.Error()})}
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: describe(fe)})
		}
	}

	if len(fields) > 0 {
		return Filter{}, &ValidationError{Fields: fields}
	}
	return f, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "roastlevel", func(fl validator.FieldLevel) bool {
		return model.RoastLevel(fl.Field().String()).Valid()
	})
	mustRegister(v, "grindsize", func(fl validator.FieldLevel) bool {
		return model.GrindSize(fl.Field().String()).Valid()
	})
	mustRegister(v, "sortfield", func(fl validator.FieldLevel) bool {
		return IsSortField(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("filter: register %s validation: %v", tag, err))
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "roastlevel":
		return fmt.Sprintf("%s has unknown roast level %q (expected one of: %s)", fe.Field(), fe.Value(), joinEnum(model.RoastLevels))
	case "grindsize":
		return fmt.Sprintf("%s has unknown grind size %q (expected one of: %s)", fe.Field(), fe.Value(), joinEnum(model.GrindSizes))
	case "sortfield":
		return fmt.Sprintf("%s cannot sort by %q (expected one of: %s)", fe.Field(), fe.Value(), strings.Join(SortFields, ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
