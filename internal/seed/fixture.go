// Package seed loads recipe catalogues from TOML fixture files into the
// database.
package seed

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// Fixture is the content of one seed file
type Fixture struct {
	EquipmentTypes []EquipmentType `toml:"equipment_types"`
	Equipment      []Equipment     `toml:"equipment"`
	Tags           []Tag           `toml:"tags"`
	Baristas       []Barista       `toml:"baristas"`
	Recipes        []Recipe        `toml:"recipes"`
}

type EquipmentType struct {
	Name        string  `toml:"name"`
	Description *string `toml:"description,omitempty"`
}

type Equipment struct {
	Name          string  `toml:"name"`
	Brand         *string `toml:"brand,omitempty"`
	Description   *string `toml:"description,omitempty"`
	AffiliateLink *string `toml:"affiliate_link,omitempty"`
	Type          string  `toml:"type"`
}

type Tag struct {
	Name string `toml:"name"`
	Slug string `toml:"slug"`
}

type Barista struct {
	Name        string       `toml:"name"`
	Affiliation *string      `toml:"affiliation,omitempty"`
	SocialLinks []SocialLink `toml:"social_links"`
}

type SocialLink struct {
	Platform string `toml:"platform"`
	URL      string `toml:"url"`
}

type Recipe struct {
	Title       string           `toml:"title"`
	Summary     string           `toml:"summary"`
	RoastLevel  model.RoastLevel `toml:"roast_level"`
	GrindSize   *model.GrindSize `toml:"grind_size,omitempty"`
	BeanWeight  float64          `toml:"bean_weight"`
	WaterTemp   float64          `toml:"water_temp"`
	WaterAmount float64          `toml:"water_amount"`
	BrewingTime *int             `toml:"brewing_time,omitempty"`
	Published   bool             `toml:"published"`
	PublishedAt *time.Time       `toml:"published_at,omitempty"`
	Barista     string           `toml:"barista,omitempty"`
	Equipment   []string         `toml:"equipment"`
	Tags        []string         `toml:"tags"`
	Steps       []Step           `toml:"steps"`
}

type Step struct {
	TimeSeconds *int   `toml:"time_seconds,omitempty"`
	Description string `toml:"description"`
}

// Load decodes and validates a fixture. Unknown keys are rejected.
func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decoding fixture: %s", strict.String())
		}
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks enum values and that every reference resolves within the
// fixture. All problems are reported together.
func (f *Fixture) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	types := map[string]bool{}
	for _, t := range f.EquipmentTypes {
		types[t.Name] = true
	}
	equipment := map[string]bool{}
	for _, e := range f.Equipment {
		if !types[e.Type] {
			add("equipment %q: unknown type %q", e.Name, e.Type)
		}
		equipment[e.Name] = true
	}
	tags := map[string]bool{}
	for _, t := range f.Tags {
		if t.Slug == "" {
			add("tag %q: slug is required", t.Name)
		}
		tags[t.Slug] = true
	}
	baristas := map[string]bool{}
	for _, b := range f.Baristas {
		baristas[b.Name] = true
	}

	for _, r := range f.Recipes {
		if r.Title == "" {
			add("recipe without title")
		}
		if !r.RoastLevel.Valid() {
			add("recipe %q: unknown roast level %q", r.Title, r.RoastLevel)
		}
		if r.GrindSize != nil && !r.GrindSize.Valid() {
			add("recipe %q: unknown grind size %q", r.Title, *r.GrindSize)
		}
		if r.Barista != "" && !baristas[r.Barista] {
			add("recipe %q: unknown barista %q", r.Title, r.Barista)
		}
		for _, name := range r.Equipment {
			if !equipment[name] {
				add("recipe %q: unknown equipment %q", r.Title, name)
			}
		}
		for _, slug := range r.Tags {
			if !tags[slug] {
				add("recipe %q: unknown tag %q", r.Title, slug)
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid fixture: %s", strings.Join(problems, "; "))
	}
	return nil
}
