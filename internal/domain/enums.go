package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// OptionCategory identifies an OptionName by its well-known id.
// The catalog data relies on these ids; they are not enforced by the schema.
type OptionCategory int64

const (
	CategoryEnvironment    OptionCategory = 1
	CategoryPotential      OptionCategory = 2
	CategorySize           OptionCategory = 3
	CategoryDifficulty     OptionCategory = 4
	CategoryQuantification OptionCategory = 5
	CategoryTimeHorizon    OptionCategory = 6
	CategoryConflict       OptionCategory = 7
	CategorySDG            OptionCategory = 10
	CategoryUnit           OptionCategory = 11
)

func (c OptionCategory) String() string {
	switch c {
	case CategoryEnvironment:
		return "environment"
	case CategoryPotential:
		return "potential"
	case CategorySize:
		return "size"
	case CategoryDifficulty:
		return "difficulty"
	case CategoryQuantification:
		return "quantification"
	case CategoryTimeHorizon:
		return "time_horizon"
	case CategoryConflict:
		return "conflict"
	case CategorySDG:
		return "sdg"
	case CategoryUnit:
		return "unit"
	}
	return "category_" + strconv.FormatInt(int64(c), 10)
}

// Location says where an Example was realized.
type Location int16

const (
	LocationDomestic      Location = 1
	LocationAbroad        Location = 2
	LocationWithinProgram Location = 3
)

func (l Location) IsValid() bool {
	switch l {
	case LocationDomestic, LocationAbroad, LocationWithinProgram:
		return true
	}
	return false
}

func (l Location) String() string {
	switch l {
	case LocationDomestic:
		return "domestic"
	case LocationAbroad:
		return "abroad"
	case LocationWithinProgram:
		return "within_program"
	}
	return "unknown"
}

// Label returns the human-readable location name in the given locale.
func (l Location) Label(locale Locale) string {
	switch l {
	case LocationDomestic:
		return Localize(locale, "Tuzemsko", "Domestic")
	case LocationAbroad:
		return Localize(locale, "Zahraničí", "Abroad")
	case LocationWithinProgram:
		return Localize(locale, "V rámci programu", "Within the programme")
	}
	return ""
}

// ParseLocation accepts the numeric code ("1".."3") or the English name.
func ParseLocation(s string) (Location, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".0")
	switch s {
	case "1", "domestic":
		return LocationDomestic, nil
	case "2", "abroad":
		return LocationAbroad, nil
	case "3", "within_program", "within-program":
		return LocationWithinProgram, nil
	}
	return 0, fmt.Errorf("unknown location %q", s)
}

// Relation names a many-to-many set owned by a Measure.
type Relation string

const (
	RelationAdvantages      Relation = "advantages"
	RelationDisadvantages   Relation = "disadvantages"
	RelationEnvSecondary    Relation = "env_secondary"
	RelationInterconnection Relation = "interconnection"
	RelationConflict        Relation = "conflict"
	RelationOtherImpacts    Relation = "other_impacts_details"
	RelationSDG             Relation = "sdg"
	RelationReferences      Relation = "references"
	RelationContactPersons  Relation = "contact_persons"
)

// AllRelations lists every measure relation in display order.
var AllRelations = []Relation{
	RelationAdvantages,
	RelationDisadvantages,
	RelationEnvSecondary,
	RelationInterconnection,
	RelationConflict,
	RelationOtherImpacts,
	RelationSDG,
	RelationReferences,
	RelationContactPersons,
}

func (r Relation) String() string { return string(r) }

func (r Relation) IsValid() bool {
	for _, v := range AllRelations {
		if v == r {
			return true
		}
	}
	return false
}

// OptionCategory reports the category members of an option-valued relation must belong to.
func (r Relation) OptionCategory() (OptionCategory, bool) {
	switch r {
	case RelationEnvSecondary:
		return CategoryEnvironment, true
	case RelationConflict:
		return CategoryConflict, true
	case RelationSDG:
		return CategorySDG, true
	}
	return 0, false
}
