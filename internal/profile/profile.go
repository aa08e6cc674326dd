// Package profile holds the household answers collected by the wizard.
//
// It is the shared vocabulary between the wizard state machine and the
// energy estimator: enums for housing and facility, the Answers record,
// and the parsers that turn raw selection input into those enums.
package profile

import (
	"strconv"
	"strings"
)

// --- Housing type enum ---

// HousingType is the kind of building the household lives in.
type HousingType string

const (
	HousingFlat     HousingType = "flat"
	HousingTenement HousingType = "tenement"
)

// housingAliases maps normalized input to a housing type. "tenament" is
// accepted because earlier versions of the form spelled it that way.
var housingAliases = map[string]HousingType{
	"flat":     HousingFlat,
	"tenement": HousingTenement,
	"tenament": HousingTenement,
}

// ParseHousingType resolves a selection to a HousingType.
func ParseHousingType(raw string) (HousingType, bool) {
	h, ok := housingAliases[normalize(raw)]
	return h, ok
}

// Label returns the display name.
func (h HousingType) Label() string {
	switch h {
	case HousingFlat:
		return "Flat"
	case HousingTenement:
		return "Tenement"
	}
	return ""
}

// --- Facility enum ---

// Facility is the bedroom configuration of the home (BHK).
type Facility string

const (
	FacilityOneBHK   Facility = "1bhk"
	FacilityTwoBHK   Facility = "2bhk"
	FacilityThreeBHK Facility = "3bhk"
)

var facilityAliases = map[string]Facility{
	"1bhk":     FacilityOneBHK,
	"onebhk":   FacilityOneBHK,
	"2bhk":     FacilityTwoBHK,
	"twobhk":   FacilityTwoBHK,
	"3bhk":     FacilityThreeBHK,
	"threebhk": FacilityThreeBHK,
}

// ParseFacility resolves a selection such as "2bhk", "2 BHK" or "TwoBHK".
func ParseFacility(raw string) (Facility, bool) {
	f, ok := facilityAliases[normalize(raw)]
	return f, ok
}

// Bedrooms returns the bedroom count, or 0 for an unknown facility.
func (f Facility) Bedrooms() int {
	switch f {
	case FacilityOneBHK:
		return 1
	case FacilityTwoBHK:
		return 2
	case FacilityThreeBHK:
		return 3
	}
	return 0
}

// Label returns the display name, e.g. "2 BHK".
func (f Facility) Label() string {
	if n := f.Bedrooms(); n > 0 {
		return strconv.Itoa(n) + " BHK"
	}
	return ""
}

// --- Yes/no selections ---

var choiceAliases = map[string]bool{
	"yes":   true,
	"y":     true,
	"true":  true,
	"no":    false,
	"n":     false,
	"false": false,
}

// ParseChoice resolves a yes/no selection.
func ParseChoice(raw string) (value bool, ok bool) {
	value, ok = choiceAliases[normalize(raw)]
	return value, ok
}

// YesNo renders a boolean selection the way ParseChoice reads it back.
func YesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// normalize lowercases and strips separators so "2 BHK", "2-bhk" and
// "2bhk" compare equal.
func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// --- Answers ---

// Answers is the accumulated wizard input. Zero values mean "not yet
// answered"; appliance flags are pointers because false is a real answer.
type Answers struct {
	Name           string      `json:"name,omitempty"`
	Age            int         `json:"age,omitempty"`
	City           string      `json:"city,omitempty"`
	Area           string      `json:"area,omitempty"`
	HousingType    HousingType `json:"housing_type,omitempty"`
	Facility       Facility    `json:"facility,omitempty"`
	AC             *bool       `json:"ac,omitempty"`
	Fridge         *bool       `json:"fridge,omitempty"`
	WashingMachine *bool       `json:"washing_machine,omitempty"`
}

// Bool returns a pointer to v, for building Answers literals.
func Bool(v bool) *bool { return &v }

// Clone returns a deep copy; the appliance pointers are not shared.
func (a Answers) Clone() Answers {
	out := a
	out.AC = cloneBool(a.AC)
	out.Fridge = cloneBool(a.Fridge)
	out.WashingMachine = cloneBool(a.WashingMachine)
	return out
}

// Has reports whether the appliance flag is set and true.
func Has(flag *bool) bool { return flag != nil && *flag }

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
