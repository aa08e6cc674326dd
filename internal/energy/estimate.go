// Package energy estimates daily household energy consumption from the
// wizard answers.
//
// The model is purely additive: a base load chosen by the bedroom
// configuration plus a fixed load per owned appliance. Estimate never
// fails; anything missing or unrecognized contributes zero.
package energy

import (
	"fmt"

	"github.com/HendryAvila/energywiz/internal/profile"
)

// Per-category loads in kWh/day. The base loads follow
// (bedrooms+1)*0.4 + (bedrooms+1)*0.8.
const (
	BaseOneBHK   = 2.4
	BaseTwoBHK   = 3.6
	BaseThreeBHK = 4.8

	ApplianceLoad = 3.0
)

// Breakdown is the estimate split by category. Total is always the sum
// of the four components.
type Breakdown struct {
	Base    float64 `json:"base"`
	AC      float64 `json:"ac"`
	Fridge  float64 `json:"fridge"`
	Washing float64 `json:"washing"`
	Total   float64 `json:"total"`
}

// Estimate computes the breakdown for the given answers.
func Estimate(a profile.Answers) Breakdown {
	b := Breakdown{
		Base:    BaseLoad(a.Facility),
		AC:      applianceLoad(a.AC),
		Fridge:  applianceLoad(a.Fridge),
		Washing: applianceLoad(a.WashingMachine),
	}
	b.Total = b.Base + b.AC + b.Fridge + b.Washing
	return b
}

// BaseLoad returns the base daily load for a facility, 0 when unknown.
func BaseLoad(f profile.Facility) float64 {
	switch f {
	case profile.FacilityOneBHK:
		return BaseOneBHK
	case profile.FacilityTwoBHK:
		return BaseTwoBHK
	case profile.FacilityThreeBHK:
		return BaseThreeBHK
	}
	return 0
}

func applianceLoad(flag *bool) float64 {
	if profile.Has(flag) {
		return ApplianceLoad
	}
	return 0
}

// FormatTotal renders the total at display precision, e.g. "9.60 kWh".
func (b Breakdown) FormatTotal() string {
	return fmt.Sprintf("%.2f kWh", b.Total)
}

// FormatComponent renders a single category value, e.g. "3.6 kWh".
func FormatComponent(v float64) string {
	return fmt.Sprintf("%.1f kWh", v)
}
