package wizard

import (
	"strings"

	"github.com/HendryAvila/energywiz/internal/profile"
)

// Step is a 1-based position in the wizard.
type Step int

const (
	StepPersonal Step = iota + 1
	StepLocation
	StepHousing
	StepFacility
	StepAC
	StepFridge
	StepWashingMachine
	StepResults
)

const (
	FirstStep = StepPersonal
	LastStep  = StepResults

	MinAge = 1
	MaxAge = 120
)

// Valid reports whether s is inside [FirstStep, LastStep].
func (s Step) Valid() bool { return s >= FirstStep && s <= LastStep }

// Progress returns (step-1)/7 clamped to [0, 1].
func Progress(s Step) float64 {
	p := float64(s-FirstStep) / float64(LastStep-FirstStep)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Input is the raw payload for one step. Each step reads only the fields
// it owns: Name/Age for step 1, City/Area for step 2, and Choice for the
// selection steps (housing type, facility, then yes/no for appliances).
type Input struct {
	Name   string
	Age    int
	City   string
	Area   string
	Choice string
}

// Definition describes one wizard step: what it asks, which answer
// fields it owns and, for selection steps, the allowed choices.
type Definition struct {
	Step     Step
	Title    string
	Question string
	Fields   []string
	Choices  []string

	// apply validates in and writes the owned fields into a. It must
	// leave a untouched when it returns an error.
	apply func(a *profile.Answers, in Input) *ValidationError
}

var yesNo = []string{"yes", "no"}

var definitions = []Definition{
	{
		Step:     StepPersonal,
		Title:    "Personal Information",
		Question: "What is your name and age?",
		Fields:   []string{"name", "age"},
		apply: func(a *profile.Answers, in Input) *ValidationError {
			name := strings.TrimSpace(in.Name)
			if name == "" {
				return EmptyField(StepPersonal, "name")
			}
			if in.Age < MinAge || in.Age > MaxAge {
				return OutOfRange(StepPersonal, "age", in.Age, MinAge, MaxAge)
			}
			a.Name = name
			a.Age = in.Age
			return nil
		},
	},
	{
		Step:     StepLocation,
		Title:    "Location Details",
		Question: "Which city and area do you live in?",
		Fields:   []string{"city", "area"},
		apply: func(a *profile.Answers, in Input) *ValidationError {
			city := strings.TrimSpace(in.City)
			area := strings.TrimSpace(in.Area)
			if city == "" {
				return EmptyField(StepLocation, "city")
			}
			if area == "" {
				return EmptyField(StepLocation, "area")
			}
			a.City = city
			a.Area = area
			return nil
		},
	},
	{
		Step:     StepHousing,
		Title:    "Housing Type",
		Question: "Do you live in a flat or a tenement?",
		Fields:   []string{"housing_type"},
		Choices:  []string{string(profile.HousingFlat), string(profile.HousingTenement)},
		apply: func(a *profile.Answers, in Input) *ValidationError {
			h, ok := profile.ParseHousingType(in.Choice)
			if !ok {
				return InvalidChoice(StepHousing, "housing_type", in.Choice)
			}
			a.HousingType = h
			return nil
		},
	},
	{
		Step:     StepFacility,
		Title:    "Room Configuration",
		Question: "How many bedrooms does your home have?",
		Fields:   []string{"facility"},
		Choices: []string{
			string(profile.FacilityOneBHK),
			string(profile.FacilityTwoBHK),
			string(profile.FacilityThreeBHK),
		},
		apply: func(a *profile.Answers, in Input) *ValidationError {
			f, ok := profile.ParseFacility(in.Choice)
			if !ok {
				return InvalidChoice(StepFacility, "facility", in.Choice)
			}
			a.Facility = f
			return nil
		},
	},
	applianceStep(StepAC, "Air Conditioning", "Do you use air conditioning?", "ac",
		func(a *profile.Answers) **bool { return &a.AC }),
	applianceStep(StepFridge, "Refrigerator", "Do you have a refrigerator?", "fridge",
		func(a *profile.Answers) **bool { return &a.Fridge }),
	applianceStep(StepWashingMachine, "Washing Machine", "Do you have a washing machine?", "washing_machine",
		func(a *profile.Answers) **bool { return &a.WashingMachine }),
	{
		Step:     StepResults,
		Title:    "Results",
		Question: "Your daily energy consumption estimate.",
		apply:    func(*profile.Answers, Input) *ValidationError { return nil },
	},
}

// applianceStep builds a yes/no step that owns a single appliance flag.
func applianceStep(step Step, title, question, field string, target func(*profile.Answers) **bool) Definition {
	return Definition{
		Step:     step,
		Title:    title,
		Question: question,
		Fields:   []string{field},
		Choices:  yesNo,
		apply: func(a *profile.Answers, in Input) *ValidationError {
			v, ok := profile.ParseChoice(in.Choice)
			if !ok {
				return InvalidChoice(step, field, in.Choice)
			}
			*target(a) = profile.Bool(v)
			return nil
		},
	}
}

// Lookup returns the definition for a step.
func Lookup(s Step) (Definition, bool) {
	if !s.Valid() {
		return Definition{}, false
	}
	return definitions[s-FirstStep], true
}

// Steps returns all step definitions in order.
func Steps() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}
