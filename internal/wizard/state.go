// Package wizard implements the 8-step guided form as a state machine.
//
// A State is owned by exactly one caller (one per user session). Every
// transition goes through Submit, GoBack or Reset; Submit validates the
// input for the current step before any field is written, so a rejected
// submission never changes the state.
package wizard

import (
	"fmt"

	"github.com/HendryAvila/energywiz/internal/energy"
	"github.com/HendryAvila/energywiz/internal/profile"
)

// State is the wizard position plus everything answered so far.
type State struct {
	step           Step
	answers        profile.Answers
	computedEnergy float64
}

// New returns a wizard at step 1 with no answers.
func New() *State {
	return &State{step: FirstStep}
}

// Submit validates in against the rules of step and, on success, records
// the answers and advances one step. Submitting the results step
// recomputes the estimate and stays there. step must equal the current
// step. The returned error is always a *ValidationError.
func (s *State) Submit(step Step, in Input) error {
	if step != s.step {
		return StepMismatch(step, s.step)
	}

	// s.step is always valid, so the lookup cannot fail.
	def, _ := Lookup(step)

	next := s.answers.Clone()
	if verr := def.apply(&next, in); verr != nil {
		return verr
	}
	s.answers = next

	if s.step < LastStep {
		s.step++
	}
	if s.step == LastStep {
		s.computedEnergy = energy.Estimate(s.answers).Total
	}
	return nil
}

// GoBack moves one step back, stopping at step 1.
func (s *State) GoBack() {
	if s.step > FirstStep {
		s.step--
	}
}

// Reset clears all answers and the estimate and returns to step 1.
func (s *State) Reset() {
	*s = State{step: FirstStep}
}

// Current returns the current step and the progress fraction in [0, 1].
func (s *State) Current() (Step, float64) {
	return s.step, Progress(s.step)
}

// Step returns the current step.
func (s *State) Step() Step { return s.step }

// Answers returns a copy of the accumulated answers.
func (s *State) Answers() profile.Answers { return s.answers.Clone() }

// ComputedEnergy returns the total from the last arrival at the results
// step, or 0 if the wizard has not reached it since the last reset.
func (s *State) ComputedEnergy() float64 { return s.computedEnergy }

// Complete reports whether the wizard is on the results step.
func (s *State) Complete() bool { return s.step == LastStep }

// Result returns the full breakdown for the current answers.
func (s *State) Result() energy.Breakdown {
	return energy.Estimate(s.answers)
}

// --- Snapshots ---

// Snapshot is a read-only copy of a State for diagnostics and storage.
type Snapshot struct {
	Step           Step            `json:"step"`
	Progress       float64         `json:"progress"`
	Answers        profile.Answers `json:"answers"`
	ComputedEnergy float64         `json:"computed_energy"`
}

// Snapshot copies the state. Mutating the snapshot does not affect s.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Step:           s.step,
		Progress:       Progress(s.step),
		Answers:        s.answers.Clone(),
		ComputedEnergy: s.computedEnergy,
	}
}

// Restore rebuilds a State from a snapshot.
func Restore(snap Snapshot) (*State, error) {
	if !snap.Step.Valid() {
		return nil, fmt.Errorf("restoring wizard: step %d outside [%d, %d]", snap.Step, FirstStep, LastStep)
	}
	return &State{
		step:           snap.Step,
		answers:        snap.Answers.Clone(),
		computedEnergy: snap.ComputedEnergy,
	}, nil
}
