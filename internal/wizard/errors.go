package wizard

import "fmt"

// Rule identifies which validation rule an input violated.
type Rule string

const (
	RuleEmptyField    Rule = "empty_field"
	RuleOutOfRange    Rule = "out_of_range"
	RuleInvalidChoice Rule = "invalid_choice"
	RuleStepMismatch  Rule = "step_mismatch"
	RuleNotInteger    Rule = "not_integer"
)

// ValidationError is the only error kind the wizard produces. It carries
// the field and the rule it broke; Min/Max are set for RuleOutOfRange and
// Value holds the offending raw input where there is one.
type ValidationError struct {
	Step  Step
	Field string
	Rule  Rule
	Min   int
	Max   int
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleEmptyField:
		return fmt.Sprintf("step %d: %s must not be empty", e.Step, e.Field)
	case RuleOutOfRange:
		return fmt.Sprintf("step %d: %s must be between %d and %d (got %s)", e.Step, e.Field, e.Min, e.Max, e.Value)
	case RuleInvalidChoice:
		return fmt.Sprintf("step %d: %q is not a valid %s", e.Step, e.Value, e.Field)
	case RuleNotInteger:
		if !e.Step.Valid() {
			return fmt.Sprintf("%s must be a whole number (got %s)", e.Field, e.Value)
		}
		return fmt.Sprintf("step %d: %s must be a whole number (got %s)", e.Step, e.Field, e.Value)
	case RuleStepMismatch:
		return fmt.Sprintf("step %d submitted but the wizard is at step %s", e.Step, e.Value)
	}
	return fmt.Sprintf("step %d: invalid %s", e.Step, e.Field)
}

// EmptyField reports a required text field that was blank after trimming.
func EmptyField(step Step, field string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Rule: RuleEmptyField}
}

// OutOfRange reports a numeric field outside [min, max].
func OutOfRange(step Step, field string, value, min, max int) *ValidationError {
	return &ValidationError{
		Step:  step,
		Field: field,
		Rule:  RuleOutOfRange,
		Min:   min,
		Max:   max,
		Value: fmt.Sprint(value),
	}
}

// InvalidChoice reports a selection outside the allowed options. An
// empty value means nothing was selected.
func InvalidChoice(step Step, field, value string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Rule: RuleInvalidChoice, Value: value}
}

// StepMismatch reports a submission for a step other than the current one.
func StepMismatch(submitted, current Step) *ValidationError {
	return &ValidationError{
		Step:  submitted,
		Field: "step",
		Rule:  RuleStepMismatch,
		Value: fmt.Sprint(int(current)),
	}
}

// NotInteger reports a numeric field whose raw value is not a whole
// number. step is zero when the offending field is the step itself.
func NotInteger(step Step, field, raw string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Rule: RuleNotInteger, Value: raw}
}
