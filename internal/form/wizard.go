// Package form implements the feedback wizard: a linear step machine
// with validation-gated forward navigation, the per-step field
// validators, and the incremental phone formatter.
package form

import (
	"github.com/jafarshop/storefront/internal/domain"
)

// StepValidator reports whether the named step's fields currently pass
// validation. Surfacing the field errors is the validator's own
// concern; the wizard only consumes the verdict.
type StepValidator func(step domain.FormStep) bool

// Wizard tracks the active step of the fixed personal → feedback →
// review sequence and which steps have been completed.
type Wizard struct {
	current   domain.FormStep
	completed map[domain.FormStep]struct{}
	validate  StepValidator
}

// NewWizard creates a wizard positioned on the first step
func NewWizard(validate StepValidator) *Wizard {
	return &Wizard{
		current:   domain.FormSteps[0],
		completed: make(map[domain.FormStep]struct{}),
		validate:  validate,
	}
}

// Current returns the active step
func (w *Wizard) Current() domain.FormStep {
	return w.current
}

// Next advances to the following step if the current step validates.
// On success the current step is marked completed. Returns true only
// when the wizard actually moved; on the terminal step or a failed
// validation it stays put.
func (w *Wizard) Next() bool {
	if !w.validate(w.current) {
		return false
	}

	w.completed[w.current] = struct{}{}

	idx := w.current.Index()
	if idx < len(domain.FormSteps)-1 {
		w.current = domain.FormSteps[idx+1]
		return true
	}
	return false
}

// Previous moves to the prior step. Going backward is never gated on
// validation; on the first step it is a no-op.
func (w *Wizard) Previous() {
	idx := w.current.Index()
	if idx > 0 {
		w.current = domain.FormSteps[idx-1]
	}
}

// GoTo jumps directly to a step, unconditionally. Unknown steps are
// ignored.
func (w *Wizard) GoTo(step domain.FormStep) {
	if step.IsValid() {
		w.current = step
	}
}

// Reset returns to the first step and forgets completed steps
func (w *Wizard) Reset() {
	w.current = domain.FormSteps[0]
	w.completed = make(map[domain.FormStep]struct{})
}

// IsCompleted reports whether a step has passed its validation gate
func (w *Wizard) IsCompleted(step domain.FormStep) bool {
	_, ok := w.completed[step]
	return ok
}

// Progress returns the wizard position as a percentage of total steps
func (w *Wizard) Progress() float64 {
	return float64(w.current.Index()+1) / float64(len(domain.FormSteps)) * 100
}

// IsFirstStep reports whether the wizard is on the first step
func (w *Wizard) IsFirstStep() bool {
	return w.current.Index() == 0
}

// IsLastStep reports whether the wizard is on the terminal step
func (w *Wizard) IsLastStep() bool {
	return w.current.Index() == len(domain.FormSteps)-1
}
