package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storefront/internal/domain"
)

func alwaysValid(domain.FormStep) bool { return true }
func neverValid(domain.FormStep) bool  { return false }

func TestWizardStartsAtPersonal(t *testing.T) {
	w := NewWizard(alwaysValid)

	assert.Equal(t, domain.StepPersonal, w.Current())
	assert.True(t, w.IsFirstStep())
	assert.False(t, w.IsLastStep())
}

func TestWizardNext(t *testing.T) {
	t.Run("failing validator blocks and stays", func(t *testing.T) {
		w := NewWizard(neverValid)

		assert.False(t, w.Next())
		assert.Equal(t, domain.StepPersonal, w.Current())
		assert.False(t, w.IsCompleted(domain.StepPersonal))
	})

	t.Run("passing validator advances and completes", func(t *testing.T) {
		w := NewWizard(alwaysValid)

		assert.True(t, w.Next())
		assert.Equal(t, domain.StepFeedback, w.Current())
		assert.True(t, w.IsCompleted(domain.StepPersonal))
		assert.False(t, w.IsCompleted(domain.StepFeedback))
	})

	t.Run("terminal step is a no-op", func(t *testing.T) {
		w := NewWizard(alwaysValid)
		w.GoTo(domain.StepReview)

		assert.False(t, w.Next())
		assert.Equal(t, domain.StepReview, w.Current())
		// the terminal step's validation still marks it completed
		assert.True(t, w.IsCompleted(domain.StepReview))
	})

	t.Run("validator sees the current step", func(t *testing.T) {
		var seen []domain.FormStep
		w := NewWizard(func(step domain.FormStep) bool {
			seen = append(seen, step)
			return true
		})

		w.Next()
		w.Next()
		assert.Equal(t, []domain.FormStep{domain.StepPersonal, domain.StepFeedback}, seen)
	})
}

func TestWizardPrevious(t *testing.T) {
	w := NewWizard(alwaysValid)

	t.Run("first step is a no-op", func(t *testing.T) {
		w.Previous()
		assert.Equal(t, domain.StepPersonal, w.Current())
	})

	t.Run("moves back without validation", func(t *testing.T) {
		failing := NewWizard(neverValid)
		failing.GoTo(domain.StepFeedback)
		failing.Previous()
		assert.Equal(t, domain.StepPersonal, failing.Current())
	})
}

func TestWizardGoTo(t *testing.T) {
	w := NewWizard(neverValid)

	w.GoTo(domain.StepReview)
	assert.Equal(t, domain.StepReview, w.Current())
	assert.True(t, w.IsLastStep())

	w.GoTo(domain.FormStep("bogus"))
	assert.Equal(t, domain.StepReview, w.Current())
}

func TestWizardReset(t *testing.T) {
	w := NewWizard(alwaysValid)
	w.Next()
	w.Next()

	w.Reset()
	assert.Equal(t, domain.StepPersonal, w.Current())
	assert.False(t, w.IsCompleted(domain.StepPersonal))
	assert.False(t, w.IsCompleted(domain.StepFeedback))
}

func TestWizardProgress(t *testing.T) {
	w := NewWizard(alwaysValid)

	assert.InDelta(t, 33.33, w.Progress(), 0.01)
	w.Next()
	assert.InDelta(t, 66.67, w.Progress(), 0.01)
	w.Next()
	assert.InDelta(t, 100, w.Progress(), 0.01)
}
