package domain

// SortOption represents a catalog sort order
type SortOption string

const (
	SortDefault    SortOption = "default"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortRatingDesc SortOption = "rating-desc"
	SortNameAsc    SortOption = "name-asc"
	SortNameDesc   SortOption = "name-desc"
)

// IsValid checks if the sort option is valid
func (s SortOption) IsValid() bool {
	switch s {
	case SortDefault,
		SortPriceAsc,
		SortPriceDesc,
		SortRatingDesc,
		SortNameAsc,
		SortNameDesc:
		return true
	default:
		return false
	}
}

// FormStep represents one stage of the feedback wizard
type FormStep string

const (
	StepPersonal FormStep = "personal"
	StepFeedback FormStep = "feedback"
	StepReview   FormStep = "review"
)

// FormSteps is the fixed wizard sequence, in order
var FormSteps = []FormStep{StepPersonal, StepFeedback, StepReview}

// IsValid checks if the step is one of the fixed wizard stages
func (s FormStep) IsValid() bool {
	switch s {
	case StepPersonal, StepFeedback, StepReview:
		return true
	default:
		return false
	}
}

// Index returns the step's position in the wizard sequence, or -1
// for an unknown step.
func (s FormStep) Index() int {
	for i, step := range FormSteps {
		if step == s {
			return i
		}
	}
	return -1
}
