package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product
type Product struct {
	ID                 int64
	Title              string
	Description        string
	Category           string
	Brand              string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Rating             float64
	Stock              int
	Tags               []string
}

// CartItem represents one product line in a cart. At most one item
// exists per product id and Quantity is always >= 1.
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ProductFilters describes the filter/sort spec applied to the catalog.
// Nil pointer fields impose no constraint; Category and Brand also pass
// everything through when set to "all".
type ProductFilters struct {
	Category *string
	Brand    *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   SortOption
	Search   string
}

// PersonalInfo holds the first wizard step's fields. Age is kept as the
// raw text the user entered and validated by parsing.
type PersonalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Age   string `json:"age"`
}

// FeedbackData holds the second wizard step's fields
type FeedbackData struct {
	Category     string `json:"category"`
	Rating       int    `json:"rating"`
	Message      string `json:"message"`
	Anonymous    bool   `json:"anonymous"`
	Satisfaction int    `json:"satisfaction"`
}

// FeedbackFormData is the complete form payload across steps
type FeedbackFormData struct {
	Personal PersonalInfo `json:"personal"`
	Feedback FeedbackData `json:"feedback"`
}

// FormSubmission wraps a completed form with submission metadata
type FormSubmission struct {
	ID        uuid.UUID
	Data      FeedbackFormData
	CreatedAt time.Time
}
