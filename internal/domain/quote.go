package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("record not found")

// Sentinel wrappers so the orchestrator can tell which of the two inserts
// failed and pick the matching fixed user-facing message.
var (
	ErrRequestInsert = errors.New("quote request insert failed")
	ErrServiceInsert = errors.New("quote request services insert failed")
)

// QuoteStatusPending is the status every new request is created with.
// Later transitions belong to downstream admin tooling, not this service.
const QuoteStatusPending = "pending"

// QuoteRequest is one persisted quote request. Rows are written once at
// submission time and never mutated here.
type QuoteRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	BudgetRange   string    `json:"budget_range,omitempty"`
	Timeline      string    `json:"timeline,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	RequestNumber string    `json:"request_number"`
	CreatedAt     time.Time `json:"created_at"`

	Services []QuoteRequestService `json:"services,omitempty"`
}

// QuoteRequestService is one selected service on a request. ServiceName is
// the display title captured at submission time, deliberately denormalized so
// historical requests stay readable if the catalog changes later. The price
// fields are filled in by admins, never by this service.
type QuoteRequestService struct {
	ID                int64    `json:"id"`
	QuoteRequestID    string   `json:"quote_request_id"`
	ServiceName       string   `json:"service_name"`
	CustomDescription *string  `json:"custom_description,omitempty"`
	EstimatedPrice    *float64 `json:"estimated_price,omitempty"`
	FinalPrice        *float64 `json:"final_price,omitempty"`
}

// SubmitQuoteRequest is the JSON body of the public submit endpoint
type SubmitQuoteRequest struct {
	Name     string   `json:"name"`
	Company  string   `json:"company"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Phone    string   `json:"phone"`
	Budget   string   `json:"budget" binding:"omitempty,oneof=<5k 5k-20k >20k"`
	Timeline string   `json:"timeline" binding:"omitempty,oneof=1-3 3-6 flexible"`
	Message  string   `json:"message"`
	Services []string `json:"services"`
}

// SubmitQuoteResult is what a successful submission reports back
type SubmitQuoteResult struct {
	RequestNumber string `json:"requestNumber"`
}

// QuoteRepository persists quote requests. Both inserts behind Create run in
// one transaction so a failed service-row insert leaves no orphan request.
type QuoteRepository interface {
	Create(ctx context.Context, req *QuoteRequest, serviceNames []string) error
	List(ctx context.Context) ([]QuoteRequest, error)
	GetByID(ctx context.Context, id string) (*QuoteRequest, error)
}

// QuoteUsecase orchestrates one submission: validate, persist, then
// best-effort notification.
type QuoteUsecase interface {
	Submit(ctx context.Context, session *FormSession) (*SubmitQuoteResult, error)
	List(ctx context.Context) ([]QuoteRequest, error)
	GetByID(ctx context.Context, id string) (*QuoteRequest, error)
}
