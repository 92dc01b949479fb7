package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-quote-backend/internal/domain"
	"go-quote-backend/pkg/apperror"
	"go-quote-backend/pkg/logger"
)

// Fixed user-facing messages. Technical detail never reaches the client.
const (
	MsgNameRequired       = "Name is required"
	MsgEmailRequired      = "Email is required"
	MsgSelectionRequired  = "Please select at least one service"
	MsgSubmitInProgress   = "A submission is already in progress"
	MsgFailedSaveRequest  = "Failed to save quote request"
	MsgFailedSaveServices = "Failed to save selected services"
)

type quoteUsecase struct {
	repo     domain.QuoteRepository
	notifier domain.Notifier
	catalog  *domain.Catalog
}

// NewQuoteUsecase creates the submission orchestrator
func NewQuoteUsecase(repo domain.QuoteRepository, notifier domain.Notifier, catalog *domain.Catalog) domain.QuoteUsecase {
	return &quoteUsecase{
		repo:     repo,
		notifier: notifier,
		catalog:  catalog,
	}
}

// Submit runs one submission end to end: precondition checks (no I/O on
// failure), the two persistence steps, then best-effort notification. The
// persisted record is authoritative; a notification failure is logged and
// the submission still succeeds. On full success the session is reset.
func (uc *quoteUsecase) Submit(ctx context.Context, session *domain.FormSession) (*domain.SubmitQuoteResult, error) {
	if !session.BeginSubmit() {
		return nil, apperror.Validation(MsgSubmitInProgress)
	}
	defer session.EndSubmit()

	if strings.TrimSpace(session.Form.Name) == "" {
		return nil, apperror.Validation(MsgNameRequired)
	}
	if strings.TrimSpace(session.Form.Email) == "" {
		return nil, apperror.Validation(MsgEmailRequired)
	}
	if session.Selection.IsEmpty() {
		return nil, apperror.Validation(MsgSelectionRequired)
	}

	req := &domain.QuoteRequest{
		Name:        strings.TrimSpace(session.Form.Name),
		Company:     strings.TrimSpace(session.Form.Company),
		Email:       strings.TrimSpace(session.Form.Email),
		Phone:       strings.TrimSpace(session.Form.Phone),
		BudgetRange: session.Form.Budget,
		Timeline:    session.Form.Timeline,
		Message:     strings.TrimSpace(session.Form.Message),
		Status:      domain.QuoteStatusPending,
	}

	serviceTitles := session.Selection.Titles(uc.catalog)

	if err := uc.repo.Create(ctx, req, serviceTitles); err != nil {
		if errors.Is(err, domain.ErrServiceInsert) {
			return nil, apperror.Persistence(MsgFailedSaveServices, err)
		}
		return nil, apperror.Persistence(MsgFailedSaveRequest, err)
	}

	payload := domain.QuoteNotification{
		RequestNumber: req.RequestNumber,
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		BudgetRange:   req.BudgetRange,
		Timeline:      req.Timeline,
		Message:       req.Message,
		ServiceTitles: serviceTitles,
		SubmittedAt:   submittedAt(req.CreatedAt),
	}

	// Advisory only: the record is saved, notification failure must not
	// bubble up as a submission failure.
	result := uc.notifier.Notify(ctx, payload)
	switch {
	case !result.Success:
		logger.Log.Error("quote notification failed",
			"request_number", req.RequestNumber,
			"admin_error", errString(result.Admin.Err),
			"client_error", errString(result.Client.Err),
		)
	case result.Message != "":
		logger.Log.Warn("quote notification partially delivered",
			"request_number", req.RequestNumber,
			"detail", result.Message,
			"client_error", errString(result.Client.Err),
		)
	}

	session.ResetAfterSuccess()

	return &domain.SubmitQuoteResult{RequestNumber: req.RequestNumber}, nil
}

// List returns all persisted quote requests, newest first
func (uc *quoteUsecase) List(ctx context.Context) ([]domain.QuoteRequest, error) {
	return uc.repo.List(ctx)
}

// GetByID returns one quote request with its service rows
func (uc *quoteUsecase) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	return uc.repo.GetByID(ctx, id)
}

func submittedAt(createdAt time.Time) time.Time {
	if createdAt.IsZero() {
		return time.Now()
	}
	return createdAt
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
