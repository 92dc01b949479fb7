package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-quote-backend/internal/domain"
	"go-quote-backend/internal/usecase"
	"go-quote-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repository
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, req *domain.QuoteRequest, serviceNames []string) error {
	return m.Called(ctx, req, serviceNames).Error(0)
}

func (m *MockQuoteRepo) List(ctx context.Context) ([]domain.QuoteRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRepo) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, payload domain.QuoteNotification) domain.NotifyResult {
	return m.Called(ctx, payload).Get(0).(domain.NotifyResult)
}

func newSession(name, email string, services ...string) *domain.FormSession {
	return domain.NewFormSession(domain.SubmitQuoteRequest{
		Name:     name,
		Email:    email,
		Services: services,
	})
}

// stubCreated mimics the database filling in generated columns
func stubCreated(repo *MockQuoteRepo, requestNumber string) *mock.Call {
	return repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.QuoteRequest"), mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*domain.QuoteRequest)
			req.ID = "11111111-2222-3333-4444-555555555555"
			req.RequestNumber = requestNumber
			req.CreatedAt = time.Now()
		})
}

func TestSubmitValidationShortCircuitsAllIO(t *testing.T) {
	cases := []struct {
		name    string
		session *domain.FormSession
		wantMsg string
	}{
		{"empty name", newSession("", "jane@x.com", "seo"), usecase.MsgNameRequired},
		{"whitespace name", newSession("   ", "jane@x.com", "seo"), usecase.MsgNameRequired},
		{"empty email", newSession("Jane", "", "seo"), usecase.MsgEmailRequired},
		{"empty selection", newSession("Jane", "jane@x.com"), usecase.MsgSelectionRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockQuoteRepo)
			notifier := new(MockNotifier)
			uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

			result, err := uc.Submit(context.Background(), tc.session)

			require.Error(t, err)
			assert.Nil(t, result)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Equal(t, tc.wantMsg, appErr.Message)

			repo.AssertNotCalled(t, "Create")
			notifier.AssertNotCalled(t, "Notify")
		})
	}
}

func TestSubmitRefusedWhileOutstanding(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	session := newSession("Jane", "jane@x.com", "seo")
	require.True(t, session.BeginSubmit())

	_, err := uc.Submit(context.Background(), session)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, usecase.MsgSubmitInProgress, appErr.Message)
	repo.AssertNotCalled(t, "Create")

	// The guard belongs to the outer caller here; Submit must not clear it
	assert.True(t, session.Submitting())
}

func TestSubmitPersistsResolvedServiceTitles(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	var gotTitles []string
	var gotStatus string
	stubCreated(repo, "QR2026080001").Run(func(args mock.Arguments) {
		req := args.Get(1).(*domain.QuoteRequest)
		req.RequestNumber = "QR2026080001"
		gotTitles = args.Get(2).([]string)
		gotStatus = req.Status
	})
	notifier.On("Notify", mock.Anything, mock.Anything).Return(domain.NotifyResult{Success: true})

	session := newSession("Jane", "jane@x.com", "seo")
	result, err := uc.Submit(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "QR2026080001", result.RequestNumber)
	assert.Equal(t, []string{"SEO & Listing Optimization"}, gotTitles)
	assert.Equal(t, domain.QuoteStatusPending, gotStatus)
}

func TestSubmitUnknownServiceFallsBackToRawID(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	var gotTitles []string
	stubCreated(repo, "QR2026080002").Run(func(args mock.Arguments) {
		gotTitles = args.Get(2).([]string)
	})
	notifier.On("Notify", mock.Anything, mock.Anything).Return(domain.NotifyResult{Success: true})

	session := newSession("Jane", "jane@x.com", "seo", "mystery-service")
	_, err := uc.Submit(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, []string{"SEO & Listing Optimization", "mystery-service"}, gotTitles)
}

func TestSubmitRequestInsertFailureUsesFixedMessage(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	dbErr := fmt.Errorf("%w: connection refused", domain.ErrRequestInsert)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(dbErr)

	session := newSession("Jane", "jane@x.com", "seo")
	_, err := uc.Submit(context.Background(), session)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindPersistence, appErr.Kind)
	assert.Equal(t, usecase.MsgFailedSaveRequest, appErr.Message)
	assert.NotContains(t, appErr.Message, "connection refused")

	// Aborting failures leave the session untouched and send nothing
	notifier.AssertNotCalled(t, "Notify")
	assert.Equal(t, "Jane", session.Form.Name)
	assert.False(t, session.Selection.IsEmpty())
}

func TestSubmitServiceInsertFailureUsesFixedMessage(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	dbErr := fmt.Errorf("%w: value too long", domain.ErrServiceInsert)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(dbErr)

	session := newSession("Jane", "jane@x.com", "seo")
	_, err := uc.Submit(context.Background(), session)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, usecase.MsgFailedSaveServices, appErr.Message)
	notifier.AssertNotCalled(t, "Notify")
}

func TestSubmitSucceedsWhenAllNotificationsFail(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	stubCreated(repo, "QR2026080003")
	notifier.On("Notify", mock.Anything, mock.Anything).Return(domain.NotifyResult{
		Success: false,
		Message: "admin notification could not be delivered",
		Admin:   domain.SendOutcome{Attempted: true, Err: fmt.Errorf("smtp down")},
		Client:  domain.SendOutcome{Attempted: true, Err: fmt.Errorf("smtp down")},
	})

	session := newSession("Jane", "jane@x.com", "seo")
	result, err := uc.Submit(context.Background(), session)

	// Persisted record is authoritative; notification is advisory
	require.NoError(t, err)
	assert.Equal(t, "QR2026080003", result.RequestNumber)
	assert.Equal(t, domain.IntakeForm{}, session.Form)
	assert.True(t, session.Selection.IsEmpty())
}

func TestSubmitEndToEndScenario(t *testing.T) {
	repo := new(MockQuoteRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewQuoteUsecase(repo, notifier, domain.DefaultCatalog())

	var gotTitles []string
	var gotPayload domain.QuoteNotification
	stubCreated(repo, "QR2026080004").Run(func(args mock.Arguments) {
		req := args.Get(1).(*domain.QuoteRequest)
		req.RequestNumber = "QR2026080004"
		gotTitles = args.Get(2).([]string)
	})
	notifier.On("Notify", mock.Anything, mock.Anything).
		Return(domain.NotifyResult{Success: true}).
		Run(func(args mock.Arguments) {
			gotPayload = args.Get(1).(domain.QuoteNotification)
		})

	session := domain.NewFormSession(domain.SubmitQuoteRequest{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Budget:   domain.Budget5kTo20k,
		Timeline: domain.Timeline1To3,
		Services: []string{"market-research", "website"},
	})

	result, err := uc.Submit(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "QR2026080004", result.RequestNumber)
	assert.Equal(t, []string{
		"Market Research & Consumer Insights",
		"Corporate Website Development",
	}, gotTitles)

	assert.Equal(t, "Jane Doe", gotPayload.Name)
	assert.Equal(t, "5k-20k", gotPayload.BudgetRange)
	assert.Equal(t, "1-3", gotPayload.Timeline)
	assert.Equal(t, gotTitles, gotPayload.ServiceTitles)

	// UI contract: selection and every form field reset on success
	assert.True(t, session.Selection.IsEmpty())
	assert.Equal(t, domain.IntakeForm{}, session.Form)
	assert.False(t, session.Submitting())
}
