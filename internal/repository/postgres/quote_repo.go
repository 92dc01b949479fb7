package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-quote-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type quoteRepo struct {
	db *pgxpool.Pool
}

// NewQuoteRepository creates a new quote request repository
func NewQuoteRepository(db *pgxpool.Pool) domain.QuoteRepository {
	return &quoteRepo{db: db}
}

// Create inserts the request row and one row per selected service in a single
// transaction. The request number comes from next_request_number(), which
// yields QR<YYYYMM><4-digit counter> scoped per calendar month.
func (r *quoteRepo) Create(ctx context.Context, req *domain.QuoteRequest, serviceNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO quote_requests (name, company, email, phone, budget_range, timeline, message, status, request_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, next_request_number())
		RETURNING id, request_number, created_at`

	if req.Status == "" {
		req.Status = domain.QuoteStatusPending
	}

	err = tx.QueryRow(ctx, query,
		req.Name,
		req.Company,
		req.Email,
		req.Phone,
		req.BudgetRange,
		req.Timeline,
		req.Message,
		req.Status,
	).Scan(&req.ID, &req.RequestNumber, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRequestInsert, err)
	}

	serviceQuery := `
		INSERT INTO quote_request_services (quote_request_id, service_name)
		VALUES ($1, $2)
		RETURNING id`

	for _, name := range serviceNames {
		svc := domain.QuoteRequestService{
			QuoteRequestID: req.ID,
			ServiceName:    name,
		}
		if err := tx.QueryRow(ctx, serviceQuery, req.ID, name).Scan(&svc.ID); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrServiceInsert, err)
		}
		req.Services = append(req.Services, svc)
	}

	return tx.Commit(ctx)
}

// List retrieves all quote requests, newest first, without service rows
func (r *quoteRepo) List(ctx context.Context) ([]domain.QuoteRequest, error) {
	query := `
		SELECT id, name, company, email, phone, budget_range, timeline, message, status, request_number, created_at
		FROM quote_requests
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.QuoteRequest
	for rows.Next() {
		var qr domain.QuoteRequest
		if err := rows.Scan(
			&qr.ID, &qr.Name, &qr.Company, &qr.Email, &qr.Phone,
			&qr.BudgetRange, &qr.Timeline, &qr.Message, &qr.Status,
			&qr.RequestNumber, &qr.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, qr)
	}
	return requests, rows.Err()
}

// GetByID retrieves one quote request with its service rows
func (r *quoteRepo) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	query := `
		SELECT id, name, company, email, phone, budget_range, timeline, message, status, request_number, created_at
		FROM quote_requests
		WHERE id = $1`

	var qr domain.QuoteRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&qr.ID, &qr.Name, &qr.Company, &qr.Email, &qr.Phone,
		&qr.BudgetRange, &qr.Timeline, &qr.Message, &qr.Status,
		&qr.RequestNumber, &qr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	serviceQuery := `
		SELECT id, quote_request_id, service_name, custom_description, estimated_price, final_price
		FROM quote_request_services
		WHERE quote_request_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, serviceQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var svc domain.QuoteRequestService
		if err := rows.Scan(
			&svc.ID, &svc.QuoteRequestID, &svc.ServiceName,
			&svc.CustomDescription, &svc.EstimatedPrice, &svc.FinalPrice,
		); err != nil {
			return nil, err
		}
		qr.Services = append(qr.Services, svc)
	}
	return &qr, rows.Err()
}
