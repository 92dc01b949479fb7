package domain

import (
	"context"
	"time"
)

// QuoteNotification is the payload handed to the notification pipeline after
// a request has been persisted.
type QuoteNotification struct {
	RequestNumber string
	Name          string
	Company       string
	Email         string
	Phone         string
	BudgetRange   string
	Timeline      string
	Message       string
	ServiceTitles []string
	SubmittedAt   time.Time
}

// SendOutcome records one email send attempt
type SendOutcome struct {
	Attempted bool
	Succeeded bool
	Err       error
}

// NotifyResult aggregates the admin and client sends into one outcome.
// Success is true whenever the admin mail went out; a failed client
// confirmation only annotates the message, admin visibility comes first.
type NotifyResult struct {
	Success bool
	Message string
	Admin   SendOutcome
	Client  SendOutcome
}

// Notifier delivers the admin notification and the client confirmation.
// Failures are reported in the result, never by aborting the submission.
type Notifier interface {
	Notify(ctx context.Context, payload QuoteNotification) NotifyResult
}
