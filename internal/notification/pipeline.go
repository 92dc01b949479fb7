package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"

	"go-quote-backend/internal/domain"
	"go-quote-backend/pkg/mail"
)

// Sender is the outbound email dependency. *mail.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, msg mail.Message) error
	IsConfigured() bool
}

// Pipeline renders and sends the admin notification (HTML + PDF attachment)
// and the client confirmation (HTML only) for one persisted quote request.
type Pipeline struct {
	mailer     Sender
	from       string
	adminEmail string
}

func NewPipeline(mailer Sender, from, adminEmail string) *Pipeline {
	return &Pipeline{
		mailer:     mailer,
		from:       from,
		adminEmail: adminEmail,
	}
}

type emailData struct {
	domain.QuoteNotification
	SubmittedDate string
	ServiceCount  int
	Budget        string
	TimelineLabel string
}

func newEmailData(payload domain.QuoteNotification) emailData {
	return emailData{
		QuoteNotification: payload,
		SubmittedDate:     payload.SubmittedAt.Format("January 2, 2006 15:04 MST"),
		ServiceCount:      len(payload.ServiceTitles),
		Budget:            orNotSpecified(payload.BudgetRange),
		TimelineLabel:     orNotSpecified(payload.Timeline),
	}
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}

// Notify sends both messages and folds the two outcomes into one result.
// Success is true whenever the admin notification was delivered; a failed
// client confirmation only annotates the message. Nothing here aborts the
// submission that triggered it.
func (p *Pipeline) Notify(ctx context.Context, payload domain.QuoteNotification) domain.NotifyResult {
	var result domain.NotifyResult

	if !p.mailer.IsConfigured() {
		result.Message = "email delivery is not configured"
		return result
	}

	result.Admin = p.sendAdmin(ctx, payload)
	result.Client = p.sendClient(ctx, payload)

	switch {
	case result.Admin.Succeeded && result.Client.Succeeded:
		result.Success = true
	case result.Admin.Succeeded:
		result.Success = true
		result.Message = "client confirmation could not be delivered"
	default:
		result.Message = "admin notification could not be delivered"
	}
	return result
}

func (p *Pipeline) sendAdmin(ctx context.Context, payload domain.QuoteNotification) domain.SendOutcome {
	var outcome domain.SendOutcome

	body, err := renderTemplate(adminTemplate, newEmailData(payload))
	if err != nil {
		outcome.Err = err
		return outcome
	}

	pdfBytes, err := BuildSummaryPDF(payload)
	if err != nil {
		outcome.Err = fmt.Errorf("build summary pdf: %w", err)
		return outcome
	}

	msg := mail.Message{
		From:    p.from,
		To:      []string{p.adminEmail},
		Subject: "New Quote Request " + payload.RequestNumber,
		HTML:    body,
		Attachments: []mail.Attachment{
			{
				Filename:    "quote-request-" + payload.RequestNumber + ".pdf",
				Content:     base64.StdEncoding.EncodeToString(pdfBytes),
				ContentType: "application/pdf",
			},
		},
	}

	outcome.Attempted = true
	if err := p.mailer.Send(ctx, msg); err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Succeeded = true
	return outcome
}

func (p *Pipeline) sendClient(ctx context.Context, payload domain.QuoteNotification) domain.SendOutcome {
	var outcome domain.SendOutcome

	body, err := renderTemplate(clientTemplate, newEmailData(payload))
	if err != nil {
		outcome.Err = err
		return outcome
	}

	msg := mail.Message{
		From:    p.from,
		To:      []string{payload.Email},
		Subject: "We received your quote request " + payload.RequestNumber,
		HTML:    body,
	}

	outcome.Attempted = true
	if err := p.mailer.Send(ctx, msg); err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Succeeded = true
	return outcome
}

func renderTemplate(tmpl *template.Template, data emailData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("execute email template: %w", err)
	}
	return body.String(), nil
}
