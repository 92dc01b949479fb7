package domain_test

import (
	"testing"

	"go-quote-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSetFieldMergesSingleField(t *testing.T) {
	var form domain.IntakeForm

	form.SetField("name", "Jane Doe")
	form.SetField("email", "jane@x.com")
	form.SetField("budget", domain.Budget5kTo20k)
	form.SetField("nonsense", "ignored")

	assert.Equal(t, "Jane Doe", form.Name)
	assert.Equal(t, "jane@x.com", form.Email)
	assert.Equal(t, "5k-20k", form.Budget)
	assert.Empty(t, form.Company)
	assert.Empty(t, form.Message)
}

func TestFormResetClearsEverything(t *testing.T) {
	form := domain.IntakeForm{
		Name: "Jane", Company: "Acme", Email: "j@x.com",
		Phone: "+123", Budget: "<5k", Timeline: "flexible", Message: "hi",
	}
	form.Reset()

	assert.Equal(t, domain.IntakeForm{}, form)
}

func TestFormSessionSubmitGuard(t *testing.T) {
	session := &domain.FormSession{}

	assert.True(t, session.BeginSubmit())
	assert.True(t, session.Submitting())
	// Second attempt while outstanding must be refused
	assert.False(t, session.BeginSubmit())

	session.EndSubmit()
	assert.False(t, session.Submitting())
	assert.True(t, session.BeginSubmit())
}

func TestNewFormSessionDeduplicatesServices(t *testing.T) {
	session := domain.NewFormSession(domain.SubmitQuoteRequest{
		Name:     "Jane",
		Email:    "j@x.com",
		Services: []string{"seo", "website", "seo"},
	})

	assert.Equal(t, []string{"seo", "website"}, session.Selection.IDs())
	assert.Equal(t, "Jane", session.Form.Name)
}
