package domain_test

import (
	"testing"

	"go-quote-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	var sel domain.Selection

	sel.Toggle("seo")
	assert.True(t, sel.IsSelected("seo"))

	sel.Toggle("seo")
	assert.False(t, sel.IsSelected("seo"))

	// Odd toggle count selects, even deselects
	for i := 0; i < 5; i++ {
		sel.Toggle("website")
	}
	assert.True(t, sel.IsSelected("website"))

	for i := 0; i < 4; i++ {
		sel.Toggle("market-research")
	}
	assert.False(t, sel.IsSelected("market-research"))
}

func TestToggleNeverDuplicates(t *testing.T) {
	var sel domain.Selection

	sel.Toggle("seo")
	sel.Toggle("website")
	sel.Toggle("seo")
	sel.Toggle("seo")

	assert.Equal(t, []string{"website", "seo"}, sel.IDs())
	assert.Equal(t, 2, sel.Count())
}

func TestSelectionPreservesInsertionOrder(t *testing.T) {
	var sel domain.Selection

	sel.Toggle("website")
	sel.Toggle("seo")
	sel.Toggle("logistics")
	sel.Toggle("seo") // remove the middle one

	assert.Equal(t, []string{"website", "logistics"}, sel.IDs())
}

func TestSelectionTitlesResolveThroughCatalog(t *testing.T) {
	catalog := domain.DefaultCatalog()
	var sel domain.Selection

	sel.Toggle("market-research")
	sel.Toggle("website")
	sel.Toggle("no-such-service")

	assert.Equal(t, []string{
		"Market Research & Consumer Insights",
		"Corporate Website Development",
		"no-such-service",
	}, sel.Titles(catalog))
}

func TestSelectionReset(t *testing.T) {
	var sel domain.Selection
	sel.Toggle("seo")
	sel.Reset()

	assert.True(t, sel.IsEmpty())
	assert.Empty(t, sel.IDs())
}
