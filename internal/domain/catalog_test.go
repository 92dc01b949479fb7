package domain_test

import (
	"testing"

	"go-quote-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTitleOfResolvesEveryCatalogEntry(t *testing.T) {
	catalog := domain.DefaultCatalog()

	for _, cat := range catalog.Categories() {
		for _, svc := range cat.Services {
			assert.Equal(t, svc.Title, catalog.TitleOf(svc.ID))
			assert.True(t, catalog.Has(svc.ID))
		}
	}
}

func TestTitleOfFallsBackToRawID(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Equal(t, "ghost-service", catalog.TitleOf("ghost-service"))
	assert.False(t, catalog.Has("ghost-service"))
}

func TestDefaultCatalogKnownTitles(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Equal(t, "SEO & Listing Optimization", catalog.TitleOf("seo"))
	assert.Equal(t, "Market Research & Consumer Insights", catalog.TitleOf("market-research"))
	assert.Equal(t, "Corporate Website Development", catalog.TitleOf("website"))
}
