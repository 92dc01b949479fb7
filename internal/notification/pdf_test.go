package notification_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"go-quote-backend/internal/domain"
	"go-quote-backend/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryPDFProducesValidDocument(t *testing.T) {
	pdfBytes, err := notification.BuildSummaryPDF(testPayload())

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
	assert.Contains(t, string(pdfBytes), "%%EOF")
}

func TestBuildSummaryPDFWithoutMessage(t *testing.T) {
	payload := testPayload()
	payload.Message = ""

	withMessage, err := notification.BuildSummaryPDF(testPayload())
	require.NoError(t, err)

	withoutMessage, err := notification.BuildSummaryPDF(payload)
	require.NoError(t, err)

	// The Additional Information section only exists when a message was left
	assert.Less(t, len(withoutMessage), len(withMessage))
}

func TestBuildSummaryPDFPaginatesLongSelections(t *testing.T) {
	payload := domain.QuoteNotification{
		RequestNumber: "QR2026080099",
		Name:          "Jane Doe",
		Email:         "jane@x.com",
		SubmittedAt:   time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}
	for i := 0; i < 60; i++ {
		payload.ServiceTitles = append(payload.ServiceTitles,
			"A deliberately long service title that wraps across the available width of the value column")
	}

	pdfBytes, err := notification.BuildSummaryPDF(payload)

	require.NoError(t, err)
	// 60 wrapped rows cannot fit one page; the page tree must count more
	match := regexp.MustCompile(`/Count (\d+)`).FindStringSubmatch(string(pdfBytes))
	require.NotNil(t, match)
	pages, err := strconv.Atoi(match[1])
	require.NoError(t, err)
	assert.Greater(t, pages, 1)
}
