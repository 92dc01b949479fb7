package mail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-quote-backend/pkg/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSetsBearerAuthAndBody(t *testing.T) {
	var gotAuth string
	var gotMsg mail.Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := mail.NewClient("re_test_key", mail.WithBaseURL(srv.URL))
	err := client.Send(context.Background(), mail.Message{
		From:    "quotes@example.com",
		To:      []string{"admin@example.com"},
		Subject: "New Quote Request QR2026010001",
		HTML:    "<p>hello</p>",
		Attachments: []mail.Attachment{
			{Filename: "summary.pdf", Content: "JVBERi0=", ContentType: "application/pdf"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, []string{"admin@example.com"}, gotMsg.To)
	require.Len(t, gotMsg.Attachments, 1)
	assert.Equal(t, "summary.pdf", gotMsg.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", gotMsg.Attachments[0].ContentType)
}

func TestSendNon2xxReturnsBodyDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := mail.NewClient("re_test_key", mail.WithBaseURL(srv.URL))
	err := client.Send(context.Background(), mail.Message{
		From: "nope", To: []string{"a@b.c"}, Subject: "x", HTML: "y",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestSendWithoutAPIKeyFailsFast(t *testing.T) {
	client := mail.NewClient("")
	assert.False(t, client.IsConfigured())

	err := client.Send(context.Background(), mail.Message{To: []string{"a@b.c"}})
	require.Error(t, err)
}

func TestSendRequiresRecipients(t *testing.T) {
	client := mail.NewClient("re_test_key")
	err := client.Send(context.Background(), mail.Message{From: "a@b.c"})
	require.Error(t, err)
}
