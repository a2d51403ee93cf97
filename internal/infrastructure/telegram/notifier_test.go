package telegram

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDigest(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotForm = map[string]string{
			"chat_id":    r.PostForm.Get("chat_id"),
			"text":       r.PostForm.Get("text"),
			"parse_mode": r.PostForm.Get("parse_mode"),
			"preview":    r.PostForm.Get("disable_web_page_preview"),
		}
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7}}`)
	}))
	defer server.Close()

	n := NewNotifier("token", "42").WithAPIBase(server.URL + "/")
	require.NoError(t, n.PublishDigest(context.Background(), "<b>Acme_Corp</b> readiness 100/100"))

	assert.Equal(t, "/bottoken/sendMessage", gotPath)
	assert.Equal(t, "42", gotForm["chat_id"])
	assert.Equal(t, "<b>Acme_Corp</b> readiness 100/100", gotForm["text"])
	assert.Equal(t, "HTML", gotForm["parse_mode"])
	assert.Equal(t, "true", gotForm["preview"])
}

func TestPublishDigestErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NewNotifier("", "42").PublishDigest(context.Background(), "x"), ErrNotConfigured)

	tests := map[string]struct {
		status int
		body   string
		want   string
	}{
		"plain status":      {status: http.StatusUnauthorized, body: "nope", want: "401"},
		"api description":   {status: http.StatusBadRequest, body: `{"ok":false,"error_code":400,"description":"Bad Request: can't parse entities"}`, want: "can't parse entities"},
		"ok false with 200": {status: http.StatusOK, body: `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked"}`, want: "bot was blocked"},
		"garbled success":   {status: http.StatusOK, body: "<html>", want: "decode response"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer server.Close()

			err := NewNotifier("token", "42").WithAPIBase(server.URL).PublishDigest(context.Background(), "x")
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestPublishDigestHidesToken(t *testing.T) {
	t.Parallel()

	err := NewNotifier("secret-token", "42").WithAPIBase("http://127.0.0.1:1").PublishDigest(context.Background(), "x")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}
