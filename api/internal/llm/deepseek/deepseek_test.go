package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/llm"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "sys", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "usr", req.Messages[1].Content)
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)
		assert.Equal(t, 2000, req.MaxTokens)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  ` + "```json\\n{}\\n```" + `  "}}]}`))
	}))
	defer srv.Close()

	e := New("sk-test", srv.URL, "", time.Second)
	out, err := e.Complete(context.Background(), llm.Request{System: "sys", User: "usr", Temperature: 0.7, MaxTokens: 2000})
	require.NoError(t, err)
	assert.Equal(t, "```json\n{}\n```", out)
}

func TestComplete_MissingKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls.Add(1) }))
	defer srv.Close()

	_, err := New("", srv.URL, "", time.Second).Complete(context.Background(), llm.Request{})
	assert.True(t, errs.IsConfig(err))
	assert.Zero(t, calls.Load())
}

func TestComplete_BadEnvelope(t *testing.T) {
	for name, body := range map[string]string{
		"not json":      "oops",
		"empty choices": `{"choices":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := New("k", srv.URL, "", time.Second).Complete(context.Background(), llm.Request{})
			assert.True(t, errs.IsTransport(err))
		})
	}
}

func TestComplete_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Insufficient Balance", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	_, err := New("k", srv.URL, "", time.Second).Complete(context.Background(), llm.Request{})
	var te *errs.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusPaymentRequired, te.StatusCode)
	assert.Contains(t, te.Error(), "Insufficient Balance")
}
