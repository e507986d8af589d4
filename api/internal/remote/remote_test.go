package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motioncraft/api/internal/errs"
)

func TestPostJSON_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "deepseek-chat", in["model"])
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New("deepseek", time.Second)
	out, err := c.PostJSON(context.Background(), srv.URL, map[string]string{"Authorization": "Bearer k"}, map[string]any{"model": "deepseek-chat"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))
}

func TestPostJSON_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := New("deepseek", time.Second).PostJSON(context.Background(), srv.URL, nil, map[string]any{})
	require.Error(t, err)

	var te *errs.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusTooManyRequests, te.StatusCode)
	assert.Equal(t, "quota exceeded", te.Body)
	assert.Equal(t, "deepseek", te.Service)
}

func TestPostJSON_LongErrorBodyCutByRune(t *testing.T) {
	body := strings.Repeat("ж", maxErrBody+10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, body, http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New("yandex_vision", time.Second).PostJSON(context.Background(), srv.URL, nil, map[string]any{})
	var te *errs.TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, utf8.ValidString(te.Body))
	assert.Equal(t, strings.Repeat("ж", maxErrBody)+"...", te.Body)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "абв", truncate("абв", 3))
	assert.Equal(t, "аб...", truncate("абв", 2))
	assert.Equal(t, "ab...", truncate("abc", 2))
}

func TestPostJSON_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := New("yandex_vision", 50*time.Millisecond).PostJSON(context.Background(), srv.URL, nil, map[string]any{})
	require.Error(t, err)

	var te *errs.TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, te.Timeout())
	assert.Equal(t, http.StatusGatewayTimeout, errs.HTTPStatus(err))
}

func TestPostJSON_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New("deepseek", time.Second).PostJSON(context.Background(), url, nil, map[string]any{})
	require.Error(t, err)
	assert.True(t, errs.IsTransport(err))
}
