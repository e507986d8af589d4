package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motioncraft/api/internal/analysis"
	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/llm/deepseek"
	"motioncraft/api/internal/ocr/yandex"
)

// Оба удалённых сервиса подняты на httptest; проверяется порядок вызовов.
func TestImagePipeline_RealClients(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	vision := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		order = append(order, "ocr")
		mu.Unlock()
		_, _ = w.Write([]byte(buckDoc))
	}))
	defer vision.Close()

	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		order = append(order, "llm")
		mu.Unlock()

		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
			MaxTokens int `json:"max_tokens"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Messages[1].Content, "Buck Studio")
		assert.Equal(t, 1500, req.MaxTokens)

		reply, _ := json.Marshal(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": "```json\n" + visualReply + "\n```"}}},
		})
		_, _ = w.Write(reply)
	}))
	defer chat.Close()

	a := New(
		yandex.New("vision-key", "folder", vision.URL, time.Second),
		deepseek.New("sk", chat.URL, "", time.Second),
		zerolog.Nop(),
	)
	got, err := a.Image.Run(context.Background(), analysis.ImageRequest{Image: []byte{0x89, 'P', 'N', 'G'}})
	require.NoError(t, err)
	assert.Equal(t, 9, got.DesignScore)
	assert.Equal(t, []string{"ocr", "llm"}, order)
}

func TestTextPipeline_RealClient_Status(t *testing.T) {
	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer chat.Close()

	a := New(yandex.New("", "", "", 0), deepseek.New("sk", chat.URL, "", time.Second), zerolog.Nop())
	_, err := a.Text.Run(context.Background(), analysis.TextRequest{Text: "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errs.HTTPStatus(err))
}
