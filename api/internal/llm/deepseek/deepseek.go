package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/llm"
	"motioncraft/api/internal/remote"
)

const (
	ServiceName  = "deepseek"
	DefaultURL   = "https://api.deepseek.com/v1/chat/completions"
	DefaultModel = "deepseek-chat"
)

type Engine struct {
	APIKey string
	Model  string
	URL    string
	caller *remote.Caller
}

func New(key, url, model string, timeout time.Duration) *Engine {
	if url == "" {
		url = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Engine{
		APIKey: key,
		Model:  model,
		URL:    url,
		caller: remote.New(ServiceName, timeout),
	}
}

func (e *Engine) Name() string { return ServiceName }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) CheckConfig() error {
	if e.APIKey == "" {
		return errs.NewConfigError(ServiceName, "DEEPSEEK_API_KEY")
	}
	return nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete — один вызов chat/completions. Содержимое ответа не разбирается:
// это делает repair. Ошибкой считается только транспорт и битый конверт.
func (e *Engine) Complete(ctx context.Context, in llm.Request) (string, error) {
	if err := e.CheckConfig(); err != nil {
		return "", err
	}
	body := chatRequest{
		Model: e.Model,
		Messages: []message{
			{Role: "system", Content: in.System},
			{Role: "user", Content: in.User},
		},
		Temperature: in.Temperature,
		MaxTokens:   in.MaxTokens,
	}
	raw, err := e.caller.PostJSON(ctx, e.URL, map[string]string{
		"Authorization": "Bearer " + e.APIKey,
	}, body)
	if err != nil {
		return "", err
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &errs.TransportError{Service: ServiceName, Cause: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Choices) == 0 {
		return "", &errs.TransportError{Service: ServiceName, Cause: errors.New("empty choices")}
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
