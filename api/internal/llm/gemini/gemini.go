package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/llm"
	"motioncraft/api/internal/metrics"
	"motioncraft/api/internal/remote"
)

const (
	ServiceName  = "gemini"
	DefaultModel = "gemini-2.5-flash"
)

type Engine struct {
	APIKey  string
	Model   string
	timeout time.Duration
	opts    []option.ClientOption
}

func New(apiKey, model string, timeout time.Duration) *Engine {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = remote.DefaultTimeout
	}
	return &Engine{
		APIKey:  strings.TrimSpace(apiKey),
		Model:   strings.TrimSpace(model),
		timeout: timeout,
	}
}

// WithClientOptions добавляет опции клиента genai (endpoint, http-клиент).
func (e *Engine) WithClientOptions(opts ...option.ClientOption) *Engine {
	e.opts = append(e.opts, opts...)
	return e
}

func (e *Engine) Name() string     { return ServiceName }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) CheckConfig() error {
	if e.APIKey == "" {
		return errs.NewConfigError(ServiceName, "GEMINI_API_KEY")
	}
	return nil
}

// Complete — один вызов generateContent с теми же промптами, что и у DeepSeek.
func (e *Engine) Complete(ctx context.Context, in llm.Request) (string, error) {
	if err := e.CheckConfig(); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append([]option.ClientOption{option.WithAPIKey(e.APIKey)}, e.opts...)
	cl, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", &errs.TransportError{Service: ServiceName, Cause: err}
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.SetTemperature(float32(in.Temperature))
	if in.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(in.MaxTokens))
	}
	if in.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(in.System)}}
	}

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(in.User))
	if err != nil {
		metrics.ObserveRemoteCall(ServiceName, "error", time.Since(start))
		return "", transportError(err)
	}
	metrics.ObserveRemoteCall(ServiceName, "ok", time.Since(start))

	// Кандидат без текста (MAX_TOKENS, пустые parts) не транспортная ошибка:
	// пустой ответ уходит в repair и превращается в fallback-запись.
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &errs.TransportError{Service: ServiceName, Cause: errors.New("empty candidates")}
	}
	return strings.TrimSpace(firstText(resp)), nil
}

func transportError(err error) error {
	te := &errs.TransportError{Service: ServiceName, Cause: err}
	var ge *googleapi.Error
	if errors.As(err, &ge) {
		te.StatusCode = ge.Code
		te.Body = ge.Message
	}
	return te
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}
