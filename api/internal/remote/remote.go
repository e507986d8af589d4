package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/metrics"
)

const DefaultTimeout = 30 * time.Second

// maxErrBody — сколько символов тела ответа сохранять в TransportError.
const maxErrBody = 1024

// Caller отправляет один JSON-запрос на удалённый сервис. Без ретраев.
type Caller struct {
	service string
	httpc   *http.Client
}

func New(service string, timeout time.Duration) *Caller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Caller{
		service: service,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Caller) Service() string { return c.service }

// PostJSON сериализует payload, выполняет POST и возвращает тело ответа.
// Любой не-2xx статус и любой сетевой сбой возвращаются как *errs.TransportError.
func (c *Caller) PostJSON(ctx context.Context, endpoint string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", c.service, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &errs.TransportError{Service: c.service, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.ObserveRemoteCall(c.service, "error", time.Since(start))
		return nil, &errs.TransportError{Service: c.service, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveRemoteCall(c.service, "error", time.Since(start))
		return nil, &errs.TransportError{Service: c.service, StatusCode: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveRemoteCall(c.service, strconv.Itoa(resp.StatusCode), time.Since(start))
		return nil, &errs.TransportError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(raw)), maxErrBody),
		}
	}
	metrics.ObserveRemoteCall(c.service, "ok", time.Since(start))
	return raw, nil
}

// truncate режет по рунам: тело ошибки часто на кириллице.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
