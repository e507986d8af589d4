package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ConfigError означает, что для сервиса не задан обязательный ключ.
// Возвращается до любого сетевого вызова.
type ConfigError struct {
	Service string // "deepseek" | "yandex_vision" | "gemini"
	Key     string // имя переменной окружения
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API key not configured (%s)", e.Service, e.Key)
}

func NewConfigError(service, key string) *ConfigError {
	return &ConfigError{Service: service, Key: key}
}

// TransportError — сетевой сбой, не-2xx статус или нечитаемый конверт ответа.
// Никогда не ретраится.
type TransportError struct {
	Service    string
	StatusCode int    // 0, если ответа не было
	Body       string // усечённое тело ответа
	Cause      error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s %d: %s", e.Service, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %d", e.Service, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Service, e.Cause)
	default:
		return e.Service + ": transport error"
	}
}

func (e *TransportError) Unwrap() error { return e.Cause }

// Timeout сообщает, был ли сбой вызван истечением таймаута.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Cause, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Cause, &ne) && ne.Timeout()
}

func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// HTTPStatus отображает таксономию ошибок пайплайна на HTTP-статус границы.
func HTTPStatus(err error) int {
	var (
		ce *ConfigError
		te *TransportError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ce):
		return http.StatusServiceUnavailable
	case errors.As(err, &te):
		if te.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
