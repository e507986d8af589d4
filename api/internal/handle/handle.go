package handle

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"motioncraft/api/internal/analyzer"
)

// Checker — всё, что умеет сообщить о своей конфигурации (LLM и OCR движки).
type Checker interface {
	Name() string
	CheckConfig() error
}

type Handle struct {
	an      *analyzer.Analyzer
	version string
	checks  []Checker
	log     zerolog.Logger
}

// New: checks — сервисы, которые показываются в /health (в т.ч. неактивный LLM-провайдер).
func New(an *analyzer.Analyzer, version string, log zerolog.Logger, checks ...Checker) *Handle {
	return &Handle{
		an:      an,
		version: version,
		checks:  checks,
		log:     log,
	}
}

type response struct {
	Success  bool   `json:"success"`
	Analysis any    `json:"analysis,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, response{Success: false, Detail: detail})
}
