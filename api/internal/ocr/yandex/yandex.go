package yandex

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/remote"
	"motioncraft/api/internal/util"
)

const (
	ServiceName     = "yandex_vision"
	DefaultEndpoint = "https://vision.api.cloud.yandex.net/vision/v1/batchAnalyze"
)

var defaultLangs = []string{"en", "ru"}

type Engine struct {
	apiKey   string
	folderID string
	endpoint string
	langs    []string
	caller   *remote.Caller
}

func New(apiKey, folderID, endpoint string, timeout time.Duration) *Engine {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Engine{
		apiKey:   apiKey,
		folderID: folderID,
		endpoint: endpoint,
		langs:    defaultLangs,
		caller:   remote.New(ServiceName, timeout),
	}
}

func (e *Engine) Name() string { return ServiceName }

func (e *Engine) CheckConfig() error {
	if e.apiKey == "" {
		return errs.NewConfigError(ServiceName, "YANDEX_VISION_API_KEY")
	}
	return nil
}

type request struct {
	FolderID     string        `json:"folderId,omitempty"`
	AnalyzeSpecs []analyzeSpec `json:"analyze_specs"`
}

type analyzeSpec struct {
	Content  string    `json:"content"`
	MimeType string    `json:"mime_type,omitempty"` // только для PDF
	Features []feature `json:"features"`
}

type feature struct {
	Type                string               `json:"type"` // "TEXT_DETECTION" | "CLASSIFICATION"
	TextDetectionConfig *textDetectionConfig `json:"text_detection_config,omitempty"`
}

type textDetectionConfig struct {
	LanguageCodes []string `json:"language_codes"`
}

// Analyze отправляет изображение на TEXT_DETECTION + CLASSIFICATION и
// возвращает тело ответа как есть.
func (e *Engine) Analyze(ctx context.Context, image []byte) (json.RawMessage, error) {
	if err := e.CheckConfig(); err != nil {
		return nil, err
	}
	spec := analyzeSpec{
		Content: base64.StdEncoding.EncodeToString(image),
		Features: []feature{
			{Type: "TEXT_DETECTION", TextDetectionConfig: &textDetectionConfig{LanguageCodes: e.langs}},
			{Type: "CLASSIFICATION"},
		},
	}
	if util.SniffMime(image) == "application/pdf" {
		spec.MimeType = "application/pdf"
	}
	body := request{FolderID: e.folderID, AnalyzeSpecs: []analyzeSpec{spec}}

	raw, err := e.caller.PostJSON(ctx, e.endpoint, map[string]string{
		"Authorization": "Api-Key " + e.apiKey,
	}, body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, &errs.TransportError{Service: ServiceName, Cause: errors.New("response is not valid JSON")}
	}
	return json.RawMessage(raw), nil
}
