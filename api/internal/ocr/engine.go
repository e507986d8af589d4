package ocr

import (
	"context"
	"encoding/json"
)

// Engine — OCR/классификация изображения. Analyze возвращает сырой ответ
// сервиса; текст из него достаёт ExtractText.
type Engine interface {
	Name() string
	// CheckConfig проверяет ключи до любого сетевого вызова.
	CheckConfig() error
	Analyze(ctx context.Context, image []byte) (json.RawMessage, error)
}
