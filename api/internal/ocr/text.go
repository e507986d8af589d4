package ocr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Сентинелы: агрегированный текст никогда не пустой.
const (
	NoTextDetected = "No text detected in image"
	ExtractFailed  = "Error extracting text from image"
)

var errShape = errors.New("unexpected structure")

// ExtractText линеаризует ответ batchAnalyze в одну строку:
// results → results → textDetection → pages → blocks → lines → words → text,
// в порядке массивов, через один пробел.
//
// Отсутствующий (или null) ключ на любом уровне — ветка пропускается.
// Неожиданная форма (не объект / не массив / text не строка) — ExtractFailed.
func ExtractText(doc json.RawMessage) string {
	words, err := collectWords(doc)
	if err != nil {
		return ExtractFailed
	}
	if text := strings.Join(words, " "); text != "" {
		return text
	}
	return NoTextDetected
}

func collectWords(doc json.RawMessage) ([]string, error) {
	var out []string

	results, err := list(doc, "results")
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		detections, err := list(result, "results")
		if err != nil {
			return nil, err
		}
		for _, det := range detections {
			td, ok, err := field(det, "textDetection")
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			words, err := pageWords(td)
			if err != nil {
				return nil, err
			}
			out = append(out, words...)
		}
	}
	return out, nil
}

func pageWords(td json.RawMessage) ([]string, error) {
	var out []string
	pages, err := list(td, "pages")
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		blocks, err := list(page, "blocks")
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			lines, err := list(block, "lines")
			if err != nil {
				return nil, err
			}
			for _, line := range lines {
				words, err := list(line, "words")
				if err != nil {
					return nil, err
				}
				for _, w := range words {
					s, err := str(w, "text")
					if err != nil {
						return nil, err
					}
					out = append(out, s)
				}
			}
		}
	}
	return out, nil
}

// field достаёт ключ из объекта. ok=false, если ключа нет или он null.
func field(raw json.RawMessage, key string) (json.RawMessage, bool, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false, fmt.Errorf("%w: expected object holding %q", errShape, key)
	}
	v, ok := obj[key]
	if !ok || isNull(v) {
		return nil, false, nil
	}
	return v, true, nil
}

// list — field, который обязан быть массивом. Отсутствие = пустой список.
func list(raw json.RawMessage, key string) ([]json.RawMessage, error) {
	v, ok, err := field(raw, key)
	if err != nil || !ok {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil, fmt.Errorf("%w: %q is not an array", errShape, key)
	}
	return items, nil
}

// str — field, который обязан быть строкой. Отсутствие = "".
func str(raw json.RawMessage, key string) (string, error) {
	v, ok, err := field(raw, key)
	if err != nil || !ok {
		return "", err
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("%w: %q is not a string", errShape, key)
	}
	return s, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
