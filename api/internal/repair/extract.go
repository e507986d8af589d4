package repair

import (
	"regexp"
	"strings"
)

var (
	// Незакрытый блок тянется до конца ответа.
	jsonFence    = regexp.MustCompile("(?s)```json(.*?)(?:```|$)")
	genericFence = regexp.MustCompile("(?s)```(.*?)(?:```|$)")

	// Первая строка вида "JSON" / "javascript" после открывающих кавычек.
	langTag = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+-]*[ \t]*\r?\n`)
)

// ExtractJSON возвращает полезную нагрузку из ответа модели:
// первый блок ```json, иначе первый любой fenced-блок, иначе весь текст.
func ExtractJSON(raw string) string {
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := genericFence.FindStringSubmatch(raw); m != nil {
		body := strings.TrimLeft(m[1], " \t")
		body = langTag.ReplaceAllString(body, "")
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(raw)
}
