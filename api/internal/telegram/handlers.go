package telegram

import (
	"context"
	"sort"
	"strings"

	"motioncraft/api/internal/analysis"
)

const companyPrefix = "Компания:"

func (r *Router) analyzeText(ctx context.Context, chatID int64, text string) {
	req := parseTextMessage(text)
	if req.Text == "" {
		r.send(chatID, "Пустой текст. Пришлите описание конкурента.")
		return
	}
	r.send(chatID, "Анализирую текст…")

	out, err := r.Analyzer.Text.Run(ctx, req)
	if err != nil {
		r.SendError(chatID, err)
		return
	}
	r.send(chatID, titled(req.CompetitorName, out.Report()))
}

// parseTextMessage: первая строка «Компания: X» (или «Company: X») — имя конкурента.
func parseTextMessage(text string) analysis.TextRequest {
	text = strings.TrimSpace(text)
	first, rest, _ := strings.Cut(text, "\n")
	for _, p := range []string{companyPrefix, "Company:"} {
		if name, ok := cutPrefixFold(strings.TrimSpace(first), p); ok {
			return analysis.TextRequest{
				Text:           strings.TrimSpace(rest),
				CompetitorName: strings.TrimSpace(name),
			}
		}
	}
	return analysis.TextRequest{Text: text}
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}

func titled(name, body string) string {
	if name = strings.TrimSpace(name); name == "" {
		return body
	}
	return "🏢 " + name + "\n\n" + body
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
