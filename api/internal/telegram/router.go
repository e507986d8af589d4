package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"motioncraft/api/internal/analyzer"
	"motioncraft/api/internal/errs"
)

// maxMessage — запас до лимита Telegram в 4096 символов.
const maxMessage = 3900

// Bot — подмножество *tgbotapi.BotAPI, которым пользуется роутер.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

type Router struct {
	Bot      Bot
	Analyzer *analyzer.Analyzer
	Log      zerolog.Logger

	// HTTP-клиент для скачивания файлов из Telegram; nil — клиент по умолчанию.
	HTTPClient *http.Client
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil {
		return
	}
	log := r.Log.With().Int64("chat_id", msg.Chat.ID).Int("update_id", upd.UpdateID).Logger()
	ctx = log.WithContext(ctx)

	switch {
	case msg.IsCommand():
		r.HandleCommand(msg)
	case len(msg.Photo) > 0:
		// самое большое превью — последнее
		r.analyzePhoto(ctx, msg.Chat.ID, msg.Photo[len(msg.Photo)-1].FileID, msg.Caption)
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		r.analyzePhoto(ctx, msg.Chat.ID, msg.Document.FileID, msg.Caption)
	case strings.TrimSpace(msg.Text) != "":
		r.analyzeText(ctx, msg.Chat.ID, msg.Text)
	}
}

func (r *Router) HandleCommand(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, startText)
	case "health":
		r.send(cid, healthText(r.Analyzer.Services(), r.Analyzer.LLMName()))
	default:
		r.send(cid, "Неизвестная команда")
	}
}

const startText = "Пришли текст с сайта конкурента — верну оценку и рекомендации.\n" +
	"Первая строка вида «Компания: Название» задаёт имя конкурента.\n" +
	"Пришли скриншот — распознаю текст и оценю визуальный стиль (подпись попадёт в заголовок).\n" +
	"Команды: /health"

func healthText(services map[string]bool, llmName string) string {
	var b strings.Builder
	b.WriteString("LLM: " + llmName + "\n")
	for _, name := range sortedKeys(services) {
		mark := "❌"
		if services[name] {
			mark = "✅"
		}
		b.WriteString(mark + " " + name + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, truncate(text, maxMessage))
	if _, err := r.Bot.Send(msg); err != nil {
		r.Log.Error().Err(err).Int64("chat_id", chatID).Msg("telegram send failed")
	}
}

func (r *Router) SendError(chatID int64, err error) {
	r.send(chatID, errorText(err))
}

func errorText(err error) string {
	var ce *errs.ConfigError
	var te *errs.TransportError
	switch {
	case errors.As(err, &ce):
		return "⚠️ Сервис " + ce.Service + " не настроен: задайте " + ce.Key
	case errors.As(err, &te) && te.Timeout():
		return "⌛ " + te.Service + " не ответил вовремя, попробуйте позже"
	case errors.As(err, &te):
		return "Ошибка " + te.Service + ": " + err.Error()
	default:
		return "Ошибка анализа: " + err.Error()
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "…"
}

func (r *Router) httpClient() *http.Client {
	if r.HTTPClient != nil {
		return r.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}
