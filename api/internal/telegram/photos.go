package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"motioncraft/api/internal/analysis"
)

// maxPhotoBytes — Telegram Bot API всё равно не отдаёт файлы больше 20 МБ.
var maxPhotoBytes int64 = 20 << 20

func (r *Router) analyzePhoto(ctx context.Context, chatID int64, fileID, caption string) {
	url, err := r.Bot.GetFileDirectURL(fileID)
	if err != nil {
		r.SendError(chatID, fmt.Errorf("получение файла: %w", err))
		return
	}
	img, err := r.download(ctx, url)
	if err != nil {
		r.SendError(chatID, fmt.Errorf("скачивание фото: %w", err))
		return
	}
	r.send(chatID, "Фото принято, распознаю текст и анализирую…")

	out, err := r.Analyzer.Image.Run(ctx, analysis.ImageRequest{Image: img})
	if err != nil {
		r.SendError(chatID, err)
		return
	}
	r.send(chatID, titled(caption, out.Report()))
}

func (r *Router) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	// Читаем на байт больше лимита, чтобы отличить большой файл от обрезанного.
	img, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(img)) > maxPhotoBytes {
		return nil, fmt.Errorf("file exceeds %d bytes", maxPhotoBytes)
	}
	return img, nil
}
