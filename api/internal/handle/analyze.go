package handle

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"motioncraft/api/internal/analysis"
	"motioncraft/api/internal/errs"
	"motioncraft/api/internal/util"
)

func (h *Handle) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analysis.TextRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpload)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	out, err := h.an.Text.Run(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Analysis: out})
}

type imageJSON struct {
	ImageBase64 string `json:"image_base64"`
}

func (h *Handle) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)

	img, err := readImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m := util.SniffMime(img); !util.IsAnalyzable(m) {
		writeError(w, http.StatusBadRequest, "unsupported content type: "+m)
		return
	}

	out, err := h.an.Image.Run(r.Context(), analysis.ImageRequest{Image: img})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Analysis: out})
}

// readImage принимает multipart (поле file) или JSON {image_base64}, в т.ч. data:URL.
func readImage(r *http.Request) ([]byte, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var img []byte
	switch ct {
	case "multipart/form-data":
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("multipart field \"file\" is required")
		}
		defer f.Close()
		if img, err = io.ReadAll(f); err != nil {
			return nil, errors.New("read file: " + err.Error())
		}
	default:
		var req imageJSON
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errors.New("bad json: " + err.Error())
		}
		if strings.TrimSpace(req.ImageBase64) == "" {
			return nil, errors.New("image_base64 is required")
		}
		b, _, err := util.DecodeBase64MaybeDataURL(req.ImageBase64)
		if err != nil {
			return nil, errors.New("bad image_base64")
		}
		img = b
	}
	if len(img) == 0 {
		return nil, errors.New("empty image")
	}
	return img, nil
}

func (h *Handle) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.HTTPStatus(err)
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", code).Msg("analysis failed")
	writeError(w, code, err.Error())
}
