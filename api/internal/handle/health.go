package handle

import "net/http"

type healthResponse struct {
	Status   string          `json:"status"`
	Version  string          `json:"version"`
	LLM      string          `json:"llm"`
	Services map[string]bool `json:"services"`
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	services := make(map[string]bool, len(h.checks))
	for _, c := range h.checks {
		services[c.Name()] = c.CheckConfig() == nil
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Version:  h.version,
		LLM:      h.an.LLMName(),
		Services: services,
	})
}
