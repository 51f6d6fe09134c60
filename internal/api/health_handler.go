package api

import (
	"net/http"

	"github.com/vendify/vendify-api/internal/api/shared"
	"github.com/vendify/vendify-api/internal/config"
)

// HealthResponse reports liveness plus the presence of the critical
// configuration values, without exposing the values themselves.
type HealthResponse struct {
	OK  bool `json:"ok"`
	Env struct {
		Environment string `json:"environment"`
		FrontendURL bool   `json:"frontend_url"`
	} `json:"env"`
	Database struct {
		URLPresent bool `json:"url_present"`
	} `json:"database"`
}

// HealthHandler handles GET /health requests.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health responds with liveness and config-presence flags.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	var resp HealthResponse
	resp.OK = true
	resp.Env.Environment = h.cfg.Server.Env
	resp.Env.FrontendURL = h.cfg.CORS.FrontendURL != ""
	resp.Database.URLPresent = h.cfg.Database.URL != ""

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Banner responds with the plain-text root banner.
func Banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Vendify API ✅ Use /health, /docs, /clientes, /produtos, /vendas"))
}
