package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
)

// HealthcheckHandler responde 503 enquanto o catálogo de arquétipos não estiver carregado
func HealthcheckHandler(optimizer scheduling.Optimizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ready := optimizer != nil && optimizer.IsReady()

		status, code := "ok", http.StatusOK
		if !ready {
			status, code = "unavailable", http.StatusServiceUnavailable
		}

		writeJSON(w, r, code, map[string]any{
			"status":          status,
			"time":            time.Now().UTC().Format(time.RFC3339),
			"optimizer_ready": ready,
		})
	})
}
