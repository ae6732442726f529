package health

import (
	"net/http"

	"github.com/hilthontt/devops-sample/internal/infrastructure/json"
	"github.com/hilthontt/devops-sample/internal/infrastructure/sysinfo"
)

const StatusHealthy = "healthy"

type Handler struct {
	process *sysinfo.Process
}

func NewHandler(process *sysinfo.Process) *Handler {
	return &Handler{process: process}
}

// GetHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API, including uptime and current timestamp
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse "Service is healthy"
// @Router       /health [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) error {
	return json.Write(w, http.StatusOK, healthResponse{
		Status:      StatusHealthy,
		Environment: h.process.Environment(),
		Uptime:      h.process.Uptime().Seconds(),
		Timestamp:   sysinfo.FormatTimestamp(h.process.Now()),
	})
}
