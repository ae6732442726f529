package info

import (
	"fmt"
	"net/http"

	"github.com/hilthontt/devops-sample/internal/infrastructure/json"
	"github.com/hilthontt/devops-sample/internal/infrastructure/sysinfo"
)

const (
	Message = "DevOps Sample Application"
	Version = "1.0.0"
)

type Handler struct {
	process *sysinfo.Process
}

func NewHandler(process *sysinfo.Process) *Handler {
	return &Handler{process: process}
}

// GetInfo godoc
// @Summary      Application info
// @Description  Returns the application banner, version, environment, host name and current time
// @Tags         info
// @Produce      json
// @Success      200 {object} infoResponse
// @Router       / [get]
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) error {
	hostname, err := h.process.Hostname()
	if err != nil {
		return fmt.Errorf("failed to resolve hostname: %w", err)
	}

	return json.Write(w, http.StatusOK, infoResponse{
		Message:     Message,
		Environment: h.process.Environment(),
		Version:     Version,
		Timestamp:   sysinfo.FormatTimestamp(h.process.Now()),
		Hostname:    hostname,
	})
}
