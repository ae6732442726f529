package users

import (
	"fmt"
	"net/http"

	"github.com/hilthontt/devops-sample/internal/domain"
	"github.com/hilthontt/devops-sample/internal/infrastructure/json"
	"github.com/hilthontt/devops-sample/internal/infrastructure/sysinfo"
)

type Handler struct {
	userRepository domain.UserRepository
	process        *sysinfo.Process
}

func NewHandler(userRepository domain.UserRepository, process *sysinfo.Process) *Handler {
	return &Handler{
		userRepository: userRepository,
		process:        process,
	}
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns the sample users, each tagged with the current environment
// @Tags         users
// @Produce      json
// @Success      200 {object} listUsersResponse
// @Router       /api/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.userRepository.List(r.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	resp := listUsersResponse{Users: make([]userResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userResponse{
			ID:          u.ID,
			Name:        u.Name,
			Environment: h.process.Environment(),
		})
	}

	return json.Write(w, http.StatusOK, resp)
}
