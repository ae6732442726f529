package users

// userResponse represents a user together with the environment serving it
type userResponse struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"John Doe"`
	Environment string `json:"environment" example:"development"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}
