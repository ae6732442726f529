package info

// infoResponse describes the running application
type infoResponse struct {
	Message     string `json:"message" example:"DevOps Sample Application"`  // Application banner
	Environment string `json:"environment" example:"development"`            // Runtime environment mode
	Version     string `json:"version" example:"1.0.0"`                      // Application version
	Timestamp   string `json:"timestamp" example:"2024-01-01T12:00:00.000Z"` // Current server time
	Hostname    string `json:"hostname" example:"web-7f9c"`                  // Host serving the request
}
