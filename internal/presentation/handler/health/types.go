package health

// healthResponse represents the health status of the API
type healthResponse struct {
	Status      string  `json:"status" example:"healthy"`                     // Always "healthy" while the process serves requests
	Environment string  `json:"environment" example:"development"`            // Runtime environment mode
	Uptime      float64 `json:"uptime" example:"12.345"`                      // Seconds since process start
	Timestamp   string  `json:"timestamp" example:"2024-01-01T12:00:00.000Z"` // Current server time
}
