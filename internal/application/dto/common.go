package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse payload de liveness.
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// DataStatusResponse conteos de la base para diagnóstico.
type DataStatusResponse struct {
	Storage   string `json:"storage"`
	Users     int    `json:"users"`
	Customers int    `json:"customers"`
	Comments  int    `json:"comments"`
	Total     int    `json:"total"`
	IsEmpty   bool   `json:"isEmpty"`
}
