package model

// HealthStatus is the liveness probe payload. Status is always "healthy";
// orchestrators only check for HTTP 200.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
