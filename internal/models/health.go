package models

import "time"

const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
)

// DatabaseStatus reports the document store handle as seen by a health check.
type DatabaseStatus struct {
	Name      string `json:"name,omitempty"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status      string           `json:"status"`
	Environment string           `json:"environment"`
	Database    DatabaseStatus   `json:"database"`
	CheckedAt   CurrentTimeModel `json:"checkedAt"`
}

// NewHealthData derives the overall status from the database status.
func NewHealthData(env string, db DatabaseStatus, at time.Time) HealthData {
	status := HealthOK
	if !db.Reachable {
		status = HealthDegraded
	}
	return HealthData{
		Status:      status,
		Environment: env,
		Database:    db,
		CheckedAt:   NewCurrentTime(at),
	}
}
