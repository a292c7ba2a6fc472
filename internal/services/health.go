package services

import (
	"fmt"
	"log"
	"time"

	"github.com/recruitkit/candidatesdb/internal/config"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Message   string            `json:"message"`
	Database  string            `json:"database,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// HealthCheck pings the database and reports overall service health.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   "Candidate tracking API operational",
		Details:   make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Message = fmt.Sprintf("Database connection error: %v", err)
		result.Details["database_error"] = err.Error()
		log.Printf("Health check failed - database connection: %v", err)
		return result
	}

	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Message = fmt.Sprintf("Database ping failed: %v", err)
		result.Details["database_ping_error"] = err.Error()
		log.Printf("Health check failed - database ping: %v", err)
		return result
	}

	result.Database = "ok"
	if cfg.DemoMode {
		result.Details["database_type"] = "sqlite (demo)"
	} else {
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	}

	return result
}
