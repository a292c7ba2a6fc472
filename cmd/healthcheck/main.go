package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/recruitkit/candidatesdb/internal/config"
	"github.com/recruitkit/candidatesdb/internal/database"
	"github.com/recruitkit/candidatesdb/internal/services"
	"github.com/recruitkit/candidatesdb/internal/utils"
)

// Standalone healthcheck binary for container HEALTHCHECK directives:
// checks the database and the API server's listener, prints a JSON report
// and exits non-zero when anything is unreachable.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	// The in-process check cannot see the server's listener; probe it too
	if err := utils.PingAPI(cfg.ServerURL); err != nil {
		result.Status = "unhealthy"
		result.Message = fmt.Sprintf("API server ping failed: %v", err)
		if result.Details == nil {
			result.Details = make(map[string]string)
		}
		result.Details["server_error"] = err.Error()
	} else if result.Details != nil {
		result.Details["server_url"] = cfg.ServerURL
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "OK" {
		os.Exit(1)
	}
	os.Exit(0)
}
