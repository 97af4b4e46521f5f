// internal/monitoring/health.go
package monitoring

import (
	"context"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"

	"combatlog/internal/models"
)

// CheckDatabase contrôle la connectivité de la base de données
func CheckDatabase(db *sqlx.DB) *models.DatabaseHealth {
	health := &models.DatabaseHealth{Status: models.HealthStatusHealthy}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		health.Status = models.HealthStatusUnhealthy
		health.Error = err.Error()
		return health
	}
	health.ResponseTime = time.Since(start)

	stats := db.Stats()
	health.Connections = stats.OpenConnections
	health.MaxConnections = stats.MaxOpenConnections

	return health
}

// CheckSystem contrôle l'état du runtime
func CheckSystem() *models.SystemHealth {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &models.SystemHealth{
		MemoryUsage: float64(mem.HeapInuse) / float64(mem.Sys),
		Goroutines:  runtime.NumGoroutine(),
		GCCycles:    mem.NumGC,
	}
}
