package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"combatlog/internal/config"
)

// NewConnection crée une nouvelle connexion à la base de données
func NewConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := cfg.GetDSN()

	logrus.WithFields(logrus.Fields{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.Name,
		"user":     cfg.User,
	}).Info("Connecting to PostgreSQL database...")

	// Connexion à la base de données
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configuration de la pool de connexions
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Test de la connexion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"host":           cfg.Host,
		"port":           cfg.Port,
		"database":       cfg.Name,
		"max_open_conns": cfg.MaxOpenConns,
		"max_idle_conns": cfg.MaxIdleConns,
		"service":        "combatlog",
	}).Info("Connected to PostgreSQL database successfully")

	return db, nil
}

// RunMigrations exécute les migrations de base de données
func RunMigrations(db *sqlx.DB) error {
	logrus.Info("Running combatlog database migrations...")

	migrationList := []string{
		createEncountersTable,
		createEncountersIndexes,
	}

	for i, migration := range migrationList {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logrus.WithField("migrations", len(migrationList)).Info("Database migrations completed")
	return nil
}
