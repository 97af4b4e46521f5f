package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"combatlog/internal/config"
	"combatlog/internal/database"
	"combatlog/internal/external"
	"combatlog/internal/handlers"
	"combatlog/internal/middleware"
	"combatlog/internal/monitoring"
	"combatlog/internal/repository"
	"combatlog/internal/service"
)

// Version du service (à définir lors du build)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Initialisation du logger
	initLogger()

	logrus.WithFields(logrus.Fields{
		"service":    "combatlog",
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("📜 Starting Combatlog Service...")

	// Chargement de la configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}

	// Connexion à la base de données
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	// Exécution des migrations
	if err := database.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	// Initialisation des repositories
	encounterRepo := repository.NewEncounterRepository(db)

	// Client du service Spell (résolution d'identité des actions)
	spellClient := external.NewSpellClient(cfg)

	// Initialisation des services
	analysisService := service.NewAnalysisService(encounterRepo, spellClient, cfg)

	// Métriques Prometheus
	metrics := monitoring.NewMetrics()

	// Initialisation des handlers
	encounterHandler := handlers.NewEncounterHandler(analysisService, cfg)
	wsHandler := handlers.NewWebSocketHandler(analysisService)
	healthHandler := handlers.NewHealthHandler(cfg, db, encounterRepo, metrics, Version)

	// Configuration du mode Gin
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configuration des routes
	router := setupRoutes(encounterHandler, wsHandler, healthHandler, metrics, cfg)

	// Configuration du serveur HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Démarrage du serveur en arrière-plan
	go func() {
		logrus.WithFields(logrus.Fields{
			"host": cfg.Server.Host,
			"port": cfg.Server.Port,
			"env":  cfg.Server.Environment,
		}).Info("📜 Combatlog Service started successfully")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Gestion gracieuse de l'arrêt
	gracefulShutdown(server)
}

// setupRoutes configure toutes les routes du service Combatlog
func setupRoutes(
	encounterHandler *handlers.EncounterHandler,
	wsHandler *handlers.WebSocketHandler,
	healthHandler *handlers.HealthHandler,
	metrics *monitoring.Metrics,
	cfg *config.Config,
) *gin.Engine {
	router := gin.New()

	// Middleware globaux
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(metrics.Middleware())

	// Rate limiting global si configuré
	if cfg.RateLimit.RequestsPerMinute > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}

	// Routes de santé et monitoring (sans auth)
	router.GET(cfg.Monitoring.HealthPath, healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET(cfg.Monitoring.MetricsPath, healthHandler.Metrics)
	router.GET("/stats", healthHandler.Stats)

	// Streaming WebSocket des événements d'un log
	router.GET("/ws/encounters/:id", wsHandler.StreamEncounter)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Routes protégées (authentification JWT requise)
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			encounters := protected.Group("/encounters")
			{
				// Gestion des logs téléversés
				encounters.POST("/", encounterHandler.UploadEncounter)
				encounters.GET("/", encounterHandler.ListEncounters)
				encounters.GET("/:id", encounterHandler.GetEncounter)
				encounters.DELETE("/:id", encounterHandler.DeleteEncounter)

				// Séquence de base et séquences dérivées
				encounters.GET("/:id/events", encounterHandler.GetEvents)
				encounters.GET("/:id/auras", encounterHandler.GetAuras)
				encounters.GET("/:id/casts", encounterHandler.GetCasts)
				encounters.GET("/:id/dps", encounterHandler.GetDps)
				encounters.GET("/:id/resources/:type", encounterHandler.GetResources)
				encounters.GET("/:id/threat", encounterHandler.GetThreat)
			}
		}
	}

	return router
}

// initLogger initialise le système de logging
func initLogger() {
	// Configuration du format de log selon l'environnement
	if os.Getenv("SERVER_ENVIRONMENT") == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.SetOutput(os.Stdout)
}

// gracefulShutdown gère l'arrêt gracieux du service
func gracefulShutdown(server *http.Server) {
	// Canal pour recevoir les signaux d'interruption
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Attendre le signal
	<-quit
	logrus.Info("📜 Combatlog Service is shutting down...")

	// Timeout pour l'arrêt gracieux
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Arrêter les nouvelles connexions
	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("📜 Combatlog Service stopped gracefully")
}
