package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feasibility-backend/internal/analyses"
	"feasibility-backend/internal/employees"
	"feasibility-backend/internal/llm"
	"feasibility-backend/internal/llm/gemini"
	"feasibility-backend/internal/matching"
	"feasibility-backend/internal/shared/config"
	"feasibility-backend/internal/shared/metrics"
	"feasibility-backend/internal/shared/server/middleware"
	"feasibility-backend/internal/shared/server/respond"
	"feasibility-backend/internal/shared/storage/db"
	"feasibility-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.DefaultServerOptions())
		if err != nil {
			telemetry.Error("db.connect", map[string]any{"error": err.Error(), "fallback": "memory"})
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				telemetry.Error("db.migrate", map[string]any{"error": err.Error(), "fallback": "memory"})
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var employeeRepo employees.Repo
	if sqlDB != nil {
		employeeRepo = &employees.PGRepo{DB: sqlDB}
	} else {
		memRepo := employees.NewMemoryRepo()
		memRepo.Seed(employees.SampleEmployees())
		employeeRepo = memRepo
	}
	employeeHandler := employees.NewHandler(employeeRepo)

	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			telemetry.Error("llm.init", map[string]any{"error": err.Error()})
			llmClient = llm.PlaceholderClient{}
		} else {
			llmClient = client
		}
	} else {
		telemetry.Info("llm.init", map[string]any{"mode": "placeholder"})
		llmClient = llm.PlaceholderClient{}
	}

	engine, err := matching.NewEngine(matching.Weights{
		Skill:        cfg.WeightSkill,
		Seniority:    cfg.WeightSeniority,
		Rate:         cfg.WeightRate,
		Availability: cfg.WeightAvailability,
	})
	if err != nil {
		telemetry.Error("matching.init", map[string]any{"error": err.Error(), "fallback": "default weights"})
		engine, _ = matching.NewEngine(matching.DefaultWeights())
	}

	analysisSvc := &analyses.Service{
		Repo:           analyses.NewMemoryRepo(),
		LLM:            llmClient,
		Employees:      employeeRepo,
		Matcher:        engine,
		MaxAttempts:    cfg.StageMaxAttempts,
		RetryBaseDelay: cfg.RetryBaseDelay,
		TopCandidates:  cfg.MaxRecommendations,
		CandidateFilter: matching.Predicate{
			MinScore:        cfg.MatchMinScore,
			MaxHourlyRate:   cfg.MatchMaxHourlyRate,
			MinAvailability: cfg.MatchMinAvailability,
		},
	}
	analysisHandler := analyses.NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})
	analysisHandler.RegisterRoutes(api)
	employeeHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
