package main

import (
	"log"

	"feasibility-backend/internal/shared/config"
	"feasibility-backend/internal/shared/server"
	"feasibility-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	if err := telemetry.Init(cfg.Env, cfg.Debug); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer telemetry.Sync()

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
