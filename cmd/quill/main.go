package main

import (
	"os"

	"quill/internal/app"
	"quill/internal/config"
	"quill/internal/logger"
	"quill/internal/shutdown"
)

func main() {
	cfg, warnings := config.FromEnv(os.LookupEnv)
	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	for _, w := range warnings {
		log.Warning("Main", "ignoring environment setting", map[string]interface{}{
			"detail": w,
		})
	}

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "init"})
		os.Exit(1)
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("application", application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}

	log.Info("Main", "application terminated", nil)
}
