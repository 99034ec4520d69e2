package handler

import (
	"marquee/config"
	"marquee/di"
	"marquee/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	server  http.Handler
	initErr error
	once    sync.Once
)

// Handler serves the API as a single serverless function. The dependency graph is
// built on the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize service")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)

		return
	}

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
