package handler

import (
	"net/http"
	"roomops/config"
	"roomops/di"
	_ "roomops/docs"
	"roomops/shared/logger"
	"sync"

	roomopsHTTP "roomops/transport/http"
)

var (
	service *roomopsHTTP.HTTP
	once    sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built once per warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
