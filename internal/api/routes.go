package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/utxomerit/merit-api-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Get("/v1/merit", registerHandler(handlers.GetAddressMerit))
	r.Get("/v1/merit/utxos", registerHandler(handlers.GetAddressMeritUtxos))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
