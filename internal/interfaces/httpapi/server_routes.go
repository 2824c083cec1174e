package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches/process", handler.ProcessMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/appearances", handler.ListMatchAppearances)
	mux.HandleFunc("GET /v1/players/{playerID}/rating", handler.GetPlayerRating)
	mux.HandleFunc("GET /v1/ratings", handler.ListRatings)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/batch", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ProcessBatch)))
}
