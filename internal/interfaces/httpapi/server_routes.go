package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{team}/history", handler.GetTeamHistory)
	mux.HandleFunc("GET /v1/teams/{team}/form", handler.GetTeamForm)
	mux.HandleFunc("POST /v1/predictions", handler.CreatePrediction)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/dataset/reload", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ReloadDataset)))
}
