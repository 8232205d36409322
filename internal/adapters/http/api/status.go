package api

import (
	"net/http"
)

// StatusHandler reports service identity on GET /.
type StatusHandler struct {
	name    string
	version string
	network string
}

// NewStatusHandler creates a status handler with default identity.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{name: "Base Beast backend", version: "dev", network: "base-mainnet"}
}

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Network string `json:"network"`
}

// HandleStatus handles GET / requests.
func (h *StatusHandler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Name: h.name, Version: h.version, Network: h.network})
}
