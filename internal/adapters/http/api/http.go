// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/beastscore/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ComputeWalletProfile(ctx context.Context, address string) (*model.Profile, error)
	BeastMetadata(ctx context.Context, tokenID string) (map[string]any, error)
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithVersion sets the version reported by GET /.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.status.version = v
		}
	}
}

// WithNetwork sets the network reported by GET /.
func WithNetwork(n string) Option {
	return func(s *Server) {
		if n != "" {
			s.status.network = n
		}
	}
}

// Server wires HTTP routes for the business API.
type Server struct {
	status        *StatusHandler
	healthHandler *HealthHandler
	walletHandler *WalletHandler
	beastHandler  *BeastHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		status:        NewStatusHandler(),
		healthHandler: NewHealthHandler(),
		walletHandler: NewWalletHandler(deps),
		beastHandler:  NewBeastHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", MetricsMiddleware(s.status.HandleStatus, "root"))
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /api/wallet/{address}/score", MetricsMiddleware(s.walletHandler.HandleGetScore, "wallet_score"))
	mux.HandleFunc("GET /api/beast/{tokenId}/metadata", MetricsMiddleware(s.beastHandler.HandleGetMetadata, "beast_metadata"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error kind to its status code and body.
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, ErrBadRequest):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	}
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
