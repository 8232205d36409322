package api

import (
	"errors"
	"net/http"

	service "github.com/okian/beastscore/internal/app"
	"github.com/okian/beastscore/internal/domain/model"
)

// WalletHandler serves wallet profiles.
type WalletHandler struct {
	deps Dependencies
}

// NewWalletHandler creates a new wallet handler.
func NewWalletHandler(deps Dependencies) *WalletHandler {
	return &WalletHandler{deps: deps}
}

// HandleGetScore handles GET /api/wallet/{address}/score. The body is the
// template document with the computed scores written into it.
func (h *WalletHandler) HandleGetScore(w http.ResponseWriter, r *http.Request) {
	const op = "get wallet score"
	address := r.PathValue("address")
	if address == "" {
		writeError(w, NewKind(op, ErrBadRequest))
		return
	}

	p, err := h.deps.ComputeWalletProfile(r.Context(), address)
	switch {
	case errors.Is(err, model.ErrInvalidAddress):
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	case errors.Is(err, service.ErrTemplateLoad):
		writeError(w, NewKind(op+": failed to load wallet profile or compute metrics", ErrInternal))
		return
	case err != nil:
		writeError(w, WrapKind(op, ErrInternal, err))
		return
	}

	body := any(p)
	if p.Document != nil {
		body = p.Document
	}
	writeJSON(w, http.StatusOK, body)
}
