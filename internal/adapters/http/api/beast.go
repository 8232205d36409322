package api

import (
	"net/http"
	"strconv"
)

// BeastHandler serves token metadata.
type BeastHandler struct {
	deps Dependencies
}

// NewBeastHandler creates a new beast metadata handler.
func NewBeastHandler(deps Dependencies) *BeastHandler {
	return &BeastHandler{deps: deps}
}

// HandleGetMetadata handles GET /api/beast/{tokenId}/metadata.
func (h *BeastHandler) HandleGetMetadata(w http.ResponseWriter, r *http.Request) {
	const op = "get beast metadata"
	tokenID := r.PathValue("tokenId")
	if _, err := strconv.ParseUint(tokenID, 10, 64); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	meta, err := h.deps.BeastMetadata(r.Context(), tokenID)
	if err != nil {
		writeError(w, WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, meta)
}
