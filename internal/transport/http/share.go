package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

// OrderSharer is the minimal interface needed to share an order.
type OrderSharer interface {
	Share(ctx context.Context, orderNumber string, platform domain.Platform) (string, error)
}

// HandleShare returns an HTTP handler for generating social share links.
func HandleShare(svc OrderSharer, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req shareRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.OrderNumber == "" || req.Platform == "" {
			writeError(w, http.StatusBadRequest, codeValidation, "orderNumber and platform are required")
			return
		}

		url, err := svc.Share(r.Context(), req.OrderNumber, domain.Platform(req.Platform))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrOrderNotFound):
				writeError(w, http.StatusNotFound, codeNotFound, "order not found")
			case errors.Is(err, domain.ErrShareLink):
				logger.Printf("share link generation failed order=%s platform=%s", req.OrderNumber, req.Platform)
				writeError(w, http.StatusInternalServerError, codeShareLinkFailed, "could not generate share link")
			default:
				logger.Printf("share failed err=%v", err)
				writeError(w, http.StatusInternalServerError, codeInternalError, "could not share order")
			}
			return
		}

		writeSuccess(w, http.StatusOK, "share link created", shareResponse{ShareURL: url})
	}
}

type shareRequest struct {
	OrderNumber string `json:"orderNumber"`
	Platform    string `json:"platform"`
}

type shareResponse struct {
	ShareURL string `json:"shareUrl"`
}
