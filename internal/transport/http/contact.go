package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/SinhaGautam/nothing-server-app/internal/app"
	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

// ContactReceiver is the minimal interface needed to accept a contact message.
type ContactReceiver interface {
	Contact(ctx context.Context, in app.ContactInput) error
}

// HandleContact returns an HTTP handler for the contact form.
func HandleContact(svc ContactReceiver, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req contactRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.Contact(r.Context(), app.ContactInput{
			CustomerEmail: req.CustomerEmail,
			CustomerName:  req.CustomerName,
			Message:       req.Message,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmailRequired),
				errors.Is(err, domain.ErrNameRequired),
				errors.Is(err, domain.ErrMessageRequired):
				writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			default:
				logger.Printf("contact failed err=%v", err)
				writeError(w, http.StatusInternalServerError, codeInternalError, "could not send message")
			}
			return
		}

		writeSuccess(w, http.StatusOK, "message received", nil)
	}
}

type contactRequest struct {
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	Message       string `json:"message"`
}
