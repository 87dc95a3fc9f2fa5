package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/show-reservation-engine/api"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
	appvalidator "github.com/metinatakli/show-reservation-engine/internal/validator"
)

const ErrInternalServer = "The server encountered a problem and could not process your request"

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:   "The request contains invalid fields",
		RequestID: middleware.GetReqID(r.Context()),
	}

	for _, fieldErr := range validationErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	if err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// reservationErrorResponse maps the engine's error taxonomy onto HTTP
// statuses. Unknown identifiers are distinguished from business failures
// (unavailable seats) so clients can render the right message.
func (app *application) reservationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unknownSeats *domain.UnknownSeatsError
		unavailable  *domain.SeatsUnavailableError
	)

	switch {
	case errors.Is(err, domain.ErrUnknownShow), errors.Is(err, domain.ErrUnknownBooking):
		app.errorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &unknownSeats):
		app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrEmptySeatSelection):
		app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &unavailable):
		app.errorResponse(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPaymentDeclined):
		app.errorResponse(w, r, http.StatusPaymentRequired, err.Error())
	default:
		app.serverErrorResponse(w, r, err)
	}
}
