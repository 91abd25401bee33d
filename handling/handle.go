package handling

import (
	"errors"
	"foodmenu_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.Send())
}

// WriteError answers with the status that matches the error kind. Unknown errors are logged and hidden behind a 500.
func WriteError(w http.ResponseWriter, err error, msg string, logger *gecho.Logger) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Validation failed"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	switch {
	case errors.Is(err, lib.ErrBadRequest):
		gecho.BadRequest(w, gecho.WithMessage(lib.PublicMessage(err, "Bad request")), gecho.Send())
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(lib.PublicMessage(err, "Not found")), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(lib.PublicMessage(err, "Conflict")), gecho.Send())
	case errors.Is(err, lib.ErrUnauthorized), errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrMissingToken):
		gecho.Unauthorized(w, gecho.WithMessage("Token expired or invalid"), gecho.Send())
	default:
		HandleError(err, msg, logger, w)
	}
}
