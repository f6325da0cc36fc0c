// cmd/registry/errors.go
// This file contains all error-reporting helpers for the console.
// Keeping error helpers in a dedicated file makes them easy to find and extend.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aoideee/prevention-registry/internal/validator"
)

// logError logs an internal error at ERROR level with the menu option for context.
func (app *application) logError(option string, err error) {
	app.logger.Error(err.Error(), slog.String("option", option))
}

// errorResponse writes message to the console. It is the low-level building
// block used by all the specific error helpers below.
func (app *application) errorResponse(message string) error {
	return app.writeLines(message)
}

// serverErrorResponse logs an unexpected error and tells the user, without
// the internal details, that the option could not finish.
func (app *application) serverErrorResponse(option string, err error) error {
	app.logError(option, err)
	return app.errorResponse("Error: Ocurrió un problema y no se pudo completar la operación.")
}

// notFoundResponse reports that no user holds the given RUN.
func (app *application) notFoundResponse(id int64) error {
	return app.errorResponse(fmt.Sprintf("Error: Usuario con RUN %d no encontrado.", id))
}

// invalidOptionResponse reports a menu choice outside the menu.
func (app *application) invalidOptionResponse() error {
	return app.errorResponse("Opción incorrecta, por favor intente nuevamente.")
}

// badInputResponse reports a menu choice that is not a number.
func (app *application) badInputResponse() error {
	return app.errorResponse(fmt.Sprintf("Entrada inválida, por favor ingrese un número entre 1 y %d.", len(app.menu())))
}

// failedConstructionResponse reports that an entity was not created. Field
// errors from a *validator.ValidationError are listed one per line; any other
// error is treated as a server error.
func (app *application) failedConstructionResponse(option, message string, err error) error {
	var verr *validator.ValidationError
	if !errors.As(err, &verr) {
		if werr := app.serverErrorResponse(option, err); werr != nil {
			return werr
		}
		return app.errorResponse(message)
	}

	app.logger.Warn("entity rejected", slog.String("option", option), slog.Any("errors", verr.Errors))

	fields := make([]string, 0, len(verr.Errors))
	for field := range verr.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := []string{message}
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("  - %s: %s", field, verr.Errors[field]))
	}
	return app.writeLines(lines...)
}
