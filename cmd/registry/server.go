// cmd/registry/server.go
// This file contains the serve() method which runs the interactive menu and
// stops it when the input ends, the user exits, or an OS signal arrives.
package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoideee/prevention-registry/internal/validator"
)

// serve runs the menu loop in a background goroutine and blocks until the
// loop returns or ctx is cancelled. A pending console read cannot be
// interrupted, so on cancellation serve returns without waiting for it.
func (app *application) serve(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- app.loop()
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		app.logger.Info("registry stopped")
		return nil
	case <-ctx.Done():
		app.logger.Info("shutting down registry", "reason", context.Cause(ctx))
		return nil
	}
}

// loop shows the menu and runs one option at a time until the user exits
// or the input closes.
func (app *application) loop() error {
	options := app.menu()
	for {
		if err := app.writeMenu(options); err != nil {
			return err
		}

		line, err := app.prompt.Line("Ingrese una opción: ")
		if errors.Is(err, validator.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			if err := app.badInputResponse(); err != nil {
				return err
			}
			continue
		}
		if choice < 1 || choice > len(options) {
			if err := app.invalidOptionResponse(); err != nil {
				return err
			}
			continue
		}

		opt := options[choice-1]
		if opt.handler == nil {
			return app.writeLines("Saliendo del programa...")
		}

		app.logger.Debug("running option", "option", opt.label)
		err = app.recoverPanic(opt.label, opt.handler)()
		if errors.Is(err, validator.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// writeMenu prints the banner and the numbered options.
func (app *application) writeMenu(options []menuOption) error {
	lines := []string{banner(), "Menu Principal:", "Ingrese el número de la opción que desea ejecutar:"}
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, opt.label))
	}
	return app.writeLines(lines...)
}
