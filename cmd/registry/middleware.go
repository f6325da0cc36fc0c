// cmd/registry/middleware.go
// This file contains wrappers applied to every menu handler before it runs.
package main

import "fmt"

// recoverPanic catches any runtime panic raised by a menu handler. Without it
// a single bad option would end the whole session and lose every record held
// in memory; with it the user sees an error and gets the menu back.
func (app *application) recoverPanic(option string, next func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = app.serverErrorResponse(option, fmt.Errorf("%v", r))
			}
		}()
		return next()
	}
}
