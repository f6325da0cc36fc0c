// cmd/registry/helpers.go
// This file contains general-purpose helpers for writing to the console.
// Error-reporting helpers live in errors.go; only non-error utilities are here.
package main

import (
	"strings"

	"github.com/aoideee/prevention-registry/internal/data"
)

// separator is printed after each training in a listing.
const separator = "--------------------------------------------------"

// writeLines writes each line followed by a newline.
func (app *application) writeLines(lines ...string) error {
	for _, line := range lines {
		if err := app.prompt.Println(line); err != nil {
			return err
		}
	}
	return nil
}

// writePersons writes the description block of every person.
func (app *application) writePersons(persons []*data.Person) error {
	lines := make([]string, 0, len(persons))
	for _, p := range persons {
		lines = append(lines, p.String())
	}
	return app.writeLines(lines...)
}

// writeTraining writes the summary and full block of one training, followed
// by the client it references.
func (app *application) writeTraining(l data.TrainingListing) error {
	client := "(sin cliente asociado)"
	if l.Client != nil {
		client = l.Client.String()
	}
	return app.writeLines(
		"Resumen Capacitación:",
		l.Training.Summary(),
		"",
		"Información Completa Capacitación:",
		l.Training.String(),
		"Información Cliente:",
		client,
		separator,
	)
}

// banner returns the title block shown above the menu.
func banner() string {
	stars := strings.Repeat("*", 44)
	return strings.Join([]string{
		"",
		stars,
		"**** ASESORÍAS EN PREVENCIÓN DE RIESGOS ****",
		stars,
	}, "\n")
}
