// cmd/registry/handlers.go
// This file contains one handler per menu option. Each handler is a method
// on *application so it has access to the prompter, logger and models.
// Handlers report problems to the user themselves; the error they return is
// only for input or output failures that should end the session.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aoideee/prevention-registry/internal/data"
)

// readPersonInfo prompts for the fields every person has. kind names the
// role in the prompts, e.g. "cliente". The RUN is recorded as taken.
func (app *application) readPersonInfo(kind string) (data.PersonInfo, error) {
	var info data.PersonInfo
	var err error

	if info.GivenName, err = app.prompt.NoDigits(fmt.Sprintf("Ingrese el nombre del %s: ", kind), 5, 50); err != nil {
		return info, err
	}
	if info.Surname, err = app.prompt.NoDigits(fmt.Sprintf("Ingrese los apellidos del %s: ", kind), 5, 50); err != nil {
		return info, err
	}
	if info.BirthDate, err = app.prompt.Date("Ingrese la fecha de nacimiento (dd/MM/yyyy): "); err != nil {
		return info, err
	}
	info.NationalID, err = app.prompt.UniqueID(fmt.Sprintf("Ingrese el RUN del %s sin puntos ni guión: ", kind), data.NationalIDCeiling)
	return info, err
}

// storePerson inserts a person built by one of the data constructors. A
// rejected construction frees the RUN that was reserved while prompting.
func (app *application) storePerson(option, kind string, p *data.Person, info data.PersonInfo, err error) error {
	if err != nil {
		app.prompt.IDs().Release(info.NationalID)
		return app.failedConstructionResponse(option, fmt.Sprintf("No se pudo almacenar el %s.", kind), err)
	}

	if err := app.models.Persons.Insert(p); err != nil {
		app.prompt.IDs().Release(info.NationalID)
		return app.serverErrorResponse(option, err)
	}

	app.logger.Info("user stored", "role", p.Role.String(), "run", p.NationalID)
	return app.writeLines(fmt.Sprintf("El %s ha sido almacenado exitosamente.", kind))
}

// createClientHandler handles menu option "Almacenar cliente".
func (app *application) createClientHandler() error {
	info, err := app.readPersonInfo("cliente")
	if err != nil {
		return err
	}

	var c data.ClientDetails
	if c.Phone, err = app.prompt.Phone("Ingrese el teléfono del cliente (9 dígitos): "); err != nil {
		return err
	}
	if c.PensionFund, err = app.prompt.NoDigits("Ingrese la AFP del cliente: ", 4, 30); err != nil {
		return err
	}
	if c.HealthSystem, err = app.prompt.Int("Ingrese el sistema de salud (1. Fonasa, 2. Isapre): ", data.HealthFonasa, data.HealthIsapre); err != nil {
		return err
	}
	if c.Address, err = app.prompt.Text("Ingrese la dirección del cliente: ", 0, 70); err != nil {
		return err
	}
	if c.District, err = app.prompt.NoDigits("Ingrese la comuna del cliente: ", 0, 50); err != nil {
		return err
	}
	if c.Age, err = app.prompt.Int("Ingrese la edad del cliente: ", 0, 150); err != nil {
		return err
	}

	client, err := data.NewClient(info, c)
	return app.storePerson("Almacenar cliente", "cliente", client, info, err)
}

// createProfessionalHandler handles menu option "Almacenar profesional".
func (app *application) createProfessionalHandler() error {
	info, err := app.readPersonInfo("profesional")
	if err != nil {
		return err
	}

	var pr data.ProfessionalDetails
	if pr.Title, err = app.prompt.Letters("Ingrese el título del profesional: ", 10, 50); err != nil {
		return err
	}
	if pr.JoinedAt, err = app.prompt.Date("Ingrese la fecha de ingreso (dd/MM/yyyy): "); err != nil {
		return err
	}

	professional, err := data.NewProfessional(info, pr)
	return app.storePerson("Almacenar profesional", "profesional", professional, info, err)
}

// createAdministrativeHandler handles menu option "Almacenar administrativo".
func (app *application) createAdministrativeHandler() error {
	info, err := app.readPersonInfo("administrativo")
	if err != nil {
		return err
	}

	var ad data.AdministrativeDetails
	if ad.Area, err = app.prompt.Text("Ingrese el área del administrativo: ", 5, 20); err != nil {
		return err
	}
	if ad.PreviousExperience, err = app.prompt.Text("Ingrese la experiencia previa del administrativo: ", 0, 100); err != nil {
		return err
	}

	administrative, err := data.NewAdministrative(info, ad)
	return app.storePerson("Almacenar administrativo", "administrativo", administrative, info, err)
}

// createTrainingHandler handles menu option "Almacenar capacitación".
// The client must already be stored; otherwise nothing else is asked.
func (app *application) createTrainingHandler() error {
	const option = "Almacenar capacitación"

	in := data.TrainingInput{}
	var err error
	if in.ClientNationalID, err = app.prompt.ID("Ingrese el RUN del cliente: ", data.NationalIDCeiling); err != nil {
		return err
	}

	if _, err := app.models.Persons.GetClient(in.ClientNationalID); err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			return app.writeLines("Error: Cliente no encontrado.", "Error: Capacitación no creada.")
		}
		return app.serverErrorResponse(option, err)
	}

	if in.Day, err = app.prompt.Weekday("Ingrese el día de la semana en que se realizará la capacitación (ej:Lunes, etc): "); err != nil {
		return err
	}
	if in.StartTime, err = app.prompt.Time("Ingrese la hora de la capacitación en formato (HH:MM): "); err != nil {
		return err
	}
	if in.Location, err = app.prompt.Text("Ingrese el lugar de la capacitación: ", 10, 50); err != nil {
		return err
	}
	if in.DurationMinutes, err = app.prompt.Int("Ingrese la duración de la capacitación en minutos: ", 5, 240); err != nil {
		return err
	}
	if in.AttendeeCount, err = app.prompt.Int("Ingrese la cantidad de asistentes: ", 1, 1000); err != nil {
		return err
	}

	training, err := app.models.Trainings.New(in)
	switch {
	case errors.Is(err, data.ErrClientNotFound):
		return app.writeLines("Error: Cliente no encontrado.", "Error: Capacitación no creada.")
	case err != nil:
		return app.failedConstructionResponse(option, "Error: Capacitación no creada.", err)
	}

	if err := app.models.Trainings.Insert(training); err != nil {
		return app.serverErrorResponse(option, err)
	}

	app.logger.Info("training stored", "id", training.ID, "client_run", training.ClientNationalID)
	return app.writeLines("La capacitación ha sido almacenada exitosamente.")
}

// deleteUserHandler handles menu option "Eliminar usuario". Trainings of
// the deleted user are removed with it.
func (app *application) deleteUserHandler() error {
	id, err := app.prompt.ID("Ingrese el RUN del usuario a eliminar: ", data.NationalIDCeiling)
	if err != nil {
		return err
	}

	removed, err := app.models.Persons.Delete(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			return app.notFoundResponse(id)
		}
		return app.serverErrorResponse("Eliminar usuario", err)
	}

	if app.config.releaseDeletedIDs {
		app.prompt.IDs().Release(id)
	}

	app.logger.Info("user deleted", "run", id, "trainings_removed", removed)
	return app.writeLines(
		fmt.Sprintf("Usuario con RUN %d eliminado con éxito.", id),
		fmt.Sprintf("Capacitaciones asociadas eliminadas: %d.", removed),
	)
}

// listUsersHandler handles menu option "Listar usuarios".
func (app *application) listUsersHandler() error {
	persons, err := app.models.Persons.GetAll()
	if err != nil {
		if errors.Is(err, data.ErrNoRecords) {
			return app.writeLines("No hay usuarios registrados.")
		}
		return app.serverErrorResponse("Listar usuarios", err)
	}
	return app.writePersons(persons)
}

// listUsersByRoleHandler handles menu option "Listar usuarios por tipo".
func (app *application) listUsersByRoleHandler() error {
	n, err := app.prompt.Int("Ingrese el tipo de usuario (1. Cliente, 2. Profesional, 3. Administrativo): ", 1, len(data.Roles))
	if err != nil {
		return err
	}
	role, ok := data.ParseRole(n)
	if !ok {
		return app.errorResponse("Tipo de usuario incorrecto.")
	}

	persons, err := app.models.Persons.GetAllByRole(role)
	if err != nil {
		if errors.Is(err, data.ErrNoRecords) {
			return app.writeLines(fmt.Sprintf("No hay usuarios del tipo %s registrados.", role))
		}
		return app.serverErrorResponse("Listar usuarios por tipo", err)
	}
	return app.writePersons(persons)
}

// listTrainingsHandler handles menu option "Listar capacitaciones".
func (app *application) listTrainingsHandler() error {
	listings, err := app.models.Trainings.GetAll()
	if err != nil {
		if errors.Is(err, data.ErrNoRecords) {
			return app.writeLines("No hay capacitaciones registradas.")
		}
		return app.serverErrorResponse("Listar capacitaciones", err)
	}

	for _, l := range listings {
		if err := app.writeTraining(l); err != nil {
			return err
		}
	}
	return nil
}

// analyzeUserHandler handles menu option "Analizar usuario": the user's
// analysis followed by their age.
func (app *application) analyzeUserHandler() error {
	id, err := app.prompt.ID("Ingrese el RUN del usuario a analizar: ", data.NationalIDCeiling)
	if err != nil {
		return err
	}

	p, err := app.models.Persons.Get(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			return app.notFoundResponse(id)
		}
		return app.serverErrorResponse("Analizar usuario", err)
	}

	var b strings.Builder
	if err := p.Analyze(&b); err != nil {
		return app.serverErrorResponse("Analizar usuario", err)
	}
	return app.writeLines(
		strings.TrimSuffix(b.String(), "\n"),
		fmt.Sprintf("El usuario tiene %d años", p.Age(time.Now())),
	)
}
