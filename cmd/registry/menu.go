// cmd/registry/menu.go
package main

// menuOption is one numbered entry of the main menu. A nil handler ends the
// session.
type menuOption struct {
	label   string
	handler func() error
}

// menu lists the main menu entries in the order they are numbered, starting at 1.
//
// Current options:
//
//	1  store a client
//	2  store a professional
//	3  store an administrative
//	4  store a training
//	5  delete a user (and their trainings)
//	6  list users
//	7  list users by role
//	8  list trainings
//	9  analyze a user
//	10 exit
func (app *application) menu() []menuOption {
	return []menuOption{
		{"Almacenar cliente", app.createClientHandler},
		{"Almacenar profesional", app.createProfessionalHandler},
		{"Almacenar administrativo", app.createAdministrativeHandler},
		{"Almacenar capacitación", app.createTrainingHandler},
		{"Eliminar usuario", app.deleteUserHandler},
		{"Listar usuarios", app.listUsersHandler},
		{"Listar usuarios por tipo", app.listUsersByRoleHandler},
		{"Listar capacitaciones", app.listTrainingsHandler},
		{"Analizar usuario", app.analyzeUserHandler},
		{"Salir", nil},
	}
}
