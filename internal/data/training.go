package data

import (
	"fmt"
	"strings"

	"github.com/aoideee/prevention-registry/internal/validator"
)

// Training is a training session held for a client.
type Training struct {
	ID               int64
	ClientNationalID int64
	Day              string // Spanish weekday name, e.g. "LUNES"
	StartTime        string // HH:MM
	Location         string
	DurationMinutes  int
	AttendeeCount    int
}

// TrainingInput holds the fields a caller supplies to create a Training.
// The ID is assigned by TrainingModel.New.
type TrainingInput struct {
	ClientNationalID int64
	Day              string
	StartTime        string
	Location         string
	DurationMinutes  int
	AttendeeCount    int
}

// ValidateTraining checks the construction constraints of a training.
func ValidateTraining(v *validator.Validator, in TrainingInput) {
	v.Check(in.ClientNationalID >= 1 && in.ClientNationalID < NationalIDCeiling, "client_national_id", fmt.Sprintf("must be between 1 and %d", NationalIDCeiling-1))
	v.Check(validator.IsWeekday(in.Day), "day", "must be a day of the week")
	v.Check(validator.ValidClock(in.StartTime), "start_time", "must be a HH:MM time between 00:00 and 23:59")
	v.Check(validator.Between(validator.Length(strings.TrimSpace(in.Location)), 10, 50), "location", "must be between 10 and 50 characters")
	v.Check(validator.Between(in.DurationMinutes, 5, 240), "duration_minutes", "must be between 5 and 240")
	v.Check(validator.Between(in.AttendeeCount, 1, 1000), "attendee_count", "must be between 1 and 1000")
}

// Summary returns a one-sentence description of the training.
func (t *Training) Summary() string {
	return fmt.Sprintf("La capacitación será en %s a las %s del día %s, y durará %d minutos",
		t.Location, t.StartTime, t.Day, t.DurationMinutes)
}

// String renders the full description block of t.
func (t *Training) String() string {
	var b strings.Builder
	b.WriteString("Capacitacion:\n")
	fmt.Fprintf(&b, "  Identificador: %d\n", t.ID)
	fmt.Fprintf(&b, "  RUT del Cliente: %d\n", t.ClientNationalID)
	fmt.Fprintf(&b, "  Día: '%s'\n", t.Day)
	fmt.Fprintf(&b, "  Hora: '%s'\n", t.StartTime)
	fmt.Fprintf(&b, "  Lugar: '%s'\n", t.Location)
	fmt.Fprintf(&b, "  Duración: %d minutos\n", t.DurationMinutes)
	fmt.Fprintf(&b, "  Cantidad de Asistentes: %d", t.AttendeeCount)
	return b.String()
}

// TrainingListing pairs a training with the client it references. Client is
// nil when no client with that identifier is currently stored.
type TrainingListing struct {
	Training *Training
	Client   *Person
}
