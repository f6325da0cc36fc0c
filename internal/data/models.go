// internal/data/models.go
package data

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/aoideee/prevention-registry/internal/validator"
)

var (
	// ErrRecordNotFound is returned when no stored record matches an identifier.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNoRecords is returned by listings that have nothing to show.
	ErrNoRecords = errors.New("no records")
	// ErrClientNotFound is returned when a training references an identifier
	// that does not belong to a stored client.
	ErrClientNotFound = errors.New("client not found")
)

// store is the in-memory state shared by every model: persons and trainings
// in insertion order, plus the training id sequence.
type store struct {
	mu             sync.RWMutex
	persons        []*Person
	trainings      []*Training
	lastTrainingID int64
}

// Models is a top-level container that groups all model types together.
// Every model in one Models value works on the same store.
type Models struct {
	Persons   PersonModel   // Clients, professionals and administratives
	Trainings TrainingModel // Trainings and their id sequence
}

// NewModels constructs a Models value over a fresh, empty store.
// Call this once during application startup and store the result in application.
func NewModels() Models {
	s := &store{}
	return Models{
		Persons:   PersonModel{store: s},
		Trainings: TrainingModel{store: s},
	}
}

// PersonModel stores, finds and deletes persons.
type PersonModel struct {
	store *store
}

// Insert appends p to the person sequence. Identifier uniqueness is not
// checked here.
func (m PersonModel) Insert(p *Person) error {
	if p == nil {
		return errors.New("insert person: nil person")
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.store.persons = append(m.store.persons, p)
	return nil
}

// GetAll returns every person in insertion order.
// Returns ErrNoRecords if nobody is registered.
func (m PersonModel) GetAll() ([]*Person, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	if len(m.store.persons) == 0 {
		return nil, ErrNoRecords
	}
	return slices.Clone(m.store.persons), nil
}

// GetAllByRole returns the persons with the given role in insertion order.
// Returns ErrNoRecords if none match.
func (m PersonModel) GetAllByRole(role Role) ([]*Person, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	var persons []*Person
	for _, p := range m.store.persons {
		if p.Role == role {
			persons = append(persons, p)
		}
	}
	if len(persons) == 0 {
		return nil, ErrNoRecords
	}
	return persons, nil
}

// Get returns the first person, of any role, whose national identifier is id.
// Returns ErrRecordNotFound if nobody matches.
func (m PersonModel) Get(id int64) (*Person, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	for _, p := range m.store.persons {
		if p.NationalID == id {
			return p, nil
		}
	}
	return nil, ErrRecordNotFound
}

// GetClient returns the first client whose national identifier is id.
// Persons with other roles are never returned.
// Returns ErrRecordNotFound if no client matches.
func (m PersonModel) GetClient(id int64) (*Person, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	if p := m.store.findClient(id); p != nil {
		return p, nil
	}
	return nil, ErrRecordNotFound
}

// Delete removes every person whose national identifier is id and, if any
// was removed, every training that references id. It returns the number of
// trainings removed.
// Returns ErrRecordNotFound, and leaves trainings untouched, if no person matches.
func (m PersonModel) Delete(id int64) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	before := len(m.store.persons)
	m.store.persons = slices.DeleteFunc(m.store.persons, func(p *Person) bool {
		return p.NationalID == id
	})
	if len(m.store.persons) == before {
		return 0, ErrRecordNotFound
	}

	before = len(m.store.trainings)
	m.store.trainings = slices.DeleteFunc(m.store.trainings, func(t *Training) bool {
		return t.ClientNationalID == id
	})
	return before - len(m.store.trainings), nil
}

// TrainingModel creates, stores and lists trainings.
type TrainingModel struct {
	store *store
}

// New validates in, checks that it references a stored client and assigns
// the next training id. The training is not stored until Insert.
// Returns a *validator.ValidationError for invalid fields and
// ErrClientNotFound for an unknown client; no id is consumed in either case.
func (m TrainingModel) New(in TrainingInput) (*Training, error) {
	v := validator.New()
	ValidateTraining(v, in)
	if err := v.Err(); err != nil {
		return nil, err
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if m.store.findClient(in.ClientNationalID) == nil {
		return nil, fmt.Errorf("training for RUN %d: %w", in.ClientNationalID, ErrClientNotFound)
	}
	m.store.lastTrainingID++
	return &Training{
		ID:               m.store.lastTrainingID,
		ClientNationalID: in.ClientNationalID,
		Day:              in.Day,
		StartTime:        in.StartTime,
		Location:         in.Location,
		DurationMinutes:  in.DurationMinutes,
		AttendeeCount:    in.AttendeeCount,
	}, nil
}

// Insert appends t to the training sequence. The client reference is not
// checked again.
func (m TrainingModel) Insert(t *Training) error {
	if t == nil {
		return errors.New("insert training: nil training")
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.store.trainings = append(m.store.trainings, t)
	return nil
}

// GetAll returns every training in insertion order, each paired with the
// client it references as of now.
// Returns ErrNoRecords if there are no trainings.
func (m TrainingModel) GetAll() ([]TrainingListing, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	if len(m.store.trainings) == 0 {
		return nil, ErrNoRecords
	}
	listings := make([]TrainingListing, 0, len(m.store.trainings))
	for _, t := range m.store.trainings {
		listings = append(listings, TrainingListing{
			Training: t,
			Client:   m.store.findClient(t.ClientNationalID),
		})
	}
	return listings, nil
}

// findClient must be called with mu held.
func (s *store) findClient(id int64) *Person {
	for _, p := range s.persons {
		if p.Role == RoleClient && p.NationalID == id {
			return p
		}
	}
	return nil
}
