// Package data provides the registry's entities and the in-memory models
// that store, query and delete them.
package data

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aoideee/prevention-registry/internal/validator"
)

// NationalIDCeiling is the exclusive upper bound of a national identifier (RUN).
const NationalIDCeiling int64 = 99999999

// Role discriminates the kinds of Person.
type Role int

const (
	RoleClient Role = iota + 1
	RoleProfessional
	RoleAdministrative
)

// Roles lists every Role in menu order.
var Roles = []Role{RoleClient, RoleProfessional, RoleAdministrative}

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "Cliente"
	case RoleProfessional:
		return "Profesional"
	case RoleAdministrative:
		return "Administrativo"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole maps a menu number (1, 2 or 3) to a Role.
func ParseRole(n int) (Role, bool) {
	if n < 1 || n > len(Roles) {
		return 0, false
	}
	return Roles[n-1], true
}

// Health system codes a client can belong to.
const (
	HealthFonasa = 1
	HealthIsapre = 2
)

// PersonInfo holds the fields every Person has.
type PersonInfo struct {
	GivenName  string
	Surname    string
	BirthDate  time.Time
	NationalID int64
}

// ClientDetails holds the fields only a client has.
type ClientDetails struct {
	Phone        string
	PensionFund  string // AFP
	HealthSystem int    // HealthFonasa or HealthIsapre
	Address      string
	District     string // comuna
	Age          int
}

// HealthSystemName returns the display name of the client's health system.
func (c ClientDetails) HealthSystemName() string {
	if c.HealthSystem == HealthFonasa {
		return "Fonasa"
	}
	return "Isapre"
}

// ProfessionalDetails holds the fields only a professional has.
type ProfessionalDetails struct {
	Title    string
	JoinedAt time.Time
}

// AdministrativeDetails holds the fields only an administrative has.
type AdministrativeDetails struct {
	Area               string
	PreviousExperience string
}

// Person is a registered user. Role says which one of Client, Professional
// or Administrative is set; the other two are nil.
type Person struct {
	PersonInfo
	Role           Role
	Client         *ClientDetails
	Professional   *ProfessionalDetails
	Administrative *AdministrativeDetails
}

// NewClient builds a client Person, or returns a *validator.ValidationError.
func NewClient(info PersonInfo, details ClientDetails) (*Person, error) {
	p := &Person{PersonInfo: info, Role: RoleClient, Client: &details}
	return build(p)
}

// NewProfessional builds a professional Person, or returns a *validator.ValidationError.
func NewProfessional(info PersonInfo, details ProfessionalDetails) (*Person, error) {
	p := &Person{PersonInfo: info, Role: RoleProfessional, Professional: &details}
	return build(p)
}

// NewAdministrative builds an administrative Person, or returns a *validator.ValidationError.
func NewAdministrative(info PersonInfo, details AdministrativeDetails) (*Person, error) {
	p := &Person{PersonInfo: info, Role: RoleAdministrative, Administrative: &details}
	return build(p)
}

func build(p *Person) (*Person, error) {
	v := validator.New()
	ValidatePerson(v, p)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidatePerson checks the construction constraints of p.
func ValidatePerson(v *validator.Validator, p *Person) {
	v.Check(strings.TrimSpace(p.GivenName) != "", "given_name", "must be provided")
	v.Check(strings.TrimSpace(p.Surname) != "", "surname", "must be provided")
	v.Check(!p.BirthDate.IsZero(), "birth_date", "must be provided")
	v.Check(p.NationalID >= 1, "national_id", "must be a positive number")
	v.Check(p.NationalID < NationalIDCeiling, "national_id", fmt.Sprintf("must be less than %d", NationalIDCeiling))

	switch p.Role {
	case RoleClient:
		v.Check(p.Client != nil, "client", "must be provided")
		if p.Client != nil {
			validateClient(v, p.Client)
		}
	case RoleProfessional:
		v.Check(p.Professional != nil, "professional", "must be provided")
		if p.Professional != nil {
			validateProfessional(v, p.Professional)
		}
	case RoleAdministrative:
		v.Check(p.Administrative != nil, "administrative", "must be provided")
		if p.Administrative != nil {
			v.Check(strings.TrimSpace(p.Administrative.Area) != "", "area", "must be provided")
		}
	default:
		v.AddError("role", "must be client, professional or administrative")
	}
}

func validateClient(v *validator.Validator, c *ClientDetails) {
	v.Check(validator.Matches(c.Phone, validator.PhoneRX), "phone", "must be exactly 9 digits")
	v.Check(strings.TrimSpace(c.PensionFund) != "", "pension_fund", "must be provided")
	v.Check(c.HealthSystem == HealthFonasa || c.HealthSystem == HealthIsapre, "health_system", "must be 1 (Fonasa) or 2 (Isapre)")
	v.Check(strings.TrimSpace(c.Address) != "", "address", "must be provided")
	v.Check(validator.Between(c.Age, 0, 150), "age", "must be between 0 and 150")
}

func validateProfessional(v *validator.Validator, pr *ProfessionalDetails) {
	v.Check(validator.LettersOnly(pr.Title), "title", "must contain only letters and spaces")
	v.Check(validator.Between(validator.Length(pr.Title), 10, 50), "title", "must be between 10 and 50 characters")
	v.Check(!pr.JoinedAt.IsZero(), "joined_at", "must be provided")
}

// FullName returns the given name followed by the surname.
func (p *Person) FullName() string {
	return p.GivenName + " " + p.Surname
}

// Age returns the person's age in whole calendar years at now, counting
// only the year difference.
func (p *Person) Age(now time.Time) int {
	return now.Year() - p.BirthDate.Year()
}

// Analyze writes the short analysis of p: name and identifier, then the
// fields relevant to its role.
func (p *Person) Analyze(w io.Writer) error {
	lines := []string{
		"Nombre: " + p.GivenName,
		fmt.Sprintf("RUN: %d", p.NationalID),
	}
	switch p.Role {
	case RoleClient:
		lines = append(lines,
			"Dirección: "+p.Client.Address,
			"Comuna: "+p.Client.District,
		)
	case RoleProfessional:
		lines = append(lines,
			"Titulo: "+p.Professional.Title,
			"Fecha de Ingreso: "+p.Professional.JoinedAt.Format(validator.DateLayout),
		)
	case RoleAdministrative:
		lines = append(lines,
			"Área: "+p.Administrative.Area,
			"Experiencia Previa: "+p.Administrative.PreviousExperience,
		)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// String renders the full description block of p.
func (p *Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", p.Role)
	fmt.Fprintf(&b, "  Nombre: '%s'\n", p.GivenName)
	fmt.Fprintf(&b, "  Apellidos: '%s'\n", p.Surname)
	fmt.Fprintf(&b, "  Fecha de Nacimiento: %s\n", p.BirthDate.Format(validator.DateLayout))
	fmt.Fprintf(&b, "  RUT: %d", p.NationalID)

	switch p.Role {
	case RoleClient:
		c := p.Client
		fmt.Fprintf(&b, "\n  Teléfono: '%s'", c.Phone)
		fmt.Fprintf(&b, "\n  AFP: '%s'", c.PensionFund)
		fmt.Fprintf(&b, "\n  Sistema de Salud: %d (%s)", c.HealthSystem, c.HealthSystemName())
		fmt.Fprintf(&b, "\n  Dirección: '%s'", c.Address)
		fmt.Fprintf(&b, "\n  Comuna: '%s'", c.District)
		fmt.Fprintf(&b, "\n  Edad: %d", c.Age)
	case RoleProfessional:
		fmt.Fprintf(&b, "\n  Título: '%s'", p.Professional.Title)
		fmt.Fprintf(&b, "\n  Fecha de Ingreso: %s", p.Professional.JoinedAt.Format(validator.DateLayout))
	case RoleAdministrative:
		fmt.Fprintf(&b, "\n  Área: '%s'", p.Administrative.Area)
		fmt.Fprintf(&b, "\n  Experiencia Previa: '%s'", p.Administrative.PreviousExperience)
	}
	return b.String()
}
