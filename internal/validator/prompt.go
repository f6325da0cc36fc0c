package validator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the day/month/year layout every date is entered in.
const DateLayout = "02/01/2006"

// dateHint is DateLayout as shown to the person typing.
const dateHint = "dd/MM/yyyy"

// ErrInputClosed is returned when the input source runs out before a valid
// value was entered.
var ErrInputClosed = errors.New("input closed")

// Rejection messages written before re-prompting.
const (
	msgEmptyDate      = "Error: La fecha no puede estar vacía."
	msgEmptyValue     = "Error: El valor no puede estar vacío."
	msgNotANumber     = "Error: El valor ingresado no es un número válido."
	msgNotPositive    = "Error: El valor debe ser un número mayor a 0."
	msgDuplicateID    = "Error: RUN repetido. Ingrese uno válido."
	msgBadPhone       = "Error: El teléfono debe ser un número de 9 dígitos."
	msgNotAnInteger   = "Error: Entrada no válida. Debe ingresar un número."
	msgBadWeekday     = "Error: El día debe ser uno de los siguientes: Lunes, Martes, Miércoles, Jueves, Viernes, Sábado, Domingo."
	msgBadTime        = "Entrada inválida. Por favor, ingrese una hora válida en formato HH:MM."
	msgBadDateFmt     = "Error: Fecha no válida. Use el formato " + dateHint + "."
	fmtTextLength     = "Error: El texto debe tener entre %d y %d caracteres y no puede estar vacío."
	fmtNoDigits       = "Error: No debe contener números y debe tener una longitud entre %d y %d caracteres."
	fmtLettersOnly    = "Entrada inválida. Por favor, ingrese un texto que contenga solo letras y tenga entre %d y %d caracteres."
	fmtCeiling        = "Error: El valor debe ser un número menor a %d."
	fmtIntegerBetween = "Error: El valor debe ser un número entre %d y %d."
)

// Prompter reads values from a line-oriented source, writing the prompt
// before each read and a rejection message after each invalid line. Every
// operation loops until it gets a valid line; the only errors returned are
// ErrInputClosed and I/O failures.
//
// A Prompter is not safe for concurrent use.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	ids *IdentifierSet
}

// NewPrompter returns a Prompter reading r and writing w. Identifiers accepted
// by UniqueID are recorded in ids; a nil ids starts an empty set.
func NewPrompter(r io.Reader, w io.Writer, ids *IdentifierSet) *Prompter {
	if ids == nil {
		ids = NewIdentifierSet()
	}
	return &Prompter{in: bufio.NewScanner(r), out: w, ids: ids}
}

// IDs returns the set of identifiers accepted so far.
func (p *Prompter) IDs() *IdentifierSet {
	return p.ids
}

// Line writes prompt and returns the next raw line.
func (p *Prompter) Line(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return p.in.Text(), nil
}

// Println writes a line to the output.
func (p *Prompter) Println(a ...any) error {
	_, err := fmt.Fprintln(p.out, a...)
	return err
}

// ask runs the shared retry loop. check returns the parsed value, or a
// non-empty rejection message when line is not acceptable.
func ask[T any](p *Prompter, prompt string, check func(line string) (T, string)) (T, error) {
	var zero T
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return zero, err
		}
		value, rejection := check(line)
		if rejection == "" {
			return value, nil
		}
		if err := p.Println(rejection); err != nil {
			return zero, err
		}
	}
}

// Text accepts a non-empty line of min to max characters, trimmed and
// upper-cased.
func (p *Prompter) Text(prompt string, min, max int) (string, error) {
	return ask(p, prompt, func(line string) (string, string) {
		s := Upper(strings.TrimSpace(line))
		if s == "" || !Between(Length(s), min, max) {
			return "", fmt.Sprintf(fmtTextLength, min, max)
		}
		return s, ""
	})
}

// Letters is Text restricted to letters and whitespace.
func (p *Prompter) Letters(prompt string, min, max int) (string, error) {
	return ask(p, prompt, func(line string) (string, string) {
		s := Upper(strings.TrimSpace(line))
		if !Between(Length(s), min, max) || !LettersOnly(s) {
			return "", fmt.Sprintf(fmtLettersOnly, min, max)
		}
		return s, ""
	})
}

// NoDigits accepts a trimmed, upper-cased line of min to max characters
// that contains no digit. A zero min allows an empty answer.
func (p *Prompter) NoDigits(prompt string, min, max int) (string, error) {
	return ask(p, prompt, func(line string) (string, string) {
		s := Upper(strings.TrimSpace(line))
		if !Between(Length(s), min, max) || HasDigit(s) {
			return "", fmt.Sprintf(fmtNoDigits, min, max)
		}
		return s, ""
	})
}

// Date accepts a date written as dd/MM/yyyy.
func (p *Prompter) Date(prompt string) (time.Time, error) {
	return ask(p, prompt, func(line string) (time.Time, string) {
		if line == "" {
			return time.Time{}, msgEmptyDate
		}
		d, err := time.Parse(DateLayout, line)
		if err != nil {
			return time.Time{}, msgBadDateFmt
		}
		return d, ""
	})
}

// UniqueID accepts a national identifier below ceiling that has not been
// accepted before, and records it. Dots and dashes are ignored.
func (p *Prompter) UniqueID(prompt string, ceiling int64) (int64, error) {
	return ask(p, prompt, func(line string) (int64, string) {
		id, rejection := parseID(line, ceiling)
		if rejection != "" {
			return 0, rejection
		}
		if !p.ids.Add(id) {
			return 0, msgDuplicateID
		}
		return id, ""
	})
}

// ID accepts a national identifier below ceiling without tracking it.
func (p *Prompter) ID(prompt string, ceiling int64) (int64, error) {
	return ask(p, prompt, func(line string) (int64, string) {
		return parseID(line, ceiling)
	})
}

func parseID(line string, ceiling int64) (int64, string) {
	digits := strings.NewReplacer(".", "", "-", "").Replace(line)
	if digits == "" {
		return 0, msgEmptyValue
	}
	id, err := strconv.ParseInt(digits, 10, 64)
	switch {
	case err != nil:
		return 0, msgNotANumber
	case id >= ceiling:
		return 0, fmt.Sprintf(fmtCeiling, ceiling)
	case id < 1:
		return 0, msgNotPositive
	}
	return id, ""
}

// Phone accepts exactly nine digits.
func (p *Prompter) Phone(prompt string) (string, error) {
	return ask(p, prompt, func(line string) (string, string) {
		s := strings.TrimSpace(line)
		if !Matches(s, PhoneRX) {
			return "", msgBadPhone
		}
		return s, ""
	})
}

// Int accepts an integer between min and max inclusive.
func (p *Prompter) Int(prompt string, min, max int) (int, error) {
	return ask(p, prompt, func(line string) (int, string) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return 0, msgNotAnInteger
		}
		if !Between(n, min, max) {
			return 0, fmt.Sprintf(fmtIntegerBetween, min, max)
		}
		return n, ""
	})
}

// Weekday accepts a day name from Weekdays, ignoring accents and case, and
// returns it trimmed and upper-cased as typed.
func (p *Prompter) Weekday(prompt string) (string, error) {
	return ask(p, prompt, func(line string) (string, string) {
		s := Upper(strings.TrimSpace(line))
		if !IsWeekday(s) {
			return "", msgBadWeekday
		}
		return s, ""
	})
}

// Time accepts an HH:MM clock time between 00:00 and 23:59.
func (p *Prompter) Time(prompt string) (string, error) {
	return ask(p, prompt, func(line string) (string, string) {
		s := strings.TrimSpace(line)
		if !ValidClock(s) {
			return "", msgBadTime
		}
		return s, ""
	})
}
