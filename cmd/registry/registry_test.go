package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clientLines are the answers that store a valid client with the given RUN.
func clientLines(run string) []string {
	return []string{
		"1",
		"Ana Maria",
		"Gonzalez Perez",
		"15/03/1990",
		run,
		"912345678",
		"Habitat",
		"1",
		"Avenida Libertad 100",
		"Vina del Mar",
		"34",
	}
}

// administrativeLines are the answers that store a valid administrative.
func administrativeLines(run string) []string {
	return []string{"3", "Pedro Pablo", "Soto Rojas", "01/12/1985", run, "Finanzas", "Contabilidad"}
}

// trainingLines are the answers that store a training for run.
func trainingLines(run string) []string {
	return []string{"4", run, "Lunes", "10:00", "Avenida Libertad 100", "60", "20"}
}

func script(groups ...[]string) io.Reader {
	var lines []string
	for _, g := range groups {
		lines = append(lines, g...)
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// runSession runs the menu loop over in and returns what it printed and logged.
func runSession(t *testing.T, settings registryConfig, in io.Reader) (string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	app := newApplication(settings, logger, in, &out)
	require.NoError(t, app.loop())
	return out.String(), logs.String()
}

// requireInOrder checks that every fragment occurs in s, each after the previous one.
func requireInOrder(t *testing.T, s string, fragments ...string) {
	t.Helper()
	offset := 0
	for _, f := range fragments {
		i := strings.Index(s[offset:], f)
		require.GreaterOrEqual(t, i, 0, "%q not found after offset %d", f, offset)
		offset += i + len(f)
	}
}

func TestClientTrainingDeleteScenario(t *testing.T) {
	out, logs := runSession(t, registryConfig{}, script(
		clientLines("11111111"),
		trainingLines("11111111"),
		[]string{"8", "5", "11111111", "8", "10"},
	))

	requireInOrder(t, out,
		"El cliente ha sido almacenado exitosamente.",
		"La capacitación ha sido almacenada exitosamente.",
		"Resumen Capacitación:",
		"La capacitación será en AVENIDA LIBERTAD 100 a las 10:00 del día LUNES, y durará 60 minutos",
		"Información Completa Capacitación:",
		"  Identificador: 1",
		"Información Cliente:",
		"Cliente:",
		"  Nombre: 'ANA MARIA'",
		"  RUT: 11111111",
		separator,
		"Usuario con RUN 11111111 eliminado con éxito.",
		"Capacitaciones asociadas eliminadas: 1.",
		"No hay capacitaciones registradas.",
		"Saliendo del programa...",
	)
	require.Contains(t, logs, "user deleted")
	require.Contains(t, logs, "trainings_removed=1")
}

func TestTrainingForUnknownClient(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script(
		administrativeLines("22222222"),
		[]string{"4", "22222222", "4", "33333333", "8", "10"},
	))

	requireInOrder(t, out,
		"El administrativo ha sido almacenado exitosamente.",
		"Error: Cliente no encontrado.",
		"Error: Capacitación no creada.",
		"Error: Cliente no encontrado.",
		"Error: Capacitación no creada.",
		"No hay capacitaciones registradas.",
	)
}

func TestDeleteUnknownUser(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script(
		clientLines("11111111"),
		trainingLines("11111111"),
		[]string{"5", "99999999", "12345", "8", "10"},
	))

	requireInOrder(t, out,
		"Error: El valor debe ser un número menor a 99999999.",
		"Error: Usuario con RUN 12345 no encontrado.",
		"Resumen Capacitación:",
	)
}

func TestDeletedRunStaysTaken(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script(
		administrativeLines("33333333"),
		[]string{"5", "33333333"},
		[]string{"3", "Pedro Pablo", "Soto Rojas", "01/12/1985", "33333333", "33333334", "Finanzas", "Contabilidad"},
		[]string{"6", "10"},
	))

	requireInOrder(t, out,
		"Usuario con RUN 33333333 eliminado con éxito.",
		"Error: RUN repetido. Ingrese uno válido.",
		"El administrativo ha sido almacenado exitosamente.",
		"  RUT: 33333334",
	)
}

func TestReleaseDeletedRun(t *testing.T) {
	out, _ := runSession(t, registryConfig{releaseDeletedIDs: true}, script(
		administrativeLines("33333333"),
		[]string{"5", "33333333"},
		administrativeLines("33333333"),
		[]string{"6", "10"},
	))

	require.NotContains(t, out, "RUN repetido")
	requireInOrder(t, out,
		"Usuario con RUN 33333333 eliminado con éxito.",
		"El administrativo ha sido almacenado exitosamente.",
		"  RUT: 33333333",
	)
}

func TestListings(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script(
		[]string{"6", "7", "1"},
		administrativeLines("44444444"),
		[]string{"7", "1", "7", "3", "6", "10"},
	))

	requireInOrder(t, out,
		"No hay usuarios registrados.",
		"No hay usuarios del tipo Cliente registrados.",
		"El administrativo ha sido almacenado exitosamente.",
		"No hay usuarios del tipo Cliente registrados.",
		"Administrativo:",
		"  Área: 'FINANZAS'",
		"Administrativo:",
	)
}

func TestProfessionalAndAnalyze(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script(
		[]string{"2", "Maria Jose", "Fuentes Diaz", "20/07/1980", "55.555.555", "Ingeniera 1", "Ingeniera en Prevencion", "01/03/2010"},
		[]string{"9", "55555555", "9", "66666666", "10"},
	))

	requireInOrder(t, out,
		"Entrada inválida. Por favor, ingrese un texto que contenga solo letras",
		"El profesional ha sido almacenado exitosamente.",
		"Nombre: MARIA JOSE",
		"RUN: 55555555",
		"Titulo: INGENIERA EN PREVENCION",
		"Fecha de Ingreso: 01/03/2010",
		"El usuario tiene",
		"Error: Usuario con RUN 66666666 no encontrado.",
	)
}

func TestMenuInput(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script([]string{"abc", "42", "0", "10"}))

	requireInOrder(t, out,
		"**** ASESORÍAS EN PREVENCIÓN DE RIESGOS ****",
		"10. Salir",
		"Entrada inválida, por favor ingrese un número entre 1 y 10.",
		"Opción incorrecta, por favor intente nuevamente.",
		"Opción incorrecta, por favor intente nuevamente.",
		"Saliendo del programa...",
	)
}

func TestInputClosedEndsSession(t *testing.T) {
	out, _ := runSession(t, registryConfig{}, script([]string{"1", "Ana Maria"}))
	require.Contains(t, out, "Ingrese los apellidos del cliente: ")
	require.NotContains(t, out, "Saliendo del programa...")

	out, _ = runSession(t, registryConfig{}, strings.NewReader(""))
	require.Contains(t, out, "Ingrese una opción: ")
}

func TestRecoverPanic(t *testing.T) {
	require := require.New(t)
	var out, logs bytes.Buffer
	app := newApplication(registryConfig{}, slog.New(slog.NewTextHandler(&logs, nil)), strings.NewReader(""), &out)

	err := app.recoverPanic("Listar usuarios", func() error { panic("boom") })()
	require.NoError(err)
	require.Contains(out.String(), "Error: Ocurrió un problema y no se pudo completar la operación.")
	require.Contains(logs.String(), "boom")
	require.Contains(logs.String(), `option="Listar usuarios"`)
}

func TestServeStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	app := newApplication(registryConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)), pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestRootCommand(t *testing.T) {
	require := require.New(t)
	var out, logs bytes.Buffer

	cmd := newRootCmd(strings.NewReader("10\n"), &out, &logs)
	cmd.SetArgs([]string{"--log-level", "info", "--log-format", "json"})
	require.NoError(cmd.ExecuteContext(context.Background()))

	require.Contains(out.String(), "Saliendo del programa...")
	require.Contains(logs.String(), `"msg":"starting registry"`)
	require.Contains(logs.String(), `"session":"`)
}

func TestRootCommandBadLogLevel(t *testing.T) {
	var out, logs bytes.Buffer
	cmd := newRootCmd(strings.NewReader("10\n"), &out, &logs)
	cmd.SetArgs([]string{"--log-level", "loud"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
	require.NotContains(t, out.String(), "Menu Principal:")
}

func TestVersionCommand(t *testing.T) {
	var out, logs bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out, &logs)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "registry version "+appVersion+"\n", out.String())
}

func TestNewLogger(t *testing.T) {
	require := require.New(t)

	_, err := newLogger(registryConfig{logLevel: "debug", logFormat: "text"}, io.Discard)
	require.NoError(err)
	_, err = newLogger(registryConfig{logLevel: "warn", logFormat: "xml"}, io.Discard)
	require.Error(err)
	_, err = newLogger(registryConfig{logLevel: "verbose", logFormat: "text"}, io.Discard)
	require.Error(err)
}

func TestConfigFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(os.WriteFile(path, []byte("log_level: debug\nlog_format: text\nrelease_deleted_ids: true\n"), 0o600))

	var out, logs bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out, &logs)
	settings := registryConfig{configFile: path, logLevel: "warn", logFormat: "json"}
	flags := cmd.Flags()
	require.NoError(flags.Parse([]string{"--log-format", "json"}))

	require.NoError(settings.load(flags))
	require.Equal("debug", settings.logLevel, "file value applies when the flag was not given")
	require.Equal("json", settings.logFormat, "explicit flag wins over the file")
	require.True(settings.releaseDeletedIDs)
}

func TestConfigFileErrors(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	fc, err := parseFileConfig(nil)
	require.NoError(err)
	require.Nil(fc.LogLevel)

	_, err = parseFileConfig([]byte("log_colour: red\n"))
	require.Error(err)

	settings := registryConfig{configFile: filepath.Join(dir, "missing.yaml")}
	err = settings.load(newRootCmd(nil, io.Discard, io.Discard).Flags())
	require.True(errors.Is(err, os.ErrNotExist))
}
