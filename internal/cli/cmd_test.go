package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/alexanderramin/trailog/internal/repository"
	"github.com/alexanderramin/trailog/internal/service"
	"github.com/alexanderramin/trailog/internal/store"
	"github.com/alexanderramin/trailog/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC)

// testApp wires an App around a session backed by an in-memory DB.
func testApp(t *testing.T) (*App, *service.Session) {
	t.Helper()
	n := 0
	sess := service.NewSession(
		repository.NewSQLiteSnapshotRepo(testutil.NewTestDB(t)),
		service.WithClock(func() time.Time { return testNow }),
		service.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("w%d", n)
		}),
	)
	require.NoError(t, sess.Load(context.Background()))
	return &App{Workouts: sess, MapZoom: 13}, sess
}

// executeCmd runs the root command with args and returns its stdout.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func logRun(t *testing.T, app *App) {
	t.Helper()
	_, err := executeCmd(t, app, "log", "running", "--at", "38.7223,-9.1393",
		"--distance", "5", "--duration", "25", "--cadence", "180")
	require.NoError(t, err)
}

func TestLogCmd_Running(t *testing.T) {
	app, sess := testApp(t)

	out, err := executeCmd(t, app, "log", "running", "--at", "38.7223,-9.1393",
		"--distance", "5", "--duration", "25", "--cadence", "180")
	require.NoError(t, err)

	assert.Contains(t, out, "Running on April 14")
	assert.Contains(t, out, "5.0 min/km")

	all := sess.Workouts()
	require.Len(t, all, 1)
	run, ok := all[0].(*domain.Running)
	require.True(t, ok)
	assert.Equal(t, 180.0, run.CadenceSpm())
	assert.Equal(t, domain.Coordinates{Lat: 38.7223, Lon: -9.1393}, run.Coords())
}

func TestLogCmd_CyclingWithLatLon(t *testing.T) {
	app, sess := testApp(t)

	out, err := executeCmd(t, app, "log", "cycling", "--lat", "46.5", "--lon", "7.9",
		"--distance", "20", "--duration", "60", "--elevation=-50")
	require.NoError(t, err)
	assert.Contains(t, out, "20.0 km/h")

	all := sess.Workouts()
	require.Len(t, all, 1)
	ride, ok := all[0].(*domain.Cycling)
	require.True(t, ok)
	assert.Equal(t, -50.0, ride.ElevationGainM())
}

func TestLogCmd_ValidationErrorStoresNothing(t *testing.T) {
	app, sess := testApp(t)

	_, err := executeCmd(t, app, "log", "running", "--at", "38.7,-9.1",
		"--distance", "0", "--duration", "10", "--cadence", "150")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, sess.Workouts())
}

func TestLogCmd_RequiresLocation(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "log", "running", "--distance", "5", "--duration", "25", "--cadence", "180")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location required")
}

func TestLogCmd_RejectsOutOfRangeCoordinates(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "log", "running", "--at", "91,0",
		"--distance", "5", "--duration", "25", "--cadence", "180")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestLogCmd_UnknownKind(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "log", "swimming", "--at", "1,1", "--distance", "1", "--duration", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogCmd_NoKindNonInteractive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workout type required")
}

func TestListCmd_Empty(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No workouts yet")
}

func TestListCmd_ShowsWorkoutsInOrder(t *testing.T) {
	app, _ := testApp(t)
	logRun(t, app)
	_, err := executeCmd(t, app, "log", "cycling", "--at", "46.5,7.9",
		"--distance", "20", "--duration", "60", "--elevation", "300")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "WORKOUTS (2)")
	assert.Contains(t, out, "5.0 min/km")
	assert.Contains(t, out, "180 spm")
	assert.Contains(t, out, "20.0 km/h")
	assert.Contains(t, out, "300 m")
	assert.Less(t, bytes.Index([]byte(out), []byte("Running")), bytes.Index([]byte(out), []byte("Cycling")))
}

func TestShowCmd(t *testing.T) {
	app, _ := testApp(t)
	logRun(t, app)

	out, err := executeCmd(t, app, "show", "w1")
	require.NoError(t, err)
	assert.Contains(t, out, "Running on April 14")
	assert.Contains(t, out, "#map=13/38.7223/-9.1393")
}

func TestShowCmd_ByShortIDFromList(t *testing.T) {
	sess := service.NewSession(repository.NewSQLiteSnapshotRepo(testutil.NewTestDB(t)))
	app := &App{Workouts: sess, MapZoom: 13}
	logRun(t, app)
	_, err := executeCmd(t, app, "log", "cycling", "--at", "46.5,7.9",
		"--distance", "20", "--duration", "60", "--elevation", "300")
	require.NoError(t, err)

	list, err := executeCmd(t, app, "list")
	require.NoError(t, err)

	for _, w := range sess.Workouts() {
		short := domain.ShortID(w.ID())
		require.Contains(t, list, short)

		out, err := executeCmd(t, app, "show", short)
		require.NoError(t, err, "show %s", short)
		assert.Contains(t, out, w.ID())
	}
}

func TestShowCmd_NotFound(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no workout with id "nope"`)
}

func TestShowCmd_AmbiguousPrefix(t *testing.T) {
	app, _ := testApp(t)
	logRun(t, app)
	logRun(t, app)

	_, err := executeCmd(t, app, "show", "w")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAmbiguousID)
}

func TestResetCmd_RequiresYesWhenNotInteractive(t *testing.T) {
	app, sess := testApp(t)
	logRun(t, app)

	_, err := executeCmd(t, app, "reset")
	require.Error(t, err)
	assert.Len(t, sess.Workouts(), 1)
}

func TestResetCmd_Yes(t *testing.T) {
	app, sess := testApp(t)
	logRun(t, app)

	out, err := executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All workouts deleted.")
	assert.Empty(t, sess.Workouts())
}

func TestResetCmd_DeclinedConfirmation(t *testing.T) {
	app, sess := testApp(t)
	logRun(t, app)
	app.IsInteractive = func() bool { return true }
	app.RunForm = func(*huh.Form) error { return nil }

	out, err := executeCmd(t, app, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing deleted.")
	assert.Len(t, sess.Workouts(), 1)
}

func TestExportImportRoundTrip(t *testing.T) {
	app, _ := testApp(t)
	logRun(t, app)
	path := filepath.Join(t.TempDir(), "workouts.json")

	_, err := executeCmd(t, app, "export", "--out", path)
	require.NoError(t, err)

	other, otherSess := testApp(t)
	out, err := executeCmd(t, other, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 workouts.")

	all := otherSess.Workouts()
	require.Len(t, all, 1)
	assert.Equal(t, "w1", all[0].ID())
	assert.Equal(t, "Running on April 14", all[0].Description())
}

func TestExportCmd_Stdout(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestImportCmd_MalformedChangesNothing(t *testing.T) {
	app, sess := testApp(t)
	logRun(t, app)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","kind":"running"}]`), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDeserialization)
	assert.Len(t, sess.Workouts(), 1)
}

func TestBrowseCmd_NonInteractive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
