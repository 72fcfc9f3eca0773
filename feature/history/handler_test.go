package history_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"gear-tracker/core/equipment"
	"gear-tracker/core/reconcile"
	"gear-tracker/core/utils"
	"gear-tracker/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mapSource serves equipment captures keyed by YYYY-MM-DD.
type mapSource map[string]*equipment.Capture

func (s mapSource) LoadDailyEquipment(ctx context.Context, characterID string, date time.Time) (*equipment.Capture, error) {
	return s[utils.FormatDate(date)], nil
}

func (s mapSource) LoadDailySeedRingExchange(ctx context.Context, characterID string, date time.Time) (*equipment.RingExchange, error) {
	return nil, nil
}

func staff(name string, starforce int) equipment.RawItem {
	return equipment.RawItem{Part: "Weapon", Slot: "Weapon", Name: name, Starforce: equipment.Number(starforce)}
}

var guardianAngel = equipment.RawItem{Part: "Ring", Slot: "Ring 1", Name: "Guardian Angel Ring"}

func captureOf(items ...equipment.RawItem) *equipment.Capture {
	return &equipment.Capture{ItemEquipment: items}
}

// fiveDays is a new weapon, a new ring, a starforce upgrade, a missing day
// and a weapon replacement.
func fiveDays() mapSource {
	return mapSource{
		"2024-03-01": captureOf(staff("Arcane Umbra Staff", 17)),
		"2024-03-02": captureOf(staff("Arcane Umbra Staff", 17), guardianAngel),
		"2024-03-03": captureOf(staff("Arcane Umbra Staff", 19), guardianAngel),
		"2024-03-05": captureOf(staff("Genesis Staff", 22), guardianAngel),
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	opts := reconcile.Options{HistoryStart: march1}
	feature := history.NewFeature(setupSQLite(t), fiveDays(), opts, zap.NewNop())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func request(t *testing.T, app *fiber.App, method, url string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, url, nil), 5000)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

func TestHandleReplay(t *testing.T) {
	app := newTestApp(t)
	url := "/history/ocid-1/replay?from=2024-03-01&to=2024-03-05&name=Tester"

	var first history.ReplayResult
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", url, &first))
	assert.Equal(t, 4, first.Recorded)
	assert.False(t, first.DryRun)
	require.NotNil(t, first.Plan)
	assert.Equal(t, []string{"2024-03-04"}, first.Plan.Summary.Gaps)
	assert.Equal(t, "Tester", first.Plan.Events[0].CharacterName)

	var second history.ReplayResult
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", url, &second))
	assert.Len(t, second.Plan.Events, 4)
	assert.Zero(t, second.Recorded, "replaying the same window records nothing new")

	var events []reconcile.ChangeEvent
	require.Equal(t, fiber.StatusOK, request(t, app, "GET", "/history/ocid-1", &events))
	require.Len(t, events, 4)
	assert.Equal(t, "Arcane Umbra Staff: Starforce 17 → 19", events[2].Summary)
	assert.Equal(t, reconcile.ChangeReplace, events[3].Kind)
}

func TestHandleReplay_Window(t *testing.T) {
	app := newTestApp(t)

	var full history.ReplayResult
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", "/history/ocid-1/replay?from=2024-03-01&to=2024-03-05", &full))
	require.Equal(t, 4, full.Recorded)

	var window history.ReplayResult
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", "/history/ocid-1/replay?from=2024-03-03&to=2024-03-05", &window))
	assert.Len(t, window.Plan.Events, 2)
	assert.Zero(t, window.Recorded)
}

func TestHandleReplay_DryRun(t *testing.T) {
	app := newTestApp(t)

	var result history.ReplayResult
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", "/history/ocid-1/replay?from=2024-03-01&to=2024-03-05&dry_run=true", &result))
	assert.True(t, result.DryRun)
	assert.Len(t, result.Plan.Events, 4)
	assert.Zero(t, result.Recorded)

	var events []reconcile.ChangeEvent
	require.Equal(t, fiber.StatusOK, request(t, app, "GET", "/history/ocid-1", &events))
	assert.Empty(t, events)
}

func TestHandleReplay_Rebuild(t *testing.T) {
	app := newTestApp(t)
	url := "/history/ocid-1/replay?from=2024-03-01&to=2024-03-05"
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", url, nil))

	var result history.ReplayResult
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", url+"&rebuild=true", &result))
	assert.Equal(t, 4, result.Deleted)
	assert.Equal(t, 4, result.Recorded)
}

func TestHandleList_Filters(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, fiber.StatusOK, request(t, app, "POST", "/history/ocid-1/replay?from=2024-03-01&to=2024-03-05", nil))

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"Kind", "/history/ocid-1?kind=new_item", 2},
		{"From", "/history/ocid-1?from=2024-03-03", 2},
		{"To", "/history/ocid-1?to=2024-03-02", 2},
		{"OtherCharacter", "/history/ocid-2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []reconcile.ChangeEvent
			require.Equal(t, fiber.StatusOK, request(t, app, "GET", tt.url, &events))
			assert.Len(t, events, tt.want)
		})
	}
}

func TestHandlers_InvalidInput(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		url    string
		err    string
	}{
		{"MissingFrom", "POST", "/history/ocid-1/replay?to=2024-03-05", "from"},
		{"BadTo", "POST", "/history/ocid-1/replay?from=2024-03-01&to=tomorrow", "to"},
		{"Reversed", "POST", "/history/ocid-1/replay?from=2024-03-05&to=2024-03-01", "is before"},
		{"BadKind", "GET", "/history/ocid-1?kind=upgrade", "unknown kind"},
		{"BadFrom", "GET", "/history/ocid-1?from=03/01/2024", "from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			assert.Equal(t, fiber.StatusBadRequest, request(t, app, tt.method, tt.url, &body))
			assert.Contains(t, body["error"], tt.err)
		})
	}
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	feature := history.NewFeature(nil, fiveDays(), reconcile.Options{}, zap.NewNop())
	assert.Equal(t, "history", feature.Name())
	assert.False(t, feature.IsEnabled())
	assert.Nil(t, feature.Service())
}

func TestService_PlanThenApply(t *testing.T) {
	ctx := context.Background()
	feature := history.NewFeature(setupSQLite(t), fiveDays(), reconcile.Options{HistoryStart: march1}, zap.NewNop())
	require.NoError(t, feature.Load(fiber.New()))
	svc := feature.Service()

	req := history.ReplayRequest{Character: reconcile.Character{ID: "ocid-1"}, From: "2024-03-01", To: "2024-03-05"}
	plan, err := svc.Plan(ctx, req)
	require.NoError(t, err)
	require.Len(t, plan.Events, 4)

	events, err := svc.History(ctx, "ocid-1", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, events, "planning records nothing")

	result, err := svc.Apply(ctx, req, plan)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Recorded)

	req.Rebuild = true
	result, err = svc.Apply(ctx, req, plan)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Deleted)
	assert.Equal(t, 4, result.Recorded)

	_, err = svc.Plan(ctx, history.ReplayRequest{From: "2024-03-01", To: "2024-03-05"})
	assert.ErrorIs(t, err, history.ErrInvalidInput)
}
