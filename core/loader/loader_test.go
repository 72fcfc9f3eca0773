package loader_test

import (
	"errors"
	"testing"

	"gear-tracker/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  int
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded++
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	capture := &stubFeature{name: "capture", enabled: true}
	history := &stubFeature{name: "history", enabled: true}
	disabled := &stubFeature{name: "disabled"}

	mgr := loader.NewManager()
	mgr.Register(capture)
	mgr.Register(disabled)
	mgr.Register(history)

	require.NoError(t, mgr.LoadAll(fiber.New()))
	assert.Equal(t, 1, capture.loaded)
	assert.Equal(t, 1, history.loaded)
	assert.Zero(t, disabled.loaded)
	assert.Equal(t, []string{"capture", "history"}, mgr.Enabled())
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("no bucket")})
	after := &stubFeature{name: "after", enabled: true}
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: no bucket")
	assert.Zero(t, after.loaded)
}

func TestManager_DuplicateName(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&stubFeature{name: "capture", enabled: true})
	mgr.Register(&stubFeature{name: "capture", enabled: true})

	assert.EqualError(t, mgr.LoadAll(fiber.New()), "feature capture registered twice")
}
