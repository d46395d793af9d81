package loader_test

import (
	"errors"
	"testing"

	"retail-storage/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &fakeFeature{name: "order", enabled: true}
	disabled := &fakeFeature{name: "report", enabled: false}

	mgr := loader.NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(app)
	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestManager_LoadAll_Error(t *testing.T) {
	app := fiber.New()

	broken := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}

	mgr := loader.NewManager()
	mgr.Register(broken)

	err := mgr.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
