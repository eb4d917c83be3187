package prefs

import (
	"errors"
	"testing"

	"actlog/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct{ kv.Store }

func (failingKV) Set(string, string) error { return errors.New("disk full") }

func TestTheme_DefaultsToLight(t *testing.T) {
	th := NewTheme(kv.NewMemory(nil), "darkMode")
	assert.False(t, th.Load())
}

func TestTheme_OnlyExactTrueIsDark(t *testing.T) {
	for v, want := range map[string]bool{"true": true, "false": false, "TRUE": false, "1": false, "": false} {
		th := NewTheme(kv.NewMemory(map[string]string{"darkMode": v}), "darkMode")
		assert.Equal(t, want, th.Load(), "%q", v)
	}
}

func TestTheme_ToggleTwiceRestores(t *testing.T) {
	mem := kv.NewMemory(nil)
	th := NewTheme(mem, "darkMode")
	orig := th.Load()

	dark, err := th.Toggle()
	require.NoError(t, err)
	assert.True(t, dark)
	v, err := mem.Get("darkMode")
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	dark, err = th.Toggle()
	require.NoError(t, err)
	assert.Equal(t, orig, dark)
	v, _ = mem.Get("darkMode")
	assert.Equal(t, "false", v)

	assert.False(t, NewTheme(mem, "darkMode").Load())
}

func TestTheme_ApplyHook(t *testing.T) {
	th := NewTheme(kv.NewMemory(map[string]string{"darkMode": "true"}), "darkMode")
	var got []bool
	th.OnApply(func(dark bool) { got = append(got, dark) })

	th.Load()
	_, _ = th.Toggle()
	assert.Equal(t, []bool{true, false}, got)
}

func TestTheme_PersistFailureKeepsValue(t *testing.T) {
	th := NewTheme(failingKV{kv.NewMemory(nil)}, "darkMode")
	th.Load()

	dark, err := th.Toggle()
	var pe *kv.PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.True(t, dark)
	assert.True(t, th.Dark())
}
