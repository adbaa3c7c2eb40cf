package shell

import (
	"testing"

	"src.elv.sh/elvcalc/pkg/must"
	"src.elv.sh/elvcalc/pkg/store"
	"src.elv.sh/elvcalc/pkg/testutil"
)

func TestLoadSettings(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"partial.yaml": "prompt: '> '\nstore: bolt\n",
		"full.yaml":    "prompt: '$ '\ncolor: never\nstore: memory\nbanner: false\n",
	})

	if s := must.OK1(LoadSettings("")); s != DefaultSettings {
		t.Errorf("LoadSettings(\"\") -> %v, want %v", s, DefaultSettings)
	}

	wantPartial := DefaultSettings
	wantPartial.Prompt = "> "
	wantPartial.Store = store.Bolt
	if s := must.OK1(LoadSettings("partial.yaml")); s != wantPartial {
		t.Errorf("got %v, want %v", s, wantPartial)
	}

	wantFull := Settings{Prompt: "$ ", Color: ColorNever, Store: store.Memory, Banner: false}
	if s := must.OK1(LoadSettings("full.yaml")); s != wantFull {
		t.Errorf("got %v, want %v", s, wantFull)
	}
}

func TestSettings_Override(t *testing.T) {
	s := DefaultSettings.override(Settings{Color: ColorAlways})
	want := DefaultSettings
	want.Color = ColorAlways
	if s != want {
		t.Errorf("got %v, want %v", s, want)
	}
}

func TestSettings_Validate(t *testing.T) {
	if err := DefaultSettings.validate(); err != nil {
		t.Errorf("DefaultSettings.validate() -> %v", err)
	}
	bad := DefaultSettings
	bad.Store = "redis"
	if err := bad.validate(); err == nil {
		t.Errorf("validate() -> nil for store %q", bad.Store)
	}
}
