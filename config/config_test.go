package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickInterval != 20*time.Millisecond || cfg.TPS() != 50 {
		t.Fatalf("expected 20ms ticks at 50 TPS, got=%v tps=%d", cfg.TickInterval, cfg.TPS())
	}
	if cfg.Gravity != 0.2 || cfg.CullY != 500 {
		t.Fatalf("expected default physics, got gravity=%f cull=%f", cfg.Gravity, cfg.CullY)
	}
	if cfg.ScreenWidth != 1000 || cfg.ScreenHeight != 1000 {
		t.Fatalf("expected 1000x1000, got=%dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvScreenWidth, "640")
	t.Setenv(EnvTitle, "drop test")
	t.Setenv(EnvTickMillis, "10")
	t.Setenv(EnvGravity, "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ScreenWidth != 640 || cfg.Title != "drop test" {
		t.Fatalf("expected overrides, got width=%d title=%q", cfg.ScreenWidth, cfg.Title)
	}
	if cfg.TPS() != 100 {
		t.Fatalf("expected 100 TPS, got=%d", cfg.TPS())
	}
	if p := cfg.Physics(); p.Gravity != 0.5 || p.CullY != 500 {
		t.Fatalf("unexpected physics config: %+v", p)
	}
}

func TestDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyfall.env")
	if err := os.WriteFile(path, []byte(EnvCullY+"=750\n"+EnvScreenHeight+"=480\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv(EnvCullY)
		os.Unsetenv(EnvScreenHeight)
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CullY != 750 || cfg.ScreenHeight != 480 {
		t.Fatalf("expected dotenv values, got cull=%f height=%d", cfg.CullY, cfg.ScreenHeight)
	}
}

func TestMissingDotenvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected an error for a missing env file")
	}
}

func TestParseErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvGravity, "heavy")
	if _, err := Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateRejectsBadSizes(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvScreenWidth, "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected a validation error")
	}
}
