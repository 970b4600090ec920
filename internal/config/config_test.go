package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("DATABASE_URL", "postgres://localhost/refstats")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_DatabaseURLRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATABASE_URL", "postgres://localhost/refstats")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATABASE_URL", "postgres://localhost/refstats")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DATABASE_URL", "postgres://localhost/refstats")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "referee-stats" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("PyroscopeAppName must default to ServiceName, got %q", cfg.PyroscopeAppName)
	}
	if cfg.PyroscopeUploadRate != 15*time.Second {
		t.Fatalf("unexpected PyroscopeUploadRate: %s", cfg.PyroscopeUploadRate)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled {
		t.Fatalf("observability must be off by default")
	}
}

func TestLoad_InvalidUploadRate(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATABASE_URL", "postgres://localhost/refstats")
	t.Setenv("PYROSCOPE_UPLOAD_RATE", "-5s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive PYROSCOPE_UPLOAD_RATE")
	}
}
