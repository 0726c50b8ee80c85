package app

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetupAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "api_url = \"http://files.example:7000\"\nrequest_timeout = 2\nlocale = \"sv\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env, err := Setup(Options{
		ConfigPath: cfgPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		APIURL:     "http://override.example:9000",
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if got := env.Client.BaseURL(); got != "http://override.example:9000" {
		t.Fatalf("BaseURL() = %q, want override", got)
	}
	if env.Config.RequestTimeout != 2*time.Second {
		t.Fatalf("RequestTimeout = %v, want 2s", env.Config.RequestTimeout)
	}
	if env.Config.Language().String() != "sv" {
		t.Fatalf("Language() = %v, want sv", env.Config.Language())
	}
	if env.Prefs.Theme != "Nightfox" {
		t.Fatalf("Prefs.Theme = %q, want default Nightfox", env.Prefs.Theme)
	}
	if env.Store == nil {
		t.Fatal("Setup() returned nil store")
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("locale = \"not a locale!\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Setup(Options{ConfigPath: cfgPath}); err == nil {
		t.Fatal("Setup() error = nil, want locale error")
	}
}

func TestRedirectLogCreatesDirectory(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "nested", "roster.log")
	closeLog, err := redirectLog(path)
	if err != nil {
		t.Fatalf("redirectLog() error = %v", err)
	}
	log.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
}
