package auth

import (
	"os"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load before save: %v", err)
	}
	if creds.Token != "" {
		t.Errorf("expected empty credentials, got %+v", creds)
	}

	if err := Save(&Credentials{Token: "tok-1", Username: "curator"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	creds, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.Token != "tok-1" || creds.Username != "curator" {
		t.Errorf("credentials: %+v", creds)
	}

	path, err := CredentialPath()
	if err != nil {
		t.Fatalf("CredentialPath: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions: got %o", perm)
	}
}

func TestTokenPrefersEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := Save(&Credentials{Token: "from-file"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("EXHIBITS_TOKEN", "from-env")
	if got := Token(); got != "from-env" {
		t.Errorf("token: got %q", got)
	}

	t.Setenv("EXHIBITS_TOKEN", "")
	if got := Token(); got != "from-file" {
		t.Errorf("token: got %q", got)
	}
}
