package localstate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDir_Override(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(envHome, tmp)

	dir, err := DataDir("")
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	if dir != tmp {
		t.Fatalf("expected dir %s, got %s", tmp, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir not created: %v", err)
	}
}

func TestDataDir_ArgumentWinsOverEnv(t *testing.T) {
	t.Setenv(envHome, t.TempDir())
	want := filepath.Join(t.TempDir(), "nested", "state")

	dir, err := DataDir(want)
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	if dir != want {
		t.Fatalf("expected dir %s, got %s", want, dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("dir not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Fatalf("expected 0700, got %o", perm)
	}
}

func TestPrefsPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(envHome, tmp)

	p, err := PrefsPath("")
	if err != nil {
		t.Fatalf("PrefsPath error: %v", err)
	}
	expected := filepath.Join(tmp, prefsFilename)
	if p != expected {
		t.Fatalf("expected path %s, got %s", expected, p)
	}
}
