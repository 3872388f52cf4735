package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnSettingsWrite(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan string, 1)
	w, err := WatchDir(dir, func(path string) {
		select {
		case fired <- path:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchDir() error = %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, jsonFileName)
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-fired:
		if filepath.Base(got) != jsonFileName {
			t.Errorf("handler path = %q, want settings file", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("handler never fired for settings write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan string, 1)
	w, err := WatchDir(dir, func(path string) {
		select {
		case fired <- path:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchDir() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-fired:
		t.Errorf("handler fired for unrelated file %q", got)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := WatchDir(t.TempDir(), func(string) {})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
