package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestShouldReload(t *testing.T) {
	path := filepath.Join(string(filepath.Separator)+"tmp", "Macros.xml")
	base := "Macros.xml"

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"rename into place", fsnotify.Event{Name: filepath.Join("other", base), Op: fsnotify.Rename}, true},
		{"chmod ignored", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"remove ignored", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(filepath.Dir(path), "settings.toml"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldReload(path, base, tt.event); got != tt.want {
				t.Errorf("shouldReload() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdmitDebounceAndSuppress(t *testing.T) {
	w := &Watcher{debounce: 200 * time.Millisecond}
	now := time.Now()

	if !w.admit(now) {
		t.Fatal("first event should be admitted")
	}
	if w.admit(now.Add(50 * time.Millisecond)) {
		t.Error("event inside debounce window should be dropped")
	}
	if !w.admit(now.Add(300 * time.Millisecond)) {
		t.Error("event after debounce window should be admitted")
	}

	w.suppress = now.Add(time.Second)
	if w.admit(now.Add(900 * time.Millisecond)) {
		t.Error("suppressed event should be dropped")
	}
}

func TestStartNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Macros.xml")
	if err := os.WriteFile(path, []byte("<macros/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reloadCh := make(chan struct{}, 10)
	w, err := Start(path, 10*time.Millisecond, func() {
		select {
		case reloadCh <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	// Give fsnotify a moment to attach.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("<macros></macros>"), 0o644); err != nil {
		t.Fatalf("write changed: %v", err)
	}

	select {
	case <-reloadCh:
	case <-time.After(2 * time.Second):
		t.Fatal("expected reload signal after modifying macro file")
	}
}

func TestStartMissingDirectory(t *testing.T) {
	if _, err := Start(filepath.Join(t.TempDir(), "missing", "Macros.xml"), DefaultDebounce, nil); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
