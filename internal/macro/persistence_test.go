package macro

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

func writeMacroFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Macros.xml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write macro file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("decodes key types", func(t *testing.T) {
		t.Parallel()

		path := writeMacroFile(t, `<?xml version="1.0"?>
<macros>
  <macro><name>Plain</name><key>a</key><text>hello</text></macro>
  <macro><name>Home</name><key type="s">home</key><text>at home</text></macro>
  <macro><name>Keypad</name><key type="v">65437</key><text>five</text></macro>
</macros>`)

		entries, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		want := []keyspec.KeySpec{keyspec.Char('a'), keyspec.Named("home"), keyspec.VirtualCode(65437)}
		for i, e := range entries {
			if e.Hotkey != want[i] {
				t.Errorf("entry %d hotkey = %v, want %v", i, e.Hotkey, want[i])
			}
		}
		if entries[0].Text != "hello" || entries[0].Name != "Plain" {
			t.Errorf("unexpected entry 0: %+v", entries[0])
		}
		if got := KeyName(entries[2].Hotkey); got != "KP_5" {
			t.Errorf("KeyName(entry 2) = %q, want KP_5", got)
		}
	})

	t.Run("keeps partial records and skips empty ones", func(t *testing.T) {
		t.Parallel()

		path := writeMacroFile(t, `<macros>
  <macro></macro>
  <macro><name>Name only</name></macro>
  <macro><key>q</key></macro>
  <macro><text>Text only</text></macro>
  <macro><name></name><text></text></macro>
</macros>`)

		entries, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
		}
		if entries[0].Name != "Name only" || !entries[0].Hotkey.IsZero() {
			t.Errorf("unexpected entry 0: %+v", entries[0])
		}
		if entries[1].Hotkey != keyspec.Char('q') {
			t.Errorf("unexpected entry 1: %+v", entries[1])
		}
		if entries[2].Text != "Text only" {
			t.Errorf("unexpected entry 2: %+v", entries[2])
		}
	})

	t.Run("unusable key leaves hotkey unbound", func(t *testing.T) {
		t.Parallel()

		path := writeMacroFile(t, `<macros>
  <macro><name>Bad symbolic</name><key type="s">not-a-key</key></macro>
  <macro><key type="v">abc</key></macro>
</macros>`)

		entries, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if !entries[0].Hotkey.IsZero() {
			t.Errorf("expected unbound hotkey, got %v", entries[0].Hotkey)
		}
	})

	t.Run("multi-character untyped key is not truncated", func(t *testing.T) {
		t.Parallel()

		entries, err := Parse([]byte(`<macros><macro><key>home</key><text>x</text></macro></macros>`))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if !entries[0].Hotkey.IsZero() {
			t.Fatalf("hotkey = %v, want unbound", entries[0].Hotkey)
		}
		if entries[0].Hotkey == keyspec.Char('h') {
			t.Errorf("key text was truncated to its first character")
		}
	})

	t.Run("reads every child of the root", func(t *testing.T) {
		t.Parallel()

		entries, err := Parse([]byte(`<macros>
  <macro><name>first</name><key>a</key></macro>
  <item><name>second</name><key>b</key></item>
</macros>`))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[1].Name != "second" || entries[1].Hotkey != keyspec.Char('b') {
			t.Errorf("unexpected entry 1: %+v", entries[1])
		}

		out, err := Marshal(entries)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if strings.Contains(string(out), "<item>") || strings.Count(string(out), "<macro>") != 2 {
			t.Errorf("Marshal should write every record as <macro>:\n%s", out)
		}
	})

	t.Run("accepts any root element", func(t *testing.T) {
		t.Parallel()

		path := writeMacroFile(t, `<root><macro><name>x</name></macro></root>`)
		entries, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("returns error on missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := Load(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("returns error on malformed file", func(t *testing.T) {
		t.Parallel()

		path := writeMacroFile(t, `<macros><macro><name>oops</macro>`)
		_, err := Load(path)
		if err == nil {
			t.Fatalf("expected error")
		}
		if !strings.Contains(err.Error(), "failed to parse macro file") {
			t.Fatalf("expected wrapped parse error, got %q", err.Error())
		}
	})
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "Macros.xml")
	entries := []Entry{
		{Hotkey: keyspec.Char('a'), Text: "hello\nworld", Name: "Greeting"},
		{Hotkey: keyspec.Named("home"), Text: "<tag> & more", Name: "Escaped"},
		{Hotkey: keyspec.VirtualCode(65437), Name: "Keypad"},
		{Name: "No key yet"},
	}

	if err := Save(path, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<key type="v">65437</key>`) {
		t.Errorf("virtual key not written with type marker:\n%s", data)
	}
	if !strings.Contains(string(data), `<key type="s">home</key>`) {
		t.Errorf("named key not written with type marker:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(entries) {
		t.Fatalf("loaded %d entries, want %d", len(loaded), len(entries))
	}
	for i := range entries {
		got, want := loaded[i], entries[i]
		if got.Hotkey != want.Hotkey || got.Text != want.Text || got.Name != want.Name {
			t.Errorf("entry %d = %+v, want %+v", i, got, want)
		}
	}
}
