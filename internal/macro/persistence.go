package macro

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

// Key type markers used in the macro file.
const (
	keyTypeSymbolic = "s"
	keyTypeVirtual  = "v"
)

// rootElement and recordElement name the elements written by Marshal.
// Load accepts any root element and any record element under it.
const (
	rootElement   = "macros"
	recordElement = "macro"
)

// xmlFile mirrors the macro file layout:
//
//	<macros>
//	  <macro>
//	    <name>Greeting</name>
//	    <key type="s">home</key>
//	    <text>hello</text>
//	  </macro>
//	</macros>
type xmlFile struct {
	XMLName xml.Name
	Macros  []xmlMacro `xml:",any"`
}

type xmlMacro struct {
	XMLName xml.Name
	Text    string  `xml:"text,omitempty"`
	Name    string  `xml:"name,omitempty"`
	Key     *xmlKey `xml:"key,omitempty"`
}

type xmlKey struct {
	Type  string `xml:"type,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Load reads a macro file and returns its entries in file order. Records
// with no key, text or name are skipped; records with any one of them are
// kept so they can be completed later. A key that cannot be decoded is
// logged and left unbound.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read macro file '%s': %w", path, err)
	}
	return Parse(data)
}

// Parse decodes macro file content.
func Parse(data []byte) ([]Entry, error) {
	var doc xmlFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse macro file: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Macros))
	for i, m := range doc.Macros {
		if m.XMLName.Local != recordElement {
			log.Printf("Macro file: record %d is a <%s> element, reading it as a macro", i, m.XMLName.Local)
		}
		hotkey := decodeKey(i, m.Key)
		if hotkey.IsZero() && m.Text == "" && m.Name == "" {
			continue
		}
		entries = append(entries, Entry{Hotkey: hotkey, Text: m.Text, Name: m.Name})
	}
	return entries, nil
}

func decodeKey(record int, k *xmlKey) keyspec.KeySpec {
	if k == nil || k.Value == "" {
		return keyspec.KeySpec{}
	}
	var (
		spec keyspec.KeySpec
		err  error
	)
	switch k.Type {
	case keyTypeSymbolic:
		spec, err = keyspec.ParseSymbolic(k.Value)
	case keyTypeVirtual:
		spec, err = keyspec.ParseVirtual(k.Value)
	default:
		spec, err = keyspec.ParseChar(k.Value)
	}
	if err != nil {
		log.Printf("Macro file: record %d has an unusable key: %v", record, err)
		return keyspec.KeySpec{}
	}
	return spec
}

func encodeKey(k keyspec.KeySpec) *xmlKey {
	switch k.Kind() {
	case keyspec.KindChar:
		r, _ := k.Rune()
		return &xmlKey{Value: string(r)}
	case keyspec.KindNamed:
		name, _ := k.Name()
		return &xmlKey{Type: keyTypeSymbolic, Value: name}
	case keyspec.KindVirtual:
		code, _ := k.Code()
		return &xmlKey{Type: keyTypeVirtual, Value: strconv.Itoa(code)}
	default:
		return nil
	}
}

// Marshal encodes entries in the macro file format.
func Marshal(entries []Entry) ([]byte, error) {
	doc := xmlFile{
		XMLName: xml.Name{Local: rootElement},
		Macros:  make([]xmlMacro, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Macros = append(doc.Macros, xmlMacro{
			XMLName: xml.Name{Local: recordElement},
			Text:    e.Text,
			Name:    e.Name,
			Key:     encodeKey(e.Hotkey),
		})
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal macros: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save writes entries to path atomically using a temporary file and rename.
func Save(path string, entries []Entry) error {
	data, err := Marshal(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
