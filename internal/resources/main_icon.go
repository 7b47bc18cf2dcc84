// Package resources holds the embedded tray and notification icon.
package resources

import (
	_ "embed"
	"errors"
	"runtime"
)

// ErrIconNotFound is returned when the embedded icon is empty.
var ErrIconNotFound = errors.New("embedded icon not found")

//go:embed icon.ico
var icoData []byte

//go:embed icon.png
var pngData []byte

// GetIcon returns the tray icon bytes in the format the platform tray
// expects: ICO on Windows, PNG elsewhere.
func GetIcon() ([]byte, error) {
	data := pngData
	if runtime.GOOS == "windows" {
		data = icoData
	}
	if len(data) == 0 {
		return nil, ErrIconNotFound
	}
	return data, nil
}
