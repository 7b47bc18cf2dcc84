//go:build windows

package ui

// OpenFileInDefaultApp opens filePath with its associated application.
func OpenFileInDefaultApp(filePath string) error {
	return shellExecute(0, "open", filePath, "", "", swShowNormal)
}
