package hotkey

import (
	"fmt"
	"strings"
)

// splitHotkey separates a combination such as "ctrl+alt+m" into its
// modifier names and key name, lower-cased.
func splitHotkey(hotkeyStr string) ([]string, string, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(hotkeyStr)), "+")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, "", fmt.Errorf("malformed hotkey: %q", hotkeyStr)
		}
	}
	keyStr := parts[len(parts)-1]
	if _, exists := KeyMap[keyStr]; !exists {
		return nil, "", fmt.Errorf("unsupported key: %s", keyStr)
	}
	return parts[:len(parts)-1], keyStr, nil
}
