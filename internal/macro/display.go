package macro

import (
	"strings"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

// keypadFiveCode is the keypad 5 (KP_Begin) code, which has no portable
// symbolic name.
const keypadFiveCode = 65437

// KeyName returns the label shown for a hotkey: the default rendering with
// up to two single quotes removed, upper-cased. A bare apostrophe and the
// keypad 5 code are special-cased.
func KeyName(k keyspec.KeySpec) string {
	if r, ok := k.Rune(); ok && r == '\'' {
		return "'"
	}
	if code, ok := k.Code(); ok && code == keypadFiveCode {
		return "KP_5"
	}
	return strings.ToUpper(strings.Replace(k.String(), "'", "", 2))
}

// KeyName returns the label of the hotkey bound to the entry at index.
func (r *Registry) KeyName(index int) (string, error) {
	if err := r.check(index); err != nil {
		return "", err
	}
	return KeyName(r.entries[index].Hotkey), nil
}
