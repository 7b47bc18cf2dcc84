package keyspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnknownKey is returned when a symbolic key name is not recognized.
var ErrUnknownKey = errors.New("unknown key name")

// Kind identifies which variant a KeySpec holds.
type Kind uint8

const (
	// KindNone is the zero value: no hotkey bound.
	KindNone Kind = iota
	KindChar
	KindNamed
	KindVirtual
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindNamed:
		return "named"
	case KindVirtual:
		return "virtual"
	default:
		return "none"
	}
}

// KeySpec is the identity of a hotkey: a literal character, a named key
// such as "home", or a raw virtual-key code. The zero value means "no key".
//
// KeySpec is comparable; two specs are equal only when both the variant and
// the value match. A Char('a') never equals VirtualCode(97).
type KeySpec struct {
	kind Kind
	char rune
	name string
	code int
}

// Char returns a character KeySpec.
func Char(r rune) KeySpec {
	return KeySpec{kind: KindChar, char: r}
}

// Named returns a symbolic KeySpec. Names are stored lower-case.
func Named(name string) KeySpec {
	return KeySpec{kind: KindNamed, name: strings.ToLower(name)}
}

// VirtualCode returns a KeySpec for a raw virtual-key code.
func VirtualCode(code int) KeySpec {
	return KeySpec{kind: KindVirtual, code: code}
}

// Kind reports the variant held by k.
func (k KeySpec) Kind() Kind { return k.kind }

// IsZero reports whether no key is bound.
func (k KeySpec) IsZero() bool { return k.kind == KindNone }

// Rune returns the character of a Char spec.
func (k KeySpec) Rune() (rune, bool) {
	return k.char, k.kind == KindChar
}

// Name returns the symbolic name of a Named spec.
func (k KeySpec) Name() (string, bool) {
	return k.name, k.kind == KindNamed
}

// Code returns the virtual-key code of a VirtualCode spec.
func (k KeySpec) Code() (int, bool) {
	return k.code, k.kind == KindVirtual
}

// String returns the default rendering: characters are single-quoted
// ('a'), named keys are bare (home), virtual codes are bracketed (<65437>).
func (k KeySpec) String() string {
	switch k.kind {
	case KindChar:
		return "'" + string(k.char) + "'"
	case KindNamed:
		return k.name
	case KindVirtual:
		return "<" + strconv.Itoa(k.code) + ">"
	default:
		return "none"
	}
}

// ParseSymbolic decodes a symbolic key reference such as "home", "<home>",
// "f5" or "<65437>". A bracketed or bare decimal number yields a
// VirtualCode; anything else must be a known key name.
func ParseSymbolic(s string) (KeySpec, error) {
	name := strings.TrimSpace(s)
	name = strings.TrimPrefix(name, "<")
	name = strings.TrimSuffix(name, ">")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KeySpec{}, fmt.Errorf("empty symbolic key %q: %w", s, ErrUnknownKey)
	}
	if code, err := strconv.Atoi(name); err == nil {
		return VirtualCode(code), nil
	}
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if !IsKnownName(name) {
		return KeySpec{}, fmt.Errorf("symbolic key %q: %w", s, ErrUnknownKey)
	}
	return Named(name), nil
}

// ParseVirtual decodes a decimal virtual-key code.
func ParseVirtual(s string) (KeySpec, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return KeySpec{}, fmt.Errorf("virtual key code %q: %w", s, err)
	}
	return VirtualCode(code), nil
}

// ErrNotSingleChar is returned by ParseChar for text that is not exactly
// one character.
var ErrNotSingleChar = errors.New("character key must be exactly one character")

// ParseChar decodes a literal character key. An empty string yields the
// zero KeySpec; longer text is rejected rather than truncated.
func ParseChar(s string) (KeySpec, error) {
	if s == "" {
		return KeySpec{}, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return KeySpec{}, fmt.Errorf("character key %q: %w", s, ErrNotSingleChar)
	}
	return Char(r), nil
}
