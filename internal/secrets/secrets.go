package secrets

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/99designs/keyring"
)

// placeholder matches {{secret:NAME}}.
var placeholder = regexp.MustCompile(`\{\{secret:([A-Za-z0-9_.\-]+)\}\}`)

var validName = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// ValidName reports whether name can be used in a placeholder.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// Store looks up secret values by name.
type Store interface {
	Get(name string) (string, error)
}

// Expander replaces {{secret:NAME}} placeholders in macro text with values
// from a Store. Placeholders that cannot be resolved are left as is.
type Expander struct {
	store Store
}

// NewExpander returns an Expander backed by store.
func NewExpander(store Store) *Expander {
	return &Expander{store: store}
}

// Expand implements engine.Expander.
func (x *Expander) Expand(text string) string {
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		value, err := x.store.Get(name)
		if err != nil {
			log.Printf("Secrets: could not resolve '%s', typing placeholder literally: %v", name, err)
			return match
		}
		return value
	})
}

// Names returns the secret names referenced by text, in order of first use.
func Names(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// KeyringStore reads secrets from the OS keyring.
type KeyringStore struct {
	service string
	kr      keyring.Keyring
}

// OpenKeyring opens the keyring for service.
func OpenKeyring(service string) (*KeyringStore, error) {
	kr, err := keyring.Open(keyring.Config{
		ServiceName: service,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
		},
		LibSecretCollectionName:  "login",
		WinCredPrefix:            service,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring for service '%s': %w", service, err)
	}
	log.Printf("Secrets: opened keyring for service '%s'", service)
	return &KeyringStore{service: service, kr: kr}, nil
}

// Get implements Store.
func (s *KeyringStore) Get(name string) (string, error) {
	item, err := s.kr.Get(name)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("secret '%s' not found for service '%s': %w", name, s.service, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read secret '%s': %w", name, err)
	}
	return string(item.Data), nil
}

// Set stores a secret value under name.
func (s *KeyringStore) Set(name, value string) error {
	err := s.kr.Set(keyring.Item{
		Key:         name,
		Data:        []byte(value),
		Label:       fmt.Sprintf("Macro secret %s", name),
		Description: "Managed by " + s.service,
	})
	if err != nil {
		return fmt.Errorf("failed to store secret '%s' in keyring: %w", name, err)
	}
	return nil
}
