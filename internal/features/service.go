package features

import (
	"sort"
	"strings"
	"sync"

	"github.com/marcus/ft/internal/store"
)

// keyPrefix namespaces persisted toggles inside the store. The service is the
// sole writer under this prefix; keys outside it are never touched.
const keyPrefix = "feature."

// Service owns the persisted-toggle namespace. It opens the underlying store
// lazily on first use; construction never fails.
type Service struct {
	baseDir string

	mu sync.Mutex
	st *store.Store
}

// NewService returns a service rooted at baseDir. The store is not opened
// until the first operation (or an explicit Init).
func NewService(baseDir string) *Service {
	return &Service{baseDir: baseDir}
}

// Init opens the underlying store. Idempotent: a second call on an open
// service is a no-op. Operations called before Init trigger it themselves.
func (s *Service) Init() error {
	_, err := s.ensure()
	return err
}

func (s *Service) ensure() (*store.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st != nil {
		return s.st, nil
	}
	st, err := store.Open(s.baseDir)
	if err != nil {
		return nil, err
	}
	s.st = st
	return st, nil
}

// Close releases the underlying store. A never-initialized service closes
// cleanly.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st == nil {
		return nil
	}
	err := s.st.Close()
	s.st = nil
	return err
}

// Key returns the store key for a feature ID.
func Key(id string) string {
	return keyPrefix + id
}

// IsFeatureEnabled returns the persisted toggle for id. The second return
// value reports whether a toggle was ever set; "persisted false" and "never
// set" are distinct states.
func (s *Service) IsFeatureEnabled(id string) (bool, bool, error) {
	st, err := s.ensure()
	if err != nil {
		return false, false, err
	}
	return st.GetBool(Key(id))
}

// SetFeatureEnabled writes the persisted toggle for id. The id is not
// validated against the registry; orphan entries are allowed and reported by
// doctor instead.
func (s *Service) SetFeatureEnabled(id string, enabled bool) error {
	st, err := s.ensure()
	if err != nil {
		return err
	}
	return st.SetBool(Key(id), enabled)
}

// Toggle flips the persisted toggle for id and returns the new value. An
// absent entry toggles to true. The read-negate-write runs under the store's
// exclusive write lock so concurrent toggles cannot be lost.
func (s *Service) Toggle(id string) (bool, error) {
	st, err := s.ensure()
	if err != nil {
		return false, err
	}

	var next bool
	err = st.WithWriteLock(func() error {
		current, _, err := st.GetBool(Key(id))
		if err != nil {
			return err
		}
		next = !current
		return st.SetBool(Key(id), next)
	})
	return next, err
}

// Unset removes the persisted toggle for id, returning the feature to its
// compiled-in default on next resolution.
func (s *Service) Unset(id string) error {
	st, err := s.ensure()
	if err != nil {
		return err
	}
	return st.Delete(Key(id))
}

// ResetAll removes every persisted toggle under the owned prefix. Entries
// outside the prefix are left alone.
func (s *Service) ResetAll() error {
	st, err := s.ensure()
	if err != nil {
		return err
	}
	return st.WithWriteLock(func() error {
		keys, err := st.Keys()
		if err != nil {
			return err
		}
		for _, key := range keys {
			if !strings.HasPrefix(key, keyPrefix) {
				continue
			}
			if err := st.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnabledFeatures returns the IDs whose persisted toggle is true, sorted.
// Defaults and build overrides are not merged in; this is a view over
// explicit toggles only.
func (s *Service) EnabledFeatures() ([]string, error) {
	flags, err := s.Export()
	if err != nil {
		return nil, err
	}
	var ids []string
	for id, enabled := range flags {
		if enabled {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Export returns every persisted toggle keyed by feature ID, for diagnostics.
func (s *Service) Export() (map[string]bool, error) {
	st, err := s.ensure()
	if err != nil {
		return nil, err
	}

	keys, err := st.Keys()
	if err != nil {
		return nil, err
	}

	flags := make(map[string]bool)
	for _, key := range keys {
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		enabled, ok, err := st.GetBool(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		flags[strings.TrimPrefix(key, keyPrefix)] = enabled
	}
	return flags, nil
}
