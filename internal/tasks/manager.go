package tasks

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// backendPreference is the order tried when no backend is named.
var backendPreference = []string{"sqlite", "memory"}

// Open creates the named backend.
// If name is empty, it tries backends in order of preference and falls back
// to memory.
func Open(name string, log logrus.FieldLogger) (Backend, error) {
	return open(defaultRegistry, name, log)
}

func open(r *Registry, name string, log logrus.FieldLogger) (Backend, error) {
	if name != "" {
		b, err := r.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating backend %s: %w", name, err)
		}
		return b, nil
	}

	for _, candidate := range backendPreference {
		b, err := r.Create(candidate)
		if err != nil {
			if log != nil {
				log.WithError(err).WithField("backend", candidate).Warn("backend unavailable")
			}
			continue
		}
		return b, nil
	}

	return NewMemoryBackend(), nil
}
