// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// Format describes a registered backend.
type Format struct {
	// Name selects the backend in NewBackend.
	Name string
	// Extension is the file extension of the output, without the dot.
	// It may be empty for backends that do not write files.
	Extension string
	// New returns a fresh backend with default settings.
	New BackendFactory
}

var (
	registryMu sync.RWMutex
	formats    = make(map[string]Format)
)

// Register makes a backend available. It is meant to be called from init
// and panics if the name is empty, the factory is nil, or the name or
// extension is already taken.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f.Name == "" {
		panic("recording: Register with empty name")
	}
	if f.New == nil {
		panic("recording: Register factory is nil for " + f.Name)
	}
	if _, dup := formats[f.Name]; dup {
		panic("recording: Register called twice for " + f.Name)
	}
	f.Extension = strings.ToLower(strings.TrimPrefix(f.Extension, "."))
	if f.Extension != "" {
		for _, other := range formats {
			if other.Extension == f.Extension {
				panic("recording: extension ." + f.Extension + " claimed by " + other.Name + " and " + f.Name)
			}
		}
	}
	formats[f.Name] = f
}

// Lookup returns the registration of the named backend.
func Lookup(name string) (Format, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := formats[name]
	return f, ok
}

// FormatFor returns the backend whose extension matches the extension of
// path, ignoring case.
func FormatFor(path string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return Format{}, false
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, f := range formats {
		if f.Extension == ext {
			return f, true
		}
	}
	return Format{}, false
}

// NewBackend returns a new instance of the named backend.
func NewBackend(name string) (Backend, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return f.New(), nil
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(formats))
}
