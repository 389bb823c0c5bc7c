// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry loads and validates the fixed list of tracked
// public figures. The registry is loaded once per run and is immutable
// afterwards; malformed entries are skipped and reported, never fatal.
// See docs/ARCHITECTURE § Entity Registry.
package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/gilshw/politifeed/internal/hebrew"
	"github.com/gilshw/politifeed/pkg/types"
)

// MinAliasRunes is the minimum alias length; shorter aliases produce
// too much noise to be worth matching.
const MinAliasRunes = 3

// Registry holds the validated entity set.
type Registry struct {
	entities []types.Entity
	byID     map[string]types.Entity
	byRole   map[string]string // standardized role → entity ID
}

// Load reads a registry file. The format is chosen by extension:
// .json for the politicians.json shape, .yaml/.yml for YAML. Problems
// with individual entries are reported to w and the entry skipped.
func Load(path string, w io.Writer) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var entities []types.Entity
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &entities); err != nil {
			return nil, fmt.Errorf("parsing registry %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entities); err != nil {
			return nil, fmt.Errorf("parsing registry %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("registry %s: unsupported extension %q", path, ext)
	}

	return New(entities, w), nil
}

// New validates entities and builds the lookup maps. Entries with an
// empty canonical name are skipped; short or empty aliases are dropped;
// a duplicate role claim keeps the first registrant and reports the
// rest. A nil w discards reports.
func New(entities []types.Entity, w io.Writer) *Registry {
	if w == nil {
		w = io.Discard
	}

	r := &Registry{
		byID:   make(map[string]types.Entity),
		byRole: make(map[string]string),
	}

	for _, e := range entities {
		e.CanonicalName = hebrew.Normalize(e.CanonicalName)
		if e.CanonicalName == "" {
			fmt.Fprintf(w, "skipped entry with empty name\n")
			continue
		}
		if e.ID == "" {
			e.ID = e.CanonicalName
		}
		if _, dup := r.byID[e.ID]; dup {
			fmt.Fprintf(w, "skipped duplicate entity %s\n", e.ID)
			continue
		}

		kept := e.Aliases[:0:0]
		for _, a := range e.Aliases {
			a = hebrew.Normalize(a)
			if utf8.RuneCountInString(a) < MinAliasRunes {
				if a != "" {
					fmt.Fprintf(w, "%s: dropped short alias %q\n", e.ID, a)
				}
				continue
			}
			kept = append(kept, a)
		}
		e.Aliases = kept

		e.Role = strings.TrimSpace(e.Role)
		if e.Role != "" {
			if holder, claimed := r.byRole[e.Role]; claimed {
				fmt.Fprintf(w, "%s: role %q already held by %s, claim ignored\n", e.ID, e.Role, holder)
				e.Role = ""
			} else {
				r.byRole[e.Role] = e.ID
			}
		}

		r.entities = append(r.entities, e)
		r.byID[e.ID] = e
	}

	return r
}

// Entities returns the validated entity list in load order. Callers
// must not mutate the returned slice.
func (r *Registry) Entities() []types.Entity {
	return r.entities
}

// ByID returns the entity with the given ID.
func (r *Registry) ByID(id string) (types.Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// HolderOf returns the entity currently holding the standardized role.
func (r *Registry) HolderOf(role string) (types.Entity, bool) {
	id, ok := r.byRole[role]
	if !ok {
		return types.Entity{}, false
	}
	return r.byID[id], true
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entities)
}
