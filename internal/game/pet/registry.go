package pet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSpecies is returned when a species id is not present in the
// registry. Lookups must fail hard rather than default, since a defaulted
// species would silently corrupt every downstream score.
var ErrUnknownSpecies = errors.New("unknown pet species")

// Registry holds all known pet species keyed by id.
type Registry struct {
	pets map[string]*Pet
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{pets: make(map[string]*Pet)}
}

// Register adds a species to the registry.
//
// Precondition: p must be non-nil with a non-empty ID.
// Postcondition: p is retrievable via Get using p.ID; if called multiple
// times with the same ID, the last call wins.
func (r *Registry) Register(p *Pet) {
	if p == nil {
		panic("pet.Registry.Register: precondition violated: pet must be non-nil")
	}
	if p.ID == "" {
		panic("pet.Registry.Register: precondition violated: pet ID must be non-empty")
	}
	r.pets[p.ID] = p
}

// Get returns the species for id.
//
// Postcondition: Returns the registered Pet, or ErrUnknownSpecies if id is
// not registered.
func (r *Registry) Get(id string) (*Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, id)
	}
	return p, nil
}

// All returns every registered species sorted by id.
func (r *Registry) All() []*Pet {
	out := make([]*Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered species.
func (r *Registry) Len() int { return len(r.pets) }

// DefaultRegistry returns a Registry populated with the four canonical
// species. Each carries 14 in its main stat, 6 in the other growth stats,
// and the fixed 3 aggressiveness.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Pet{
		ID: "wolf", Name: "Wolf", MainStat: StatHP,
		BaseStats: StatSet{Endurance: 6, Loyalty: 6, Speed: 6, Aggressiveness: 3, HP: 14},
	})
	r.Register(&Pet{
		ID: "dog", Name: "Doberman", MainStat: StatLoyalty,
		BaseStats: StatSet{Endurance: 6, Loyalty: 14, Speed: 6, Aggressiveness: 3, HP: 6},
	})
	r.Register(&Pet{
		ID: "shepherd", Name: "Shepherd Dog", MainStat: StatEndurance,
		BaseStats: StatSet{Endurance: 14, Loyalty: 6, Speed: 6, Aggressiveness: 3, HP: 6},
	})
	r.Register(&Pet{
		ID: "hound", Name: "Beagle", MainStat: StatSpeed,
		BaseStats: StatSet{Endurance: 6, Loyalty: 6, Speed: 14, Aggressiveness: 3, HP: 6},
	})
	return r
}

// LoadRegistry reads every *.yaml file in dir, parses each as a Pet, and
// returns a populated Registry. Lets an embedding application override the
// built-in species tables.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails
// to parse or defines an incomplete species.
func LoadRegistry(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pet dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var p Pet
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing pet file %s: %w", path, err)
		}
		if p.ID == "" || p.MainStat == "" {
			return nil, fmt.Errorf("pet file %s: id and main_stat must be set", path)
		}
		reg.Register(&p)
	}
	return reg, nil
}
