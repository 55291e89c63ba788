package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dabron/scythe/internal/domain"
)

//go:embed data/scythe.yaml
var scytheTables []byte

// tables mirrors the YAML layout. Expansion content sits next to the base
// lists and is merged in by Catalog.
type tables struct {
	Factions struct {
		Base     []domain.Faction `yaml:"base"`
		Invaders []domain.Faction `yaml:"invaders"`
		Fenris   []domain.Faction `yaml:"fenris"`
	} `yaml:"factions"`
	Mats struct {
		Base     []domain.PlayerMat `yaml:"base"`
		Invaders []domain.PlayerMat `yaml:"invaders"`
	} `yaml:"mats"`
	Banned           domain.Rules `yaml:"banned"`
	StructureBonuses struct {
		Base         []string `yaml:"base"`
		ModularBoard []string `yaml:"modular_board"`
	} `yaml:"structure_bonuses"`
	WindGambit struct {
		Resolution         []string `yaml:"resolution"`
		AggressiveAirships []string `yaml:"aggressive_airships"`
		PassiveAirships    []string `yaml:"passive_airships"`
	} `yaml:"wind_gambit"`
}

// EmbeddedStore serves catalogs from YAML tables, parsed once on first use.
type EmbeddedStore struct {
	raw []byte

	once sync.Once
	t    tables
	err  error
}

// NewEmbeddedStore returns a store over the tables compiled into the binary.
func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{raw: scytheTables}
}

// NewStore returns a store over caller-provided YAML tables.
func NewStore(raw []byte) *EmbeddedStore {
	return &EmbeddedStore{raw: raw}
}

func (s *EmbeddedStore) init() {
	if err := yaml.Unmarshal(s.raw, &s.t); err != nil {
		s.err = fmt.Errorf("%w: parse tables: %w", domain.ErrInvalidCatalog, err)
		return
	}
	s.err = s.t.validate()
}

// Catalog returns fresh copies of the tables enabled by f.
func (s *EmbeddedStore) Catalog(_ context.Context, f domain.Features) (domain.Catalog, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Catalog{}, s.err
	}
	t := &s.t

	c := domain.Catalog{
		Factions:         clone(t.Factions.Base),
		Invaders:         clone(t.Factions.Invaders),
		Mats:             clone(t.Mats.Base),
		Rules:            clone(t.Banned),
		StructureBonuses: clone(t.StructureBonuses.Base),
	}

	if f.InvadersFromAfar {
		c.Factions = append(c.Factions, t.Factions.Invaders...)
		c.Mats = append(c.Mats, t.Mats.Invaders...)
	}
	if f.RiseOfFenris {
		c.Factions = append(c.Factions, t.Factions.Fenris...)
	}
	if f.ModularBoard {
		c.StructureBonuses = append(c.StructureBonuses, t.StructureBonuses.ModularBoard...)
	}
	if f.WindGambit {
		c.ResolutionTiles = clone(t.WindGambit.Resolution)
		c.AggressiveAirships = clone(t.WindGambit.AggressiveAirships)
		c.PassiveAirships = clone(t.WindGambit.PassiveAirships)
	}

	return c, nil
}

func (t *tables) validate() error {
	factions := map[string]bool{}
	for _, group := range [][]domain.Faction{t.Factions.Base, t.Factions.Invaders, t.Factions.Fenris} {
		for _, f := range group {
			if f.Name == "" || factions[f.Name] {
				return fmt.Errorf("%w: faction %q is empty or duplicated", domain.ErrInvalidCatalog, f.Name)
			}
			factions[f.Name] = true
		}
	}

	mats := map[string]bool{}
	for _, group := range [][]domain.PlayerMat{t.Mats.Base, t.Mats.Invaders} {
		for _, m := range group {
			if m.Name == "" || mats[m.Name] {
				return fmt.Errorf("%w: mat %q is empty or duplicated", domain.ErrInvalidCatalog, m.Name)
			}
			mats[m.Name] = true
		}
	}

	for _, p := range t.Banned {
		if !factions[p.Faction] || !mats[p.Mat] {
			return fmt.Errorf("%w: banned pair %s/%s names an unknown faction or mat", domain.ErrInvalidCatalog, p.Faction, p.Mat)
		}
	}

	if len(t.Factions.Base) < domain.BasePlayerLimit || len(t.Mats.Base) < domain.BasePlayerLimit {
		return fmt.Errorf("%w: need at least %d base factions and mats", domain.ErrInvalidCatalog, domain.BasePlayerLimit)
	}
	if len(t.StructureBonuses.Base) == 0 {
		return fmt.Errorf("%w: no structure bonuses", domain.ErrInvalidCatalog)
	}
	w := t.WindGambit
	if len(w.Resolution) == 0 || len(w.AggressiveAirships) == 0 || len(w.PassiveAirships) == 0 {
		return fmt.Errorf("%w: wind gambit tiles missing", domain.ErrInvalidCatalog)
	}

	return nil
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}
