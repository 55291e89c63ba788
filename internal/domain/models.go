package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Faction is a playable side. Color is a display tag only.
type Faction struct {
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	TakesBase bool   `json:"takes_base,omitempty" yaml:"takes_base"`
}

// PlayerMat is an asymmetric player board. Lower Value means a weaker mat.
type PlayerMat struct {
	Name  string  `json:"name" yaml:"name"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Player is a seated player. Base is set only for factions that take a
// secondary base identity.
type Player struct {
	ID      int       `json:"id"`
	Faction Faction   `json:"faction"`
	Mat     PlayerMat `json:"mat"`
	Base    *Faction  `json:"base,omitempty"`
}

// BannedPair is a faction/mat combination no player may hold.
type BannedPair struct {
	Faction string `json:"faction" yaml:"faction"`
	Mat     string `json:"mat" yaml:"mat"`
}

// Rules is the set of banned pairs.
type Rules []BannedPair

// Banned reports whether f and m may not be held by the same player.
func (r Rules) Banned(f Faction, m PlayerMat) bool {
	for _, p := range r {
		if p.Faction == f.Name && p.Mat == m.Name {
			return true
		}
	}
	return false
}

// Features are the expansion toggles for a run.
type Features struct {
	InvadersFromAfar bool `json:"invaders_from_afar"`
	WindGambit       bool `json:"wind_gambit"`
	RiseOfFenris     bool `json:"rise_of_fenris"`
	ModularBoard     bool `json:"modular_board"`
}

// Catalog is the static data for one feature configuration. Invaders always
// holds the invader factions, whether or not they are part of Factions.
type Catalog struct {
	Factions           []Faction
	Invaders           []Faction
	Mats               []PlayerMat
	Rules              Rules
	StructureBonuses   []string
	ResolutionTiles    []string
	AggressiveAirships []string
	PassiveAirships    []string
}

// RepairKind identifies how a banned draw was resolved.
type RepairKind string

const (
	RepairPool RepairKind = "pool"
	RepairSwap RepairKind = "swap"
)

// Repair records one resolved banned draw.
type Repair struct {
	PlayerID    int        `json:"player_id"`
	Kind        RepairKind `json:"kind"`
	Faction     string     `json:"faction"`
	Rejected    string     `json:"rejected"`
	Received    string     `json:"received"`
	SwappedWith int        `json:"swapped_with,omitempty"`
}

// Assignment is the finalized seating produced by Assign.
type Assignment struct {
	Players []Player
	Repairs []Repair
}
