package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/dabron/scythe/internal/domain"
	"github.com/dabron/scythe/internal/ports"
)

// SetupRequest is the application-level input (no CLI or HTTP types).
type SetupRequest struct {
	Players  int
	Features domain.Features
}

// Setup is a finished game setup, ready for rendering.
type Setup struct {
	Features          domain.Features
	StructureBonus    string
	ResolutionTile    string
	AggressiveAirship string
	PassiveAirship    string
	Players           []domain.Player
	Repairs           []domain.Repair
	WeakestValue      float64
}

// Weakest reports whether p holds the lowest-valued mat at the table.
func (s Setup) Weakest(p domain.Player) bool {
	return p.Mat.Value == s.WeakestValue
}

// SetupService builds random setups from the catalog.
type SetupService struct {
	catalog  ports.CatalogStore
	recorder ports.Recorder
	logger   *slog.Logger
}

func NewSetupService(cs ports.CatalogStore, rec ports.Recorder, logger *slog.Logger) *SetupService {
	return &SetupService{
		catalog:  cs,
		recorder: rec,
		logger:   logger,
	}
}

// Generate validates req and draws a setup using rng for every random choice.
// An invalid player count is reported before rng is touched.
func (s *SetupService) Generate(ctx context.Context, req SetupRequest, rng domain.RNG) (Setup, error) {
	if err := domain.ValidatePlayerCount(req.Players, req.Features); err != nil {
		s.recorder.SetupRejected("invalid_player_count")
		return Setup{}, err
	}

	cat, err := s.catalog.Catalog(ctx, req.Features)
	if err != nil {
		return Setup{}, fmt.Errorf("load catalog: %w", err)
	}

	setup := Setup{
		Features:       req.Features,
		StructureBonus: domain.PickOne(rng, cat.StructureBonuses),
	}
	if req.Features.WindGambit {
		setup.ResolutionTile = domain.PickOne(rng, cat.ResolutionTiles)
		setup.AggressiveAirship = domain.PickOne(rng, cat.AggressiveAirships)
		setup.PassiveAirship = domain.PickOne(rng, cat.PassiveAirships)
	}

	domain.Shuffle(rng, cat.Factions)
	domain.Shuffle(rng, cat.Mats)

	in := domain.AssignInput{
		PlayerCount: req.Players,
		Factions:    cat.Factions,
		Mats:        cat.Mats,
		Rules:       cat.Rules,
	}
	if !req.Features.InvadersFromAfar {
		in.Invaders = cat.Invaders
	}

	a, err := domain.Assign(in, rng)
	if err != nil {
		return Setup{}, fmt.Errorf("assign players: %w", err)
	}

	setup.Players = a.Players
	setup.Repairs = a.Repairs
	setup.WeakestValue = weakestValue(a.Players)

	for _, r := range a.Repairs {
		s.recorder.RepairApplied(r.Kind)
		s.logger.DebugContext(ctx, "banned pair repaired",
			"player", r.PlayerID,
			"kind", r.Kind,
			"faction", r.Faction,
			"rejected", r.Rejected,
			"received", r.Received,
			"swapped_with", r.SwappedWith,
		)
	}
	s.recorder.SetupGenerated(req.Features, req.Players)
	s.logger.DebugContext(ctx, "setup generated",
		"players", req.Players,
		"structure_bonus", setup.StructureBonus,
		"repairs", len(a.Repairs),
	)

	return setup, nil
}

func weakestValue(players []domain.Player) float64 {
	lowest := math.Inf(1)
	for _, p := range players {
		lowest = math.Min(lowest, p.Mat.Value)
	}
	return lowest
}
