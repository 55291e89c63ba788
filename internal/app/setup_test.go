package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabron/scythe/internal/adapters/catalog"
	"github.com/dabron/scythe/internal/adapters/random"
	"github.com/dabron/scythe/internal/app"
	"github.com/dabron/scythe/internal/domain"
)

type mockCatalogStore struct {
	cat domain.Catalog
	err error
}

func (m *mockCatalogStore) Catalog(_ context.Context, _ domain.Features) (domain.Catalog, error) {
	return m.cat, m.err
}

type fakeRecorder struct {
	generated int
	rejected  []string
	repairs   map[domain.RepairKind]int
}

func (r *fakeRecorder) SetupGenerated(_ domain.Features, _ int) { r.generated++ }

func (r *fakeRecorder) SetupRejected(reason string) { r.rejected = append(r.rejected, reason) }

func (r *fakeRecorder) RepairApplied(kind domain.RepairKind) {
	if r.repairs == nil {
		r.repairs = map[domain.RepairKind]int{}
	}
	r.repairs[kind]++
}

// untouchedRNG fails the test if any random number is requested.
type untouchedRNG struct{ t *testing.T }

func (r untouchedRNG) Intn(int) int {
	r.t.Fatal("rng used")
	return 0
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(rec *fakeRecorder) *app.SetupService {
	return app.NewSetupService(catalog.NewEmbeddedStore(), rec, discardLogger())
}

func featuresFor(bits uint64) domain.Features {
	return domain.Features{
		InvadersFromAfar: bits&1 != 0,
		WindGambit:       bits&2 != 0,
		RiseOfFenris:     bits&4 != 0,
		ModularBoard:     bits&8 != 0,
	}
}

func TestGenerate_InvalidPlayerCount(t *testing.T) {
	tests := []struct {
		players  int
		features domain.Features
	}{
		{players: 0},
		{players: -3},
		{players: 6},
		{players: 6, features: domain.Features{RiseOfFenris: true}},
		{players: 8, features: domain.Features{InvadersFromAfar: true}},
	}

	for _, tt := range tests {
		rec := &fakeRecorder{}
		_, err := newService(rec).Generate(context.Background(),
			app.SetupRequest{Players: tt.players, Features: tt.features}, untouchedRNG{t})

		require.ErrorIs(t, err, domain.ErrInvalidPlayerCount, "players=%d", tt.players)
		assert.Equal(t, []string{"invalid_player_count"}, rec.rejected)
		assert.Zero(t, rec.generated)
	}
}

func TestGenerate_ErrorMessageNamesRange(t *testing.T) {
	_, err := newService(&fakeRecorder{}).Generate(context.Background(),
		app.SetupRequest{Players: 9, Features: domain.Features{InvadersFromAfar: true}}, untouchedRNG{t})

	require.EqualError(t, err, "invalid player count: player count must be from 1 to 7")
}

func TestGenerate_CatalogFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := app.NewSetupService(&mockCatalogStore{err: boom}, &fakeRecorder{}, discardLogger())

	_, err := svc.Generate(context.Background(), app.SetupRequest{Players: 3}, random.NewSeeded(1))

	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "load catalog")
}

func TestGenerate_WindGambit(t *testing.T) {
	svc := newService(&fakeRecorder{})

	plain, err := svc.Generate(context.Background(), app.SetupRequest{Players: 5}, random.NewSeeded(1))
	require.NoError(t, err)
	assert.NotEmpty(t, plain.StructureBonus)
	assert.Empty(t, plain.ResolutionTile)
	assert.Empty(t, plain.AggressiveAirship)
	assert.Empty(t, plain.PassiveAirship)

	gambit, err := svc.Generate(context.Background(),
		app.SetupRequest{Players: 5, Features: domain.Features{WindGambit: true}}, random.NewSeeded(1))
	require.NoError(t, err)
	assert.NotEmpty(t, gambit.ResolutionTile)
	assert.Contains(t, gambit.AggressiveAirship, "[")
	assert.Contains(t, gambit.PassiveAirship, "[")
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := newService(&fakeRecorder{})
	req := app.SetupRequest{Players: 7, Features: featuresFor(15)}

	a, err := svc.Generate(context.Background(), req, random.NewSeeded(2024))
	require.NoError(t, err)
	b, err := svc.Generate(context.Background(), req, random.NewSeeded(2024))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestGenerate_Weakest(t *testing.T) {
	svc := newService(&fakeRecorder{})

	for seed := range uint64(50) {
		s, err := svc.Generate(context.Background(), app.SetupRequest{Players: 4}, random.NewSeeded(seed))
		require.NoError(t, err)

		flagged := 0
		for _, p := range s.Players {
			require.GreaterOrEqual(t, p.Mat.Value, s.WeakestValue)
			if s.Weakest(p) {
				flagged++
			}
		}
		require.Equal(t, 1, flagged, "seed %d", seed)
	}
}

func TestGenerate_RecordsRepairs(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newService(rec)

	total := 0
	for seed := range uint64(200) {
		s, err := svc.Generate(context.Background(), app.SetupRequest{Players: 5}, random.NewSeeded(seed))
		require.NoError(t, err)
		total += len(s.Repairs)
	}

	assert.Equal(t, 200, rec.generated)
	assert.Positive(t, total)
	assert.Equal(t, total, rec.repairs[domain.RepairPool]+rec.repairs[domain.RepairSwap])
}

func TestGenerate_Properties(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewEmbeddedStore()
	svc := app.NewSetupService(store, &fakeRecorder{}, discardLogger())

	for seed := range uint64(10000) {
		f := featuresFor(seed % 16)
		n := 1 + int(seed/16)%domain.MaxPlayers(f)

		s, err := svc.Generate(ctx, app.SetupRequest{Players: n, Features: f}, random.NewSeeded(seed))
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, s.Players, n)

		cat, err := store.Catalog(ctx, f)
		require.NoError(t, err)
		offeredFactions := map[string]bool{}
		for _, fa := range cat.Factions {
			offeredFactions[fa.Name] = true
		}
		offeredMats := map[string]bool{}
		for _, m := range cat.Mats {
			offeredMats[m.Name] = true
		}

		seatedFactions := map[string]bool{}
		seatedMats := map[string]bool{}
		for i, p := range s.Players {
			require.Equal(t, i+1, p.ID)
			require.True(t, offeredFactions[p.Faction.Name], "unknown faction %s", p.Faction.Name)
			require.True(t, offeredMats[p.Mat.Name], "unknown mat %s", p.Mat.Name)
			require.False(t, seatedFactions[p.Faction.Name], "seed %d: faction %s twice", seed, p.Faction.Name)
			require.False(t, seatedMats[p.Mat.Name], "seed %d: mat %s twice", seed, p.Mat.Name)
			require.False(t, cat.Rules.Banned(p.Faction, p.Mat), "seed %d: banned %s/%s", seed, p.Faction.Name, p.Mat.Name)
			seatedFactions[p.Faction.Name] = true
			seatedMats[p.Mat.Name] = true
		}
		if n == len(cat.Mats) {
			require.Len(t, seatedMats, len(offeredMats))
		}

		for _, p := range s.Players {
			if !p.Faction.TakesBase {
				require.Nil(t, p.Base)
				continue
			}
			require.NotNil(t, p.Base, "seed %d", seed)
			require.False(t, seatedFactions[p.Base.Name], "seed %d: base %s is seated", seed, p.Base.Name)
			if !f.InvadersFromAfar {
				require.Contains(t, []string{"Nordic", "Rusviet", "Crimea", "Saxony", "Polania", "Albion", "Togawa"}, p.Base.Name)
			}
		}
	}
}
