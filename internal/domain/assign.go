package domain

import "fmt"

// AssignInput is the state consumed by Assign. Factions and Mats must already
// be shuffled; they are drained front to back and never modified in place.
type AssignInput struct {
	PlayerCount int
	Factions    []Faction
	Mats        []PlayerMat
	Rules       Rules

	// Invaders are added to the leftover factions before a base draw. Leave
	// nil when they are already part of Factions.
	Invaders []Faction
}

// Assign seats PlayerCount players in id order, resolving every banned draw.
//
// A banned draw is repaired from the mat pool while it holds a mat allowed
// for the faction: that mat is taken, the rejected one goes back into the
// pool and the pool is reshuffled. Once the pool is exhausted the rejected
// mat is swapped with a uniformly chosen seated player, re-checking the swap
// against the rules.
func Assign(in AssignInput, rng RNG) (Assignment, error) {
	n := in.PlayerCount
	if n < MinPlayers {
		return Assignment{}, fmt.Errorf("%w: %d players", ErrInvalidPlayerCount, n)
	}
	if n > len(in.Factions) || n > len(in.Mats) {
		return Assignment{}, fmt.Errorf("%w: %d players for %d factions and %d mats",
			ErrInvalidPlayerCount, n, len(in.Factions), len(in.Mats))
	}

	factions := append([]Faction(nil), in.Factions...)
	mats := append([]PlayerMat(nil), in.Mats...)

	players := make([]Player, 0, n)
	var repairs []Repair

	for i := range n {
		p := Player{ID: i + 1, Faction: factions[0], Mat: mats[0]}
		factions = factions[1:]
		mats = mats[1:]

		if in.Rules.Banned(p.Faction, p.Mat) {
			var (
				r   Repair
				err error
			)
			if k := firstAllowed(in.Rules, p.Faction, mats); k >= 0 {
				r, mats = repairFromPool(&p, mats, k, rng)
			} else {
				r, err = repairBySwap(&p, players, in.Rules, rng)
				if err != nil {
					return Assignment{}, err
				}
			}
			repairs = append(repairs, r)
		}

		players = append(players, p)
	}

	if err := drawBases(players, factions, in.Invaders, rng); err != nil {
		return Assignment{}, err
	}

	return Assignment{Players: players, Repairs: repairs}, nil
}

func firstAllowed(rules Rules, f Faction, mats []PlayerMat) int {
	for k, m := range mats {
		if !rules.Banned(f, m) {
			return k
		}
	}
	return -1
}

// repairFromPool hands p the pool mat at k and recycles the rejected mat.
// The reshuffle keeps the rejected mat from landing on a fixed later seat.
func repairFromPool(p *Player, pool []PlayerMat, k int, rng RNG) (Repair, []PlayerMat) {
	rejected := p.Mat
	p.Mat = pool[k]
	pool = append(pool[:k], pool[k+1:]...)
	pool = append(pool, rejected)
	Shuffle(rng, pool)

	return Repair{
		PlayerID: p.ID,
		Kind:     RepairPool,
		Faction:  p.Faction.Name,
		Rejected: rejected.Name,
		Received: p.Mat.Name,
	}, pool
}

// repairBySwap exchanges p's rejected mat with a seated player. The first
// candidate is a single uniform pick; only if that swap would break a rule
// are the remaining seats tried in random order.
func repairBySwap(p *Player, seated []Player, rules Rules, rng RNG) (Repair, error) {
	first := PickIndex(rng, len(seated))
	j := -1
	if swapAllowed(rules, *p, seated[first]) {
		j = first
	} else {
		rest := make([]int, 0, len(seated)-1)
		for k := range seated {
			if k != first {
				rest = append(rest, k)
			}
		}
		Shuffle(rng, rest)
		for _, k := range rest {
			if swapAllowed(rules, *p, seated[k]) {
				j = k
				break
			}
		}
	}
	if j < 0 {
		return Repair{}, fmt.Errorf("%w: player %d holds %s/%s", ErrUnresolvable, p.ID, p.Faction.Name, p.Mat.Name)
	}

	rejected := p.Mat
	p.Mat, seated[j].Mat = seated[j].Mat, rejected

	return Repair{
		PlayerID:    p.ID,
		Kind:        RepairSwap,
		Faction:     p.Faction.Name,
		Rejected:    rejected.Name,
		Received:    p.Mat.Name,
		SwappedWith: seated[j].ID,
	}, nil
}

func swapAllowed(rules Rules, p, other Player) bool {
	return !rules.Banned(p.Faction, other.Mat) && !rules.Banned(other.Faction, p.Mat)
}

// drawBases gives every base-taking faction a second identity from the
// leftover factions, topped up with the invaders when they were not in play.
func drawBases(players []Player, leftover, invaders []Faction, rng RNG) error {
	added := false
	for i := range players {
		if !players[i].Faction.TakesBase {
			continue
		}
		if invaders != nil && !added {
			leftover = append(leftover, invaders...)
			Shuffle(rng, leftover)
			added = true
		}
		if len(leftover) == 0 {
			return fmt.Errorf("%w: no faction left as base for player %d", ErrUnresolvable, players[i].ID)
		}
		base := leftover[0]
		leftover = leftover[1:]
		players[i].Base = &base
	}
	return nil
}
