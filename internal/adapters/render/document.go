package render

import (
	"github.com/dabron/scythe/internal/app"
	"github.com/dabron/scythe/internal/domain"
)

// Document is the JSON shape of a setup, shared by the CLI and the HTTP API.
type Document struct {
	Features       domain.Features `json:"features"`
	StructureBonus string          `json:"structure_bonus"`
	Resolution     string          `json:"resolution,omitempty"`
	Airship        *AirshipDoc     `json:"airship,omitempty"`
	Players        []PlayerDoc     `json:"players"`
	Repairs        []domain.Repair `json:"repairs,omitempty"`
}

type AirshipDoc struct {
	Aggressive string `json:"aggressive"`
	Passive    string `json:"passive"`
}

type PlayerDoc struct {
	ID       int     `json:"id"`
	Faction  string  `json:"faction"`
	Base     string  `json:"base,omitempty"`
	Mat      string  `json:"mat"`
	MatLabel string  `json:"mat_label"`
	MatValue float64 `json:"mat_value"`
	Weakest  bool    `json:"weakest,omitempty"`
}

func NewDocument(s app.Setup) Document {
	d := Document{
		Features:       s.Features,
		StructureBonus: s.StructureBonus,
		Resolution:     s.ResolutionTile,
		Players:        make([]PlayerDoc, len(s.Players)),
		Repairs:        s.Repairs,
	}
	if s.Features.WindGambit {
		d.Airship = &AirshipDoc{Aggressive: s.AggressiveAirship, Passive: s.PassiveAirship}
	}
	for i, p := range s.Players {
		d.Players[i] = PlayerDoc{
			ID:       p.ID,
			Faction:  p.Faction.Name,
			Mat:      p.Mat.Name,
			MatLabel: p.Mat.Label,
			MatValue: p.Mat.Value,
			Weakest:  s.Weakest(p),
		}
		if p.Base != nil {
			d.Players[i].Base = p.Base.Name
		}
	}
	return d
}
