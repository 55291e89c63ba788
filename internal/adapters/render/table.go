package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dabron/scythe/internal/app"
)

// Table prints the picks and the seating as go-pretty tables.
type Table struct {
	NoColor bool
}

func (r *Table) Render(w io.Writer, s app.Setup) error {
	picks := table.NewWriter()
	picks.SetOutputMirror(w)
	picks.SetStyle(table.StyleLight)
	picks.AppendRow(table.Row{"Structure Bonus", s.StructureBonus})
	if s.Features.WindGambit {
		picks.AppendRow(table.Row{"Resolution", s.ResolutionTile})
		picks.AppendRow(table.Row{"Airship", fmt.Sprintf("%s - %s", s.AggressiveAirship, s.PassiveAirship)})
	}
	picks.Render()

	weak := text.Colors{text.FgHiGreen, text.Bold}
	seats := table.NewWriter()
	seats.SetOutputMirror(w)
	seats.SetStyle(table.StyleLight)
	seats.AppendHeader(table.Row{"Player", "Faction", "Base", "Mat", "#"})
	for _, p := range s.Players {
		base := ""
		if p.Base != nil {
			base = p.Base.Name
		}
		label := p.Mat.Label
		if s.Weakest(p) {
			if r.NoColor {
				label += " *"
			} else {
				label = weak.Sprint(label)
			}
		}
		seats.AppendRow(table.Row{p.ID, p.Faction.Name, base, p.Mat.Name, label})
	}
	seats.Render()

	return nil
}
