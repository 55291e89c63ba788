package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dabron/scythe/internal/app"
	"github.com/dabron/scythe/internal/domain"
)

var factionColors = map[string]color.Attribute{
	"blue":    color.FgHiBlue,
	"red":     color.FgHiRed,
	"yellow":  color.FgHiYellow,
	"black":   color.FgHiBlack,
	"white":   color.FgHiWhite,
	"green":   color.FgHiGreen,
	"magenta": color.FgHiMagenta,
	"cyan":    color.FgHiCyan,
}

// Text prints one right-aligned line per pick and per player, the way the
// setup is read out at the table.
type Text struct {
	NoColor bool
}

func (r *Text) paint(c *color.Color) *color.Color {
	if r.NoColor {
		c.DisableColor()
	}
	return c
}

func (r *Text) faction(f domain.Faction) string {
	var attrs []color.Attribute
	if a, ok := factionColors[f.Color]; ok {
		attrs = append(attrs, a)
	}
	return r.paint(color.New(attrs...)).Sprint(f.Name)
}

func (r *Text) Render(w io.Writer, s app.Setup) error {
	matName := r.paint(color.RGB(0x99, 0x99, 0x99))
	weakLabel := r.paint(color.RGB(0x99, 0xff, 0x99))
	label := r.paint(color.RGB(0x33, 0xcc, 0x33))

	lines := []string{"", fmt.Sprintf("%15s: %s", "Structure Bonus", s.StructureBonus)}
	if s.Features.WindGambit {
		lines = append(lines,
			fmt.Sprintf("%15s: %s", "Resolution", s.ResolutionTile),
			fmt.Sprintf("%15s: %s - %s", "Airship", s.AggressiveAirship, s.PassiveAirship),
		)
	}
	lines = append(lines, "")

	for _, p := range s.Players {
		base := ""
		if p.Base != nil {
			base = fmt.Sprintf(" [%s]", r.faction(*p.Base))
		}
		l := label
		if s.Weakest(p) {
			l = weakLabel
		}
		lines = append(lines, fmt.Sprintf("%15s: %s%s - %s [%s]",
			fmt.Sprintf("Player %d", p.ID),
			r.faction(p.Faction),
			base,
			matName.Sprint(p.Mat.Name),
			l.Sprint(p.Mat.Label),
		))
	}
	lines = append(lines, "")

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
