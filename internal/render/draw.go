// Package render turns a game snapshot into a character frame.
//
// Layout: one HUD row, then a box around the field. Each field unit is two
// columns wide and each row covers half a unit, so a w x h field needs
// 2w+2 columns and 2h+3 rows.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

const (
	hudRow   = 0
	boxTop   = 1
	fieldTop = boxTop + 1
	fieldCol = 1
)

// Size returns the frame size for a width x height field.
func Size(width, height int) (int, int) {
	return 2*width + 2, 2*height + 3
}

// Cell returns the screen column and row of a field position. Y grows
// upwards on the field and downwards on screen.
func Cell(p core.Position, height int) (int, int) {
	col := fieldCol + int(p.X*2)
	row := fieldTop + int((float64(height)-0.5-p.Y)*2)
	return col, row
}

// Draw renders snap into screen, replacing its previous content.
func Draw(screen *core.Screen, snap game.Snapshot) {
	screen.Clear()
	w, h := Size(snap.Width, snap.Height)
	screen.DrawBox(core.NewRect(0, boxTop, w, h-boxTop), core.ColorGray)

	switch snap.Mode {
	case game.ModeMenu:
		drawMenu(screen, snap)
	case game.ModePlaying:
		drawHUD(screen, snap)
		drawField(screen, snap, false)
	case game.ModeLost:
		drawHUD(screen, snap)
		drawField(screen, snap, true)
		drawLost(screen, snap)
	}
}

func drawHUD(screen *core.Screen, snap game.Snapshot) {
	screen.DrawTextColored(1, hudRow, fmt.Sprintf("SCORE %d", snap.Score), core.ColorBrightYellow)
	screen.DrawTextCentered(hudRow, core.FormatDuration(snap.Elapsed), core.ColorDefault)

	status := fmt.Sprintf("LEVEL %d", snap.Level)
	color := core.ColorCyan
	if snap.BoostRemaining > 0 {
		status = fmt.Sprintf("BOOST %d", snap.BoostRemaining)
		color = core.ColorYellow
	}
	screen.DrawTextColored(screen.Width()-1-len(status), hudRow, status, color)
}

func drawField(screen *core.Screen, snap game.Snapshot, dead bool) {
	for _, it := range snap.Items {
		g := glyphs[it.Kind]
		plot(screen, snap, it.Pos, g.runes, g.color)
	}

	body, head := core.ColorGreen, core.ColorBrightGreen
	if dead {
		body, head = core.ColorGray, core.ColorRed
	}
	// Tail first so the head stays on top where segments overlap.
	for i := len(snap.Snake) - 1; i > 0; i-- {
		plot(screen, snap, snap.Snake[i], [2]rune{'█', '█'}, body)
	}
	if len(snap.Snake) > 0 {
		plot(screen, snap, snap.Snake[0], headRunes[snap.Heading], head)
	}
}

// plot draws one field unit. Positions outside the field are skipped so a
// head that left the field does not overwrite the border.
func plot(screen *core.Screen, snap game.Snapshot, p core.Position, runes [2]rune, c core.Color) {
	if !p.In(snap.Width, snap.Height) {
		return
	}
	col, row := Cell(p, snap.Height)
	screen.SetColored(col, row, runes[0], c)
	screen.SetColored(col+1, row, runes[1], c)
}

func drawMenu(screen *core.Screen, snap game.Snapshot) {
	screen.DrawTextCentered(hudRow, "S N A K E", core.ColorBrightGreen)

	row := fieldTop + 1
	for _, item := range game.MenuItems() {
		label := "  " + item.String() + "  "
		color := core.ColorDefault
		if item == snap.Cursor {
			color = core.ColorBrightYellow
			if snap.Blink {
				label = "▶ " + item.String() + " ◀"
			}
		}
		screen.DrawTextCentered(row, label, color)
		row += 2
	}

	row++
	if len(snap.Scores) == 0 {
		screen.DrawTextCentered(row, "no scores yet", core.ColorGray)
	} else {
		screen.DrawTextCentered(row, "HIGH SCORES", core.ColorCyan)
		for i, e := range snap.Scores {
			screen.DrawTextCentered(row+1+i, scoreLine(i+1, e), core.ColorDefault)
		}
	}

	screen.DrawTextCentered(screen.Height()-2, "↑/↓ move · enter select · esc quit", core.ColorGray)
}

func scoreLine(rank int, e core.ScoreEntry) string {
	name := e.PlayerName
	if len([]rune(name)) > 12 {
		name = string([]rune(name)[:12])
	}
	return fmt.Sprintf("%d. %-12s %5d", rank, name, e.Score)
}

func drawLost(screen *core.Screen, snap game.Snapshot) {
	mid := screen.Height() / 2
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d  ·  time %s", snap.LastScore, core.FormatDuration(snap.Elapsed)),
		"enter: menu  ·  esc: quit",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	pad := strings.Repeat(" ", min(width+4, screen.Width()-2))
	for i := -1; i <= len(lines); i++ {
		screen.DrawTextCentered(mid-2+i, pad, core.ColorDefault)
	}
	screen.DrawTextCentered(mid-2, lines[0], core.ColorRed)
	screen.DrawTextCentered(mid, lines[1], core.ColorBrightYellow)
	screen.DrawTextCentered(mid+1, lines[2], core.ColorGray)
}
