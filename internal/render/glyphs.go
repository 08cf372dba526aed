package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

type glyph struct {
	runes [2]rune
	color core.Color
}

var glyphs = map[game.Kind]glyph{
	game.KindApple:      {[2]rune{'●', ' '}, core.ColorRed},
	game.KindSpeedBoost: {[2]rune{'»', '»'}, core.ColorYellow},
	game.KindReverse:    {[2]rune{'⇄', ' '}, core.ColorMagenta},
}

var headRunes = map[core.Heading][2]rune{
	core.HeadingUp:    {'▀', '▀'},
	core.HeadingDown:  {'▄', '▄'},
	core.HeadingLeft:  {'◀', '█'},
	core.HeadingRight: {'█', '▶'},
}
