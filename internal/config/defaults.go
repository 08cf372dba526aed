package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/snake.yaml and is the last resort when that fails to parse.
func Default() Config {
	return Config{
		Game: GameConfig{
			FieldWidth:      38,
			FieldHeight:     10,
			TickInterval:    50 * time.Millisecond,
			SubTicks:        3,
			InitialLength:   5,
			BlinkEvery:      3,
			BoostLevel:      1,
			BoostMinTicks:   10,
			BoostMaxTicks:   50,
			SpecialMinTicks: 100,
			SpecialMaxTicks: 300,
		},
		Loop: LoopConfig{
			IdleWait: 10 * time.Millisecond,
		},
		Scores: ScoresConfig{
			Backend: BackendJSON,
			Player:  "player",
			MenuTop: 5,
		},
		Input: InputConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Confirm: []string{"enter", " "},
			Exit:    []string{"esc", "q", "ctrl+c"},
		},
		UI: UIConfig{
			Driver: DriverTea,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
