package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Theme maps game elements to display glyphs. Themes are the terminal
// analog of sprite assets: they are loaded outside the simulation, and a
// load failure degrades to placeholder glyphs without touching game state.
type Theme struct {
	Player         string `yaml:"player"`
	PlayerHurt     string `yaml:"player_hurt"`
	Platform       string `yaml:"platform"`
	MovingPlatform string `yaml:"moving_platform"`
	Hazard         string `yaml:"hazard"`
	Gem            string `yaml:"gem"`
	Checkpoint     string `yaml:"checkpoint"`
	CheckpointLit  string `yaml:"checkpoint_lit"`
	Exit           string `yaml:"exit"`
	Ground         string `yaml:"ground"`
}

// PlaceholderTheme returns plain ASCII glyphs used when theme loading fails.
func PlaceholderTheme() Theme {
	return Theme{
		Player:         "@",
		PlayerHurt:     "!",
		Platform:       "=",
		MovingPlatform: "-",
		Hazard:         "^",
		Gem:            "*",
		Checkpoint:     "F",
		CheckpointLit:  "P",
		Exit:           "D",
		Ground:         "#",
	}
}

// DefaultTheme returns the built-in unicode theme.
func DefaultTheme() Theme {
	var t Theme
	if err := yaml.Unmarshal(defaultThemeYAML, &t); err != nil {
		return PlaceholderTheme()
	}
	return t.withFallback()
}

// LoadTheme loads a glyph theme.
// Search order: customPath -> ~/.platformer/configs/theme.yaml -> embedded.
// Loading never fails hard: on any error the placeholder theme is returned
// along with the error so the caller can log it.
func LoadTheme(customPath string) (Theme, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlaceholderTheme(), err
		}
		var t Theme
		if err := yaml.Unmarshal(data, &t); err != nil {
			return PlaceholderTheme(), err
		}
		return t.withFallback(), nil
	}

	if userPath := userConfigPath("theme.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			var t Theme
			if err := yaml.Unmarshal(data, &t); err == nil {
				return t.withFallback(), nil
			}
		}
	}

	return DefaultTheme(), nil
}

// withFallback fills any missing glyph from the placeholder theme, so a
// partially specified theme file still renders every entity.
func (t Theme) withFallback() Theme {
	p := PlaceholderTheme()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Theme{
		Player:         pick(t.Player, p.Player),
		PlayerHurt:     pick(t.PlayerHurt, p.PlayerHurt),
		Platform:       pick(t.Platform, p.Platform),
		MovingPlatform: pick(t.MovingPlatform, p.MovingPlatform),
		Hazard:         pick(t.Hazard, p.Hazard),
		Gem:            pick(t.Gem, p.Gem),
		Checkpoint:     pick(t.Checkpoint, p.Checkpoint),
		CheckpointLit:  pick(t.CheckpointLit, p.CheckpointLit),
		Exit:           pick(t.Exit, p.Exit),
		Ground:         pick(t.Ground, p.Ground),
	}
}

// Rune returns the first rune of a glyph string, or the fallback if empty.
func Rune(glyph string, fallback rune) rune {
	for _, r := range glyph {
		return r
	}
	return fallback
}
