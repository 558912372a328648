package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/slides/internal/model"
)

// Palette colors, replaced by InitializeSkin.
var (
	ColorAccent  lipgloss.Color
	ColorText    lipgloss.Color
	ColorMuted   lipgloss.Color
	ColorSuccess lipgloss.Color
	ColorWarning lipgloss.Color
	ColorError   lipgloss.Color
	ColorBar     lipgloss.Color
)

// SkinColors is the palette section of a skin file.
type SkinColors struct {
	Accent  string `yaml:"accent"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Bar     string `yaml:"bar"`
}

// Skin is a named palette loaded from {configDir}/skins/{name}.yml.
type Skin struct {
	Name   string     `yaml:"name"`
	Colors SkinColors `yaml:"colors"`
}

var defaultSkin = Skin{
	Name: model.DefaultSkin,
	Colors: SkinColors{
		Accent:  "39",
		Text:    "252",
		Muted:   "240",
		Success: "42",
		Warning: "214",
		Error:   "196",
		Bar:     "62",
	},
}

func init() {
	applySkin(defaultSkin)
}

// InitializeSkin loads and applies the named skin. Unknown keys in the file
// fall back to the default palette. On error the default skin stays active.
func InitializeSkin(name, configDir string) error {
	applySkin(defaultSkin)
	if name == "" || name == model.DefaultSkin {
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("skin: %w", err)
	}
	skin, err := parseSkin(data)
	if err != nil {
		return fmt.Errorf("skin %s: %w", path, err)
	}
	applySkin(skin)
	return nil
}

func parseSkin(data []byte) (Skin, error) {
	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, err
	}
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Colors.Accent, defaultSkin.Colors.Accent)
	fill(&s.Colors.Text, defaultSkin.Colors.Text)
	fill(&s.Colors.Muted, defaultSkin.Colors.Muted)
	fill(&s.Colors.Success, defaultSkin.Colors.Success)
	fill(&s.Colors.Warning, defaultSkin.Colors.Warning)
	fill(&s.Colors.Error, defaultSkin.Colors.Error)
	fill(&s.Colors.Bar, defaultSkin.Colors.Bar)
	return s, nil
}

func applySkin(s Skin) {
	ColorAccent = lipgloss.Color(s.Colors.Accent)
	ColorText = lipgloss.Color(s.Colors.Text)
	ColorMuted = lipgloss.Color(s.Colors.Muted)
	ColorSuccess = lipgloss.Color(s.Colors.Success)
	ColorWarning = lipgloss.Color(s.Colors.Warning)
	ColorError = lipgloss.Color(s.Colors.Error)
	ColorBar = lipgloss.Color(s.Colors.Bar)
	rebuildStyles()
}
