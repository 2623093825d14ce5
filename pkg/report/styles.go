package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/slimcheck/slimcheck/pkg/errors"
)

// Styles holds the lipgloss styles applied to rendered findings. All colors
// are adaptive so they adjust to light and dark terminal themes.
type Styles struct {
	Location lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

// ForSeverity returns the style for a severity marker
func (s Styles) ForSeverity(sev Severity) lipgloss.Style {
	if sev == SeverityError {
		return s.Error
	}
	return s.Warning
}

// DefaultStyles returns the built-in report styles
func DefaultStyles() Styles {
	return Styles{
		Location: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"}),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "136", Dark: "220"}),
	}
}

// colorDef represents an adaptive color definition in YAML
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// stylesConfig represents the styles override file
type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
}

// LoadStyles reads a YAML styles file and returns the default styles with
// the file's color overrides applied. Recognized color names are
// "location", "error" and "warning".
func LoadStyles(path string) (Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Styles{}, errors.Wrapf(err, errors.ErrStyleLoad, "reading styles file %s", path)
	}

	var cfg stylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Styles{}, errors.Wrapf(err, errors.ErrStyleParse, "parsing styles file %s", path)
	}

	styles := DefaultStyles()
	if c, ok := cfg.Colors["location"]; ok {
		styles.Location = styles.Location.Foreground(adaptiveColor(c))
	}
	if c, ok := cfg.Colors["error"]; ok {
		styles.Error = styles.Error.Foreground(adaptiveColor(c))
	}
	if c, ok := cfg.Colors["warning"]; ok {
		styles.Warning = styles.Warning.Foreground(adaptiveColor(c))
	}
	return styles, nil
}

func adaptiveColor(c colorDef) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
}
