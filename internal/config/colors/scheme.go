package colors

// ColorScheme defines all configurable color values. Values are lipgloss
// colors: ANSI indices ("8") or hex strings ("#585858").
type ColorScheme struct {
	// Preset name: default, monochrome, dragon, wave or lotus
	Preset string `yaml:"preset"`

	// Text colors
	Header string `yaml:"header"` // List header
	Subtle string `yaml:"subtle"` // Rules and footers

	// Completed todos are rendered dimmed with this color
	Completed string `yaml:"completed"`

	// Status marks
	Success string `yaml:"success"` // ✓ lines
	Failure string `yaml:"failure"` // ✗ lines
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "wave":
		return Wave()
	case "lotus":
		return Lotus()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Header == "" {
		c.Header = preset.Header
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Completed == "" {
		c.Completed = preset.Completed
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Failure == "" {
		c.Failure = preset.Failure
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Header != "" {
		c.Header = other.Header
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Completed != "" {
		c.Completed = other.Completed
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Failure != "" {
		c.Failure = other.Failure
	}
}
