package colors

// Lotus returns the Kanagawa Lotus color scheme, for light terminals
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Text colors
		Header: palette.lotusBlue4,
		Subtle: palette.lotusGray3,

		Completed: palette.lotusGray3,

		// Marks
		Success: palette.lotusGreen,
		Failure: palette.lotusRed,
	}
}
