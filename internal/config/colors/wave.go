package colors

// Wave returns the Kanagawa Wave color scheme (the default dark Kanagawa look)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Text colors
		Header: palette.crystalBlue,
		Subtle: palette.fujiGray,

		Completed: palette.fujiGray,

		// Marks
		Success: palette.springGreen,
		Failure: palette.waveRed,
	}
}
