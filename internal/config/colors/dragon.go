package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Text colors
		Header: palette.dragonBlue2,
		Subtle: palette.dragonAsh,

		Completed: palette.dragonAsh,

		// Marks
		Success: palette.dragonGreen2,
		Failure: palette.dragonRed,
	}
}
