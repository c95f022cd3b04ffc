package colors

// Default returns the default color scheme (16-color ANSI palette)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Text
		Header: "15",
		Subtle: "8",

		// Bright black, the classic "dimmed" terminal gray
		Completed: "8",

		// Marks
		Success: "2",
		Failure: "1",
	}
}
