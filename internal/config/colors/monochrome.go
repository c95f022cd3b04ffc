package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Text
		Header: "#FFFFFF",
		Subtle: "#585858",

		Completed: "#585858",

		// Marks
		Success: "#FFFFFF",
		Failure: "#FFFFFF",
	}
}
