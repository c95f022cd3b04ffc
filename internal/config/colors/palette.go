package colors

// palette holds the Kanagawa colors used by the dragon, wave and lotus presets
var palette = struct {
	// Dragon (dark, muted)
	dragonAsh    string
	dragonGreen2 string
	dragonRed    string
	dragonBlue2  string

	// Wave (dark, default Kanagawa)
	fujiGray    string
	springGreen string
	waveRed     string
	crystalBlue string

	// Lotus (light)
	lotusGray3 string
	lotusGreen string
	lotusRed   string
	lotusBlue4 string
}{
	dragonAsh:    "#737c73",
	dragonGreen2: "#8a9a7b",
	dragonRed:    "#c4746e",
	dragonBlue2:  "#8ba4b0",

	fujiGray:    "#727169",
	springGreen: "#98BB6C",
	waveRed:     "#E46876",
	crystalBlue: "#7E9CD8",

	lotusGray3: "#8a8980",
	lotusGreen: "#6f894e",
	lotusRed:   "#c84053",
	lotusBlue4: "#4d699b",
}
