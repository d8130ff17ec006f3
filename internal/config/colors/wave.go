package colors

// Kanagawa palette subset
const (
	sumiInk3     = "#1F1F28"
	sumiInk4     = "#2A2A37"
	sumiInk6     = "#54546D"
	waveBlue1    = "#223249"
	waveAqua2    = "#7AA89F"
	crystalBlue  = "#7E9CD8"
	oniViolet    = "#957FB8"
	springGreen  = "#98BB6C"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
	dragonBlue   = "#658594"
	winterBlue   = "#252535"
	roninYellow  = "#FF9E3B"
	winterYellow = "#49443C"
	samuraiRed   = "#E82424"
	winterRed    = "#43242B"
	carpYellow   = "#E6C384"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Edit: crystalBlue,

		ColumnBorder:   sumiInk6,
		DropTarget:     springGreen,
		TaskBorder:     sumiInk4,
		TaskBackground: sumiInk3,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,
		Dragging:       carpYellow,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   oniViolet,
		StatusBarText: fujiWhite,
	}
}
