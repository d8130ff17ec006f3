package colors

// Monochrome returns a grayscale scheme for terminals with poor color support.
// Drop targets and dragged cards stay distinguishable by brightness alone.
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#EEEEEE",
		Edit:   "#EEEEEE",

		ColumnBorder:   "#767676",
		DropTarget:     "#FFFFFF",
		TaskBorder:     "#4E4E4E",
		TaskBackground: "#1C1C1C",
		SelectedBorder: "#DADADA",
		SelectedBg:     "#303030",
		Dragging:       "#BCBCBC",

		Title:  "#FFFFFF",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:    "#EEEEEE",
		InfoBg:    "#262626",
		WarningFg: "#FFFFFF",
		WarningBg: "#444444",
		ErrorFg:   "#000000",
		ErrorBg:   "#BCBCBC",

		StatusBarBg:   "#444444",
		StatusBarText: "#FFFFFF",
	}
}
