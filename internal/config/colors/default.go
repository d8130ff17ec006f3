package colors

// Default returns the default color scheme: teal accents on a dark slate board
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#2AA198",
		Edit:   "#5FAFD7",

		ColumnBorder:   "#4E5A65",
		DropTarget:     "#87D75F",
		TaskBorder:     "#3A444D",
		TaskBackground: "#22292F",
		SelectedBorder: "#2AA198",
		SelectedBg:     "#2E3A40",
		Dragging:       "#FFAF00",

		Title:  "#5FD7D7",
		Subtle: "#6C7A86",
		Normal: "#D8DEE3",

		InfoFg:    "#5FAFFF",
		InfoBg:    "#1C2B3A",
		WarningFg: "#FFAF00",
		WarningBg: "#3D2F12",
		ErrorFg:   "#FF5F5F",
		ErrorBg:   "#3D1A1A",

		StatusBarBg:   "#2AA198",
		StatusBarText: "#0F1A1C",
	}
}
