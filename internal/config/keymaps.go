package config

// KeyMappings defines all configurable key bindings. Values use the key
// names bubbletea reports, e.g. "space", "enter", "esc", "ctrl+c".
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Drag
	PickUpDrop string `yaml:"pick_up_drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Tasks
	ViewTask string `yaml:"view_task"`
	EditTask string `yaml:"edit_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		PickUpDrop: "space",
		CancelDrag: "esc",

		ViewTask: "enter",
		EditTask: "e",
		SaveForm: "enter",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.PickUpDrop, defaults.PickUpDrop)
	fill(&k.CancelDrag, defaults.CancelDrag)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
