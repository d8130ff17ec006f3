package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// KeyMap holds the board's bindings, built from the configured key mappings.
// Arrow keys are always accepted alongside the configured navigation keys.
type KeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	PickUpDrop key.Binding
	CancelDrag key.Binding
	ViewTask   key.Binding
	EditTask   key.Binding
	SaveForm   key.Binding
	Refresh    key.Binding
	ShowHelp   key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// NewKeyMap builds bindings from km
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTask:   key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "prev card")),
		NextTask:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next card")),
		PickUpDrop: key.NewBinding(key.WithKeys(km.PickUpDrop), key.WithHelp(km.PickUpDrop, "pick up / drop")),
		CancelDrag: key.NewBinding(key.WithKeys(km.CancelDrag), key.WithHelp(km.CancelDrag, "cancel drag")),
		ViewTask:   key.NewBinding(key.WithKeys(km.ViewTask), key.WithHelp(km.ViewTask, "open card")),
		EditTask:   key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit title")),
		SaveForm:   key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		Refresh:    key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		ShowHelp:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUpDrop, k.ViewTask, k.EditTask, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.PickUpDrop, k.CancelDrag},
		{k.ViewTask, k.EditTask, k.SaveForm},
		{k.Refresh, k.ShowHelp, k.Quit},
	}
}
