package theme

import "github.com/thenoetrevino/tablero/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Subtle         string
	Normal         string
	Edit           string
	Title          string
	ColumnBorder   string
	DropTarget     string
	TaskBorder     string
	TaskBg         string
	SelectedBorder string
	SelectedBg     string
	Dragging       string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Accent = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Edit = scheme.Edit
	Title = scheme.Title
	ColumnBorder = scheme.ColumnBorder
	DropTarget = scheme.DropTarget
	TaskBorder = scheme.TaskBorder
	TaskBg = scheme.TaskBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	Dragging = scheme.Dragging
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}
