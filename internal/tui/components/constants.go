package components

import "github.com/thenoetrevino/tablero/internal/tui/state"

const (
	TaskCardHeight = 5 // TaskCardHeight is the fixed height of the task card, borders included

	columnInnerWidth = state.ColumnWidth - 4 // border + horizontal padding
	taskWidth        = columnInnerWidth
	taskTextWidth    = taskWidth - 2 // card border

	// Column overhead: border(2) + header(1) + top indicator(1) + bottom indicator(1)
	columnOverhead = 5
)
