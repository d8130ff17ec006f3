package board

import "github.com/thenoetrevino/tablero/internal/models"

// StatusNotifier is told about every committed status change so the owner can
// persist it externally. Implementations must not block: the board does not
// wait for the call and ignores its outcome.
type StatusNotifier interface {
	NotifyStatusChange(id models.TaskID, status models.Status)
}

// NotifierFunc adapts a function to StatusNotifier
type NotifierFunc func(id models.TaskID, status models.Status)

// NotifyStatusChange calls f(id, status)
func (f NotifierFunc) NotifyStatusChange(id models.TaskID, status models.Status) {
	f(id, status)
}

// Compile-time verification that NotifierFunc implements StatusNotifier
var _ StatusNotifier = NotifierFunc(nil)
