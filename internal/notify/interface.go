// Package notify sends optional outbound notifications about imports and
// generation runs. Everything here is ambient: a project works fully with
// notifications disabled.
package notify

import "context"

// Event types
const (
	EventImport   = "on_import"
	EventGenerate = "on_generate"
)

// Notifier delivers a message to one destination.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
