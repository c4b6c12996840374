package contract

import "context"

// ITransactor runs a group of repository calls as one unit. Repositories
// must use the context handed to fn so their writes join the unit.
type ITransactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// Atomic reports whether a failure inside fn rolls back earlier writes.
	Atomic() bool
}
