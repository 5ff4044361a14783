package repository

import "context"

// SeenRepository is the port for the set of already-forwarded record ids.
// The set only grows; entries are never removed while the process lives.
type SeenRepository interface {
	// MarkSeen records id and reports whether it was new. The check and the
	// insert are a single atomic step so callers can mark before forwarding
	// and still learn the partition.
	MarkSeen(ctx context.Context, id string) (wasNew bool, err error)

	// Len returns the number of ids recorded so far.
	Len(ctx context.Context) (int, error)
}
