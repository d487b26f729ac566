package client

import "context"

// Optimistic runs a three-step status update: snapshot the current value via
// get, apply the hoped-for value immediately via set, then commit against the
// server. A failed commit restores the snapshot; a successful one replaces
// the optimistic value with the server's stored form.
func Optimistic[T any](
	ctx context.Context,
	get func() T,
	set func(T),
	optimistic T,
	commit func(context.Context) (T, error),
) (T, error) {
	snapshot := get()
	set(optimistic)

	committed, err := commit(ctx)
	if err != nil {
		set(snapshot)

		var zero T

		return zero, err
	}

	set(committed)

	return committed, nil
}
