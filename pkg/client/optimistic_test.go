package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimisticCommitReplacesWithServerValue(t *testing.T) {
	local := Inquiry{ID: "i1", Status: "new"}

	committed, err := Optimistic(context.Background(),
		func() Inquiry { return local },
		func(v Inquiry) { local = v },
		Inquiry{ID: "i1", Status: "confirmed"},
		func(ctx context.Context) (Inquiry, error) {
			// Server echoes the transition with its own timestamps.
			return Inquiry{ID: "i1", Status: "confirmed", Phone: "server-added"}, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", committed.Status)
	assert.Equal(t, "server-added", local.Phone, "local state takes the server's stored form")
}

func TestOptimisticRollbackRestoresSnapshot(t *testing.T) {
	local := Inquiry{ID: "i1", Status: "pending"}
	observed := []string{}

	_, err := Optimistic(context.Background(),
		func() Inquiry { return local },
		func(v Inquiry) {
			local = v
			observed = append(observed, v.Status)
		},
		Inquiry{ID: "i1", Status: "confirmed"},
		func(ctx context.Context) (Inquiry, error) {
			return Inquiry{}, &APIError{Kind: KindValidation, Status: 409, Code: "INVALID_STATUS_TRANSITION"}
		},
	)

	require.Error(t, err)
	assert.Equal(t, "pending", local.Status)
	// The optimistic value was visible before the rollback.
	assert.Equal(t, []string{"confirmed", "pending"}, observed)
}
