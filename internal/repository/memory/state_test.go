package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
)

func TestStateRepository_LoadAbsent(t *testing.T) {
	repo := NewStateRepository()

	got, err := repo.Load(context.Background(), "cart:sess-1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStateRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	payload := []byte(`{"items":[{"id":"p1","quantity":2}]}`)
	require.NoError(t, repo.Save(ctx, "cart:sess-1", payload))

	got, err := repo.Load(ctx, "cart:sess-1")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStateRepository_LoadReturnsCopy(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", []byte(`abc`)))

	got, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}

func TestStateRepository_Delete(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", []byte(`v`)))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Load(ctx, "k")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting again is still not an error.
	assert.NoError(t, repo.Delete(ctx, "k"))
}
