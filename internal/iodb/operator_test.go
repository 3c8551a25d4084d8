package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportdb/sportdb/internal/iodb"
)

func TestOperatorLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "import-test.sqlite")

	op := iodb.New()
	require.NoError(t, op.Open(ctx, path))
	defer op.Close()

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, op.CreateTables(ctx))

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	_, err = op.DB().ExecContext(ctx,
		"insert into brand ( brand ) values ( ? )", "NIKE")
	require.NoError(t, err)

	require.NoError(t, op.CreateIndexes(ctx))
	require.NoError(t, op.Close())
}

func TestOperatorNotOpen(t *testing.T) {
	ctx := context.Background()
	op := iodb.New()

	assert.Error(t, op.CreateTables(ctx))
	assert.Error(t, op.CreateIndexes(ctx))
	_, err := op.HasTables(ctx)
	assert.Error(t, err)
	assert.NoError(t, op.Close())
}
