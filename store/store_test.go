package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKey(t *testing.T) {
	assert.Equal(t, "v_os_prod_matters", TableKey(TableMatters))
	assert.Equal(t, "v_os_prod_audit_logs", TableKey(TableAuditLogs))
}

func TestMemoryAbsentKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	got, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, m.Set(ctx, "k", []byte("v2")))
	got, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, m.Delete(ctx, "k"))
	got, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	original := []byte("payload")
	require.NoError(t, m.Set(ctx, "k", original))
	original[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	got[0] = 'Y'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), again)
}

func TestNewDefaultsToMemory(t *testing.T) {
	kv, err := New(context.Background(), Config{})
	require.NoError(t, err)
	_, ok := kv.(*Memory)
	assert.True(t, ok)
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(context.Background(), Config{Type: "cassandra"})
	assert.Error(t, err)
}
