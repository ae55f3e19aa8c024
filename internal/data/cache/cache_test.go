package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_, ok := c.Get(ctx, "snapshot")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "snapshot", []byte(`{"a":1}`), time.Minute))

	val, ok := c.Get(ctx, "snapshot")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), val)
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "snapshot", []byte("v"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx, "snapshot")
	assert.False(t, ok)
}

func TestMemory_CopiesValue(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	buf := []byte("original")
	require.NoError(t, c.Set(ctx, "k", buf, time.Minute))
	buf[0] = 'X'

	val, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("original"), val)
}

func TestRedis_SetGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client)
	ctx := context.Background()

	mock.ExpectSet("snapshot", []byte("payload"), time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, "snapshot", []byte("payload"), time.Minute))

	mock.ExpectGet("snapshot").SetVal("payload")
	val, ok := c.Get(ctx, "snapshot")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_MissAndErrorAreBothMisses(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client)
	ctx := context.Background()

	mock.ExpectGet("absent").RedisNil()
	_, ok := c.Get(ctx, "absent")
	assert.False(t, ok)

	mock.ExpectGet("broken").SetErr(assert.AnError)
	_, ok = c.Get(ctx, "broken")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
