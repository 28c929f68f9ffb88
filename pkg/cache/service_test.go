package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spotSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestService(t *testing.T) (Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), mr
}

func TestSetAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "campspots:test", spotSummary{ID: "1", Name: "Lakeside"}, time.Minute))

	var got spotSummary
	require.NoError(t, svc.Get(ctx, "campspots:test", &got))
	assert.Equal(t, "Lakeside", got.Name)
}

func TestGetMiss(t *testing.T) {
	svc, _ := newTestService(t)

	var got spotSummary
	err := svc.Get(context.Background(), "campspots:missing", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetOrSetCallsFetcherOnce(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()
	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []spotSummary{{ID: "1", Name: "Forest"}}, nil
	}

	var first, second []spotSummary
	require.NoError(t, svc.GetOrSet(ctx, "campspots:spots:list:x", time.Minute, fetch, &first))
	require.NoError(t, svc.GetOrSet(ctx, "campspots:spots:list:x", time.Minute, fetch, &second))

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("campspots:spots:list:x"))
}

func TestGetOrSetPropagatesFetcherError(t *testing.T) {
	svc, mr := newTestService(t)
	boom := errors.New("db down")

	var dest []spotSummary
	err := svc.GetOrSet(context.Background(), "campspots:k", time.Minute, func() (interface{}, error) {
		return nil, boom
	}, &dest)

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("campspots:k"))
}

func TestDeletePattern(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "campspots:spots:list:a", 1, time.Minute))
	require.NoError(t, svc.Set(ctx, "campspots:spots:list:b", 2, time.Minute))
	require.NoError(t, svc.Set(ctx, "campspots:spots:detail:uuid:1", 3, time.Minute))

	require.NoError(t, svc.DeletePattern(ctx, "campspots:spots:list*"))

	assert.False(t, mr.Exists("campspots:spots:list:a"))
	assert.False(t, mr.Exists("campspots:spots:list:b"))
	assert.True(t, mr.Exists("campspots:spots:detail:uuid:1"))
}
