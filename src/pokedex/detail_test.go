package pokedex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFetch_ReturnsRecord(t *testing.T) {
	pokemon, ok := Fetch(context.Background(), newFakeFetcher(0), zaptest.NewLogger(t).Sugar(), 25)

	require.True(t, ok)
	assert.Equal(t, 25, pokemon.ID)
	assert.Equal(t, "pokemon-25", pokemon.Name)
}

func TestFetch_FailureIsNone(t *testing.T) {
	fetcher := newFakeFetcher(0)
	fetcher.missing[25] = true

	pokemon, ok := Fetch(context.Background(), fetcher, zaptest.NewLogger(t).Sugar(), 25)

	assert.False(t, ok)
	assert.Zero(t, pokemon.ID)
}

func TestDetail_Load(t *testing.T) {
	fetcher := newFakeFetcher(0)
	fetcher.missing[2] = true
	detail := NewDetail(fetcher, zaptest.NewLogger(t).Sugar())
	assert.Nil(t, detail.State().Pokemon)

	require.True(t, detail.Load(context.Background(), 1))
	state := detail.State()
	require.NotNil(t, state.Pokemon)
	assert.Equal(t, 1, state.Pokemon.ID)
	assert.False(t, state.Loading)

	assert.False(t, detail.Load(context.Background(), 2))
	state = detail.State()
	require.NotNil(t, state.Pokemon)
	assert.Equal(t, 1, state.Pokemon.ID)
	assert.False(t, state.Loading)
}

func TestDetail_OverlappingLoadsStayLoading(t *testing.T) {
	fetcher := newFakeFetcher(0)
	gate := fetcher.gateGet(1)
	detail := NewDetail(fetcher, zaptest.NewLogger(t).Sugar())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		detail.Load(context.Background(), 1)
	}()
	select {
	case id := <-fetcher.getBegun:
		require.Equal(t, 1, id)
	case <-time.After(2 * time.Second):
		t.Fatal("detail request was never issued")
	}

	require.True(t, detail.Load(context.Background(), 2))
	state := detail.State()
	assert.True(t, state.Loading)
	require.NotNil(t, state.Pokemon)
	assert.Equal(t, 2, state.Pokemon.ID)

	close(gate)
	wg.Wait()

	state = detail.State()
	assert.False(t, state.Loading)
	assert.Equal(t, 1, state.Pokemon.ID)
}
