package main

import (
	"context"
	"testing"

	"github.com/BielosX/wombat/pokedex/src/app"
	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/pokeapi/pokeapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T, server *pokeapitest.Server) {
	cfg := &config.Config{BaseUrl: server.BaseUrl()}
	require.NoError(t, cfg.Validate())
	sugar = zaptest.NewLogger(t).Sugar()
	application = app.New(cfg, sugar)
}

func TestHandleDetail(t *testing.T) {
	server := pokeapitest.NewServer(10)
	defer server.Close()
	setup(t, server)

	pokemon, err := handleDetail(context.Background(), DetailRequest{Id: 7})
	require.NoError(t, err)
	require.NotNil(t, pokemon)
	assert.Equal(t, "pokemon-7", pokemon.Name)

	pokemon, err = handleDetail(context.Background(), DetailRequest{Id: 11})
	require.NoError(t, err)
	assert.Nil(t, pokemon)
}

func TestHandleCollection_WithoutBucket(t *testing.T) {
	server := pokeapitest.NewServer(10)
	defer server.Close()
	setup(t, server)

	_, err := handleCollection(context.Background(), CollectionRequest{PageSize: 5, Pages: 1})

	assert.Error(t, err)
}
