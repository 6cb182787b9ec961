package model

import (
	"testing"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func named(name string) *pokeapi.NamedResource {
	return &pokeapi.NamedResource{Name: ptr(name)}
}

func TestFromResponse_NullsBecomeEmpty(t *testing.T) {
	pokemon := FromResponse(pokeapi.PokemonResponse{})

	assert.Equal(t, 0, pokemon.ID)
	assert.Equal(t, "", pokemon.Name)
	assert.NotNil(t, pokemon.Types)
	assert.NotNil(t, pokemon.Stats)
	assert.NotNil(t, pokemon.Abilities)
	assert.NotNil(t, pokemon.Moves)
	assert.NotNil(t, pokemon.Sprites.Other)
	assert.Empty(t, pokemon.Sprites.All())
	assert.Equal(t, "", pokemon.Sprites.Preferred())
}

func TestFromResponse_NestedNullsKeepPositions(t *testing.T) {
	pokemon := FromResponse(pokeapi.PokemonResponse{
		Types: []pokeapi.PokemonType{{Slot: 1, Type: nil}, {Slot: 2, Type: named("flying")}},
		Stats: []pokeapi.PokemonStat{{BaseStat: nil, Stat: named("hp")}, {BaseStat: ptr(49)}},
	})

	assert.Equal(t, []string{"", "flying"}, pokemon.Types)
	assert.Equal(t, []Stat{{Name: "hp", Value: 0}, {Name: "", Value: 49}}, pokemon.Stats)
}

func TestFromResponse_TruncatesMoves(t *testing.T) {
	var moves []pokeapi.PokemonMove
	for _, name := range []string{"pound", "karate-chop", "double-slap", "comet-punch", "mega-punch", "pay-day", "fire-punch"} {
		moves = append(moves, pokeapi.PokemonMove{Move: named(name)})
	}

	pokemon := FromResponse(pokeapi.PokemonResponse{Moves: moves})

	assert.Equal(t, []string{"pound", "karate-chop", "double-slap", "comet-punch", "mega-punch"}, pokemon.Moves)
}

func TestFromResponse_Full(t *testing.T) {
	pokemon := FromResponse(pokeapi.PokemonResponse{
		Id:        ptr(1),
		Name:      ptr("bulbasaur"),
		Height:    ptr(7),
		Weight:    ptr(69),
		Types:     []pokeapi.PokemonType{{Slot: 1, Type: named("grass")}, {Slot: 2, Type: named("poison")}},
		Abilities: []pokeapi.PokemonAbility{{Ability: named("overgrow")}, {Ability: named("chlorophyll"), IsHidden: true}},
		Sprites: &pokeapi.PokemonSprites{
			FrontDefault: ptr("https://img/1.png"),
			BackDefault:  ptr("https://img/back/1.png"),
			Other: &pokeapi.OtherSprites{
				OfficialArtwork: &pokeapi.ArtworkSprites{FrontDefault: ptr("https://img/official/1.png")},
				DreamWorld:      &pokeapi.ArtworkSprites{FrontDefault: ptr("https://img/dream/1.svg")},
			},
		},
	})

	assert.Equal(t, 1, pokemon.ID)
	assert.Equal(t, "bulbasaur", pokemon.Name)
	assert.Equal(t, []string{"grass", "poison"}, pokemon.Types)
	assert.Equal(t, []string{"overgrow", "chlorophyll"}, pokemon.Abilities)
	assert.InDelta(t, 0.7, pokemon.HeightMeters(), 1e-9)
	assert.InDelta(t, 6.9, pokemon.WeightKilograms(), 1e-9)
	assert.Equal(t, []string{"https://img/official/1.png", "https://img/dream/1.svg"}, pokemon.Sprites.Other)
	assert.Equal(t, "https://img/official/1.png", pokemon.Sprites.Preferred())
}

func TestFromResponse_SkipsInvalidUrls(t *testing.T) {
	pokemon := FromResponse(pokeapi.PokemonResponse{
		Sprites: &pokeapi.PokemonSprites{
			FrontDefault: ptr("https://img/1.png"),
			BackDefault:  ptr("http://[::1"),
			Other: &pokeapi.OtherSprites{
				OfficialArtwork: &pokeapi.ArtworkSprites{FrontDefault: ptr("%zz")},
			},
		},
	})

	assert.Equal(t, "", pokemon.Sprites.BackDefault)
	assert.Empty(t, pokemon.Sprites.Other)
	assert.Equal(t, "https://img/1.png", pokemon.Sprites.Preferred())
}

func TestSpritesAll_Deduplicates(t *testing.T) {
	sprites := Sprites{
		FrontDefault: "https://img/1.png",
		FrontShiny:   "https://img/shiny/1.png",
		Other:        []string{"https://img/official/1.png", "https://img/1.png"},
	}

	all := sprites.All()

	require.Len(t, all, 3)
	assert.Equal(t, []string{"https://img/1.png", "https://img/shiny/1.png", "https://img/official/1.png"}, all)
}
