package model

import (
	"net/url"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

// MoveSampleSize is how many moves of the upstream list are kept.
const MoveSampleSize = 5

type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Sprites holds image URLs. An empty string means the image is missing.
type Sprites struct {
	FrontDefault string   `json:"frontDefault"`
	BackDefault  string   `json:"backDefault"`
	FrontShiny   string   `json:"frontShiny"`
	BackShiny    string   `json:"backShiny"`
	Other        []string `json:"other"`
}

// Preferred returns the first artwork image, or the default front sprite.
func (s Sprites) Preferred() string {
	if len(s.Other) > 0 {
		return s.Other[0]
	}
	return s.FrontDefault
}

// All lists every present image once, sprites first and artwork last.
func (s Sprites) All() []string {
	candidates := append([]string{s.FrontDefault, s.BackDefault, s.FrontShiny, s.BackShiny}, s.Other...)
	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		result = append(result, candidate)
	}
	return result
}

// Pokemon is the normalized detail record. Values are never mutated after FromResponse.
type Pokemon struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	Stats     []Stat   `json:"stats"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Abilities []string `json:"abilities"`
	Moves     []string `json:"moves"`
	Sprites   Sprites  `json:"sprites"`
}

func (p Pokemon) HeightMeters() float64 {
	return float64(p.Height) / 10
}

func (p Pokemon) WeightKilograms() float64 {
	return float64(p.Weight) / 10
}

func FromResponse(response pokeapi.PokemonResponse) Pokemon {
	types := make([]string, 0, len(response.Types))
	for _, entry := range response.Types {
		types = append(types, resourceName(entry.Type))
	}
	stats := make([]Stat, 0, len(response.Stats))
	for _, entry := range response.Stats {
		stats = append(stats, Stat{Name: resourceName(entry.Stat), Value: intOrZero(entry.BaseStat)})
	}
	abilities := make([]string, 0, len(response.Abilities))
	for _, entry := range response.Abilities {
		abilities = append(abilities, resourceName(entry.Ability))
	}
	moveCount := min(len(response.Moves), MoveSampleSize)
	moves := make([]string, 0, moveCount)
	for _, entry := range response.Moves[:moveCount] {
		moves = append(moves, resourceName(entry.Move))
	}
	return Pokemon{
		ID:        intOrZero(response.Id),
		Name:      stringOrEmpty(response.Name),
		Types:     types,
		Stats:     stats,
		Height:    intOrZero(response.Height),
		Weight:    intOrZero(response.Weight),
		Abilities: abilities,
		Moves:     moves,
		Sprites:   spritesFrom(response.Sprites),
	}
}

func spritesFrom(sprites *pokeapi.PokemonSprites) Sprites {
	if sprites == nil {
		return Sprites{Other: []string{}}
	}
	other := make([]string, 0, 2)
	if sprites.Other != nil {
		for _, artwork := range []*pokeapi.ArtworkSprites{sprites.Other.OfficialArtwork, sprites.Other.DreamWorld} {
			if artwork == nil {
				continue
			}
			if u := validUrl(artwork.FrontDefault); u != "" {
				other = append(other, u)
			}
		}
	}
	return Sprites{
		FrontDefault: validUrl(sprites.FrontDefault),
		BackDefault:  validUrl(sprites.BackDefault),
		FrontShiny:   validUrl(sprites.FrontShiny),
		BackShiny:    validUrl(sprites.BackShiny),
		Other:        other,
	}
}

func validUrl(raw *string) string {
	if raw == nil || *raw == "" {
		return ""
	}
	if _, err := url.Parse(*raw); err != nil {
		return ""
	}
	return *raw
}

func resourceName(resource *pokeapi.NamedResource) string {
	if resource == nil {
		return ""
	}
	return stringOrEmpty(resource.Name)
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
