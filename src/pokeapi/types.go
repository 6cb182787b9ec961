package pokeapi

// Most fields are pointers because the API returns null for missing data.

type NamedResource struct {
	Name *string `json:"name"`
	Url  *string `json:"url"`
}

type PokemonListResultEntry struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonListResult struct {
	Count    *int                     `json:"count"`
	Next     *string                  `json:"next"`
	Previous *string                  `json:"previous"`
	Results  []PokemonListResultEntry `json:"results"`
}

type PokemonType struct {
	Slot int32          `json:"slot"`
	Type *NamedResource `json:"type"`
}

type PokemonStat struct {
	BaseStat *int           `json:"base_stat"`
	Effort   *int           `json:"effort"`
	Stat     *NamedResource `json:"stat"`
}

type PokemonAbility struct {
	IsHidden bool           `json:"is_hidden"`
	Slot     int32          `json:"slot"`
	Ability  *NamedResource `json:"ability"`
}

type PokemonMove struct {
	Move *NamedResource `json:"move"`
}

type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

type OtherSprites struct {
	OfficialArtwork *ArtworkSprites `json:"official-artwork"`
	DreamWorld      *ArtworkSprites `json:"dream_world"`
}

type PokemonSprites struct {
	FrontDefault *string       `json:"front_default"`
	BackDefault  *string       `json:"back_default"`
	FrontShiny   *string       `json:"front_shiny"`
	BackShiny    *string       `json:"back_shiny"`
	Other        *OtherSprites `json:"other"`
}

type PokemonResponse struct {
	Id        *int             `json:"id"`
	Name      *string          `json:"name"`
	Weight    *int             `json:"weight"`
	Height    *int             `json:"height"`
	Types     []PokemonType    `json:"types"`
	Stats     []PokemonStat    `json:"stats"`
	Abilities []PokemonAbility `json:"abilities"`
	Moves     []PokemonMove    `json:"moves"`
	Sprites   *PokemonSprites  `json:"sprites"`
}
