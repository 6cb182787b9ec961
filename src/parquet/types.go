package parquet

import "github.com/BielosX/wombat/pokedex/src/model"

type Pokemon struct {
	Id     int32  `parquet:"name=id, type=INT32"`
	Name   string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Weight int32  `parquet:"name=weight, type=INT32"`
	Height int32  `parquet:"name=height, type=INT32"`
	Type   string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Image  string `parquet:"name=image, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ToPokemon emits one row per type. A record without types still gets a row.
func ToPokemon(pokemon model.Pokemon) []Pokemon {
	types := pokemon.Types
	if len(types) == 0 {
		types = []string{""}
	}
	rows := make([]Pokemon, 0, len(types))
	for _, t := range types {
		rows = append(rows, Pokemon{
			Id:     int32(pokemon.ID),
			Name:   pokemon.Name,
			Weight: int32(pokemon.Weight),
			Height: int32(pokemon.Height),
			Type:   t,
			Image:  pokemon.Sprites.Preferred(),
		})
	}
	return rows
}
