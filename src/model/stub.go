package model

import (
	"strconv"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

// Stub is a list entry before its detail record has been fetched.
type Stub struct {
	Name string
	URL  string
}

func StubsFrom(entries []pokeapi.PokemonListResultEntry) []Stub {
	stubs := make([]Stub, 0, len(entries))
	for _, entry := range entries {
		stubs = append(stubs, Stub{Name: entry.Name, URL: entry.Url})
	}
	return stubs
}

// ID reads the id from the last path segment, falling back to the one before it.
func (s Stub) ID() (int, bool) {
	parts := strings.FieldsFunc(s.URL, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return 0, false
	}
	if id, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
		return id, true
	}
	if len(parts) >= 2 {
		if id, err := strconv.Atoi(parts[len(parts)-2]); err == nil {
			return id, true
		}
	}
	return 0, false
}
