// Package pokeapitest serves a small generated Pokemon dataset over HTTP
// in the shape of the PokeAPI list and detail endpoints.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

type Server struct {
	*httptest.Server
	Total int

	mu      sync.Mutex
	missing map[int]bool
	failing bool
}

// NewServer serves Pokemon with ids 1..total under /api/v2/.
func NewServer(total int) *Server {
	s := &Server{Total: total, missing: make(map[int]bool)}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/pokemon", s.list)
	mux.HandleFunc("GET /api/v2/pokemon/{id}", s.detail)
	s.Server = httptest.NewServer(mux)
	return s
}

func (s *Server) BaseUrl() string {
	return s.URL + "/api/v2/"
}

// Missing makes the detail endpoint answer 404 for id.
func (s *Server) Missing(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missing[id] = true
}

// Failing makes the list endpoint answer 500.
func (s *Server) Failing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	failing := s.failing
	s.mu.Unlock()
	if failing {
		http.Error(w, "unavailable", http.StatusInternalServerError)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	results := make([]pokeapi.PokemonListResultEntry, 0, limit)
	for id := offset + 1; id <= min(offset+limit, s.Total); id++ {
		results = append(results, pokeapi.PokemonListResultEntry{
			Name: Name(id),
			Url:  fmt.Sprintf("%spokemon/%d/", s.BaseUrl(), id),
		})
	}
	total := s.Total
	writeJSON(w, pokeapi.PokemonListResult{Count: &total, Results: results})
}

func (s *Server) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	s.mu.Lock()
	missing := s.missing[id]
	s.mu.Unlock()
	if err != nil || id < 1 || id > s.Total || missing {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, Pokemon(id))
}

func Name(id int) string {
	return fmt.Sprintf("pokemon-%d", id)
}

// Pokemon is the generated detail document for id.
func Pokemon(id int) pokeapi.PokemonResponse {
	name := Name(id)
	height, weight, hp := id*2, id*10, 40+id
	typeName := "normal"
	if id%2 == 0 {
		typeName = "water"
	}
	front := fmt.Sprintf("https://img.example/%d.png", id)
	official := fmt.Sprintf("https://img.example/official/%d.png", id)
	statName := "hp"
	abilityName := "run-away"
	moveName := "tackle"
	return pokeapi.PokemonResponse{
		Id:        &id,
		Name:      &name,
		Height:    &height,
		Weight:    &weight,
		Types:     []pokeapi.PokemonType{{Slot: 1, Type: &pokeapi.NamedResource{Name: &typeName}}},
		Stats:     []pokeapi.PokemonStat{{BaseStat: &hp, Stat: &pokeapi.NamedResource{Name: &statName}}},
		Abilities: []pokeapi.PokemonAbility{{Slot: 1, Ability: &pokeapi.NamedResource{Name: &abilityName}}},
		Moves:     []pokeapi.PokemonMove{{Move: &pokeapi.NamedResource{Name: &moveName}}},
		Sprites: &pokeapi.PokemonSprites{
			FrontDefault: &front,
			Other:        &pokeapi.OtherSprites{OfficialArtwork: &pokeapi.ArtworkSprites{FrontDefault: &official}},
		},
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}
