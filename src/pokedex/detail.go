package pokedex

import (
	"context"
	"sync"

	"github.com/BielosX/wombat/pokedex/src/model"
	"go.uber.org/zap"
)

type DetailState struct {
	Pokemon *model.Pokemon
	Loading bool
}

// Detail holds a single record fetched by id. Loads may overlap; Loading
// stays set until the last of them returns and each successful one stores
// its record when it finishes.
type Detail struct {
	fetcher Fetcher
	sugar   *zap.SugaredLogger

	mu      sync.Mutex
	pokemon *model.Pokemon
	loading int
}

func NewDetail(fetcher Fetcher, sugar *zap.SugaredLogger) *Detail {
	return &Detail{fetcher: fetcher, sugar: sugar}
}

// Load keeps the previous record when the fetch fails.
func (d *Detail) Load(ctx context.Context, id int) bool {
	d.addLoading(1)
	defer d.addLoading(-1)
	pokemon, ok := Fetch(ctx, d.fetcher, d.sugar, id)
	if !ok {
		return false
	}
	d.mu.Lock()
	d.pokemon = &pokemon
	d.mu.Unlock()
	return true
}

func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DetailState{Pokemon: d.pokemon, Loading: d.loading > 0}
}

func (d *Detail) addLoading(delta int) {
	d.mu.Lock()
	d.loading += delta
	d.mu.Unlock()
}
