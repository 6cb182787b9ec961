package pokedex

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/BielosX/wombat/pokedex/src/model"
	"github.com/BielosX/wombat/pokedex/src/pagination"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 8

// Fetcher is the upstream the collection reads from. *pokeapi.Client implements it.
type Fetcher interface {
	ListPokemon(ctx context.Context, limit, offset int) (*pokeapi.PokemonListResult, error)
	GetPokemon(ctx context.Context, id int) (*pokeapi.PokemonResponse, error)
}

// Fetch returns false on any failure; the reason is only logged.
func Fetch(ctx context.Context, fetcher Fetcher, sugar *zap.SugaredLogger, id int) (model.Pokemon, bool) {
	response, err := fetcher.GetPokemon(ctx, id)
	if err != nil {
		sugar.Warnf("Failed to fetch Pokemon %d: %s", id, err)
		return model.Pokemon{}, false
	}
	return model.FromResponse(*response), true
}

type page struct {
	cursor pagination.Cursor
	stubs  []model.Stub
	// empty is set when upstream sent no results array at all.
	empty bool
}

func fetchPage(ctx context.Context, fetcher Fetcher, req pagination.Request) (*page, error) {
	result, err := fetcher.ListPokemon(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	return &page{
		cursor: pagination.Advance(req, len(result.Results), result.Count),
		stubs:  model.StubsFrom(result.Results),
		empty:  result.Results == nil,
	}, nil
}

type batch struct {
	pokemon []model.Pokemon
	failed  int
	skipped int
}

// fetchBatch loads the detail record of every stub with a parseable id and
// returns the successful ones sorted by id.
func fetchBatch(ctx context.Context, fetcher Fetcher, sugar *zap.SugaredLogger, concurrency int, stubs []model.Stub) batch {
	slots := make([]*model.Pokemon, len(stubs))
	var failed atomic.Int32
	skipped := 0
	var group errgroup.Group
	group.SetLimit(concurrency)
	for i, stub := range stubs {
		id, ok := stub.ID()
		if !ok {
			sugar.Debugf("Skipping %s, no id in %q", stub.Name, stub.URL)
			skipped++
			continue
		}
		group.Go(func() error {
			pokemon, ok := Fetch(ctx, fetcher, sugar, id)
			if !ok {
				failed.Add(1)
				return nil
			}
			slots[i] = &pokemon
			return nil
		})
	}
	// Fetch swallows per-entry failures, so Wait never reports one.
	_ = group.Wait()
	result := batch{
		pokemon: make([]model.Pokemon, 0, len(stubs)),
		failed:  int(failed.Load()),
		skipped: skipped,
	}
	for _, pokemon := range slots {
		if pokemon != nil {
			result.pokemon = append(result.pokemon, *pokemon)
		}
	}
	slices.SortStableFunc(result.pokemon, func(a, b model.Pokemon) int {
		return a.ID - b.ID
	})
	return result
}
