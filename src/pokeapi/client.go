package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2/"

var ErrNotFound = errors.New("pokeapi: not found")

type Client struct {
	baseUrl string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

// NewClient falls back to DefaultBaseUrl and http.DefaultClient for empty arguments.
func NewClient(sugar *zap.SugaredLogger, baseUrl string, httpClient *http.Client) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  httpClient,
		sugar:   sugar,
	}
}

func (c *Client) getAndDecode(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "get %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "decode %s", url)
	}
	return nil
}

func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*PokemonListResult, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseUrl, limit, offset)
	c.sugar.Debugf("Fetching Pokemon list %s", url)
	var result PokemonListResult
	if err := c.getAndDecode(ctx, url, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPokemon(ctx context.Context, id int) (*PokemonResponse, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseUrl, id)
	c.sugar.Debugf("Fetching PokemonResponse %s", url)
	var pokemon PokemonResponse
	if err := c.getAndDecode(ctx, url, &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}
