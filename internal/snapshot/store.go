// Package snapshot persists a portfolio as a JSON document. Stores are
// tolerant on load: a missing or malformed snapshot yields an empty
// portfolio instead of an error.
package snapshot

import (
	"context"
	"encoding/json"

	"debtwise/internal/engine"
)

// Store loads and saves one portfolio snapshot.
type Store interface {
	Load(ctx context.Context) (*engine.Portfolio, error)
	Save(ctx context.Context, p *engine.Portfolio) error
}

// encode marshals the portfolio's canonical state.
func encode(p *engine.Portfolio) ([]byte, error) {
	return json.MarshalIndent(p.State(), "", "  ")
}

// decode rebuilds a portfolio from raw snapshot bytes. Any parse or
// validation failure is returned; callers translate it into an empty
// portfolio.
func decode(raw []byte) (*engine.Portfolio, error) {
	var state engine.PortfolioState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return engine.RestorePortfolio(state)
}
