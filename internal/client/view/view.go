// Package view derives what the CLI shows from the cached resource lists.
package view

import (
	"context"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/client/query"
)

// Overall gates the whole view: while any list is loading, or once any
// list failed, no list is rendered.
type Overall struct {
	Loading bool
	Err     error
}

// Summarize folds per-kind states into the overall gate. Loading is the OR
// of every Loading(); Err is the first error in models.Kinds order.
func Summarize(states []*query.State) Overall {
	var o Overall
	byKind := make(map[models.Kind]*query.State, len(states))
	for _, s := range states {
		if s == nil {
			continue
		}
		byKind[s.Kind] = s
		if s.Loading() {
			o.Loading = true
		}
	}
	for _, k := range models.Kinds {
		if s, ok := byKind[k]; ok && s.Err != nil {
			o.Err = s.Err
			break
		}
	}
	return o
}

// Loader is satisfied by *query.Cache.
type Loader interface {
	Prefetch(kind models.Kind)
	Fetch(ctx context.Context, kind models.Kind) ([]models.Record, error)
	Snapshots() []*query.State
}

// View owns the startup load of every resource list and answers the
// overall gate from the cache.
type View struct {
	cache Loader
}

func New(cache Loader) *View {
	return &View{cache: cache}
}

// Initialize starts the fetch of every kind. Calling it again while fetches
// are in flight joins them instead of issuing new requests.
func (v *View) Initialize() {
	for _, k := range models.Kinds {
		v.cache.Prefetch(k)
	}
}

// Wait initializes the view and blocks until every kind settled or ctx is
// done. Fetch failures are reported through Overall, not as an error.
func (v *View) Wait(ctx context.Context) (Overall, error) {
	v.Initialize()
	for _, k := range models.Kinds {
		if _, err := v.cache.Fetch(ctx, k); err != nil && ctx.Err() != nil {
			return v.Overall(), ctx.Err()
		}
	}
	return v.Overall(), nil
}

func (v *View) Overall() Overall {
	return Summarize(v.cache.Snapshots())
}
