package view

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/client/query"
	"github.com/innovatehub/collab/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(kind models.Kind, status query.Status, fetching bool, err error) *query.State {
	return &query.State{Kind: kind, Status: status, Fetching: fetching, Err: err}
}

func TestSummarize(t *testing.T) {
	errD := &models.FetchError{Kind: models.KindDocument, Err: errors.New("D")}
	errF := &models.FetchError{Kind: models.KindFile, Err: errors.New("F")}

	tests := []struct {
		name   string
		states []*query.State
		want   Overall
	}{
		{
			name: "all ready",
			states: []*query.State{
				state(models.KindProject, query.StatusReady, false, nil),
				state(models.KindDocument, query.StatusReady, false, nil),
				state(models.KindFile, query.StatusReady, false, nil),
			},
			want: Overall{},
		},
		{
			name: "one loading",
			states: []*query.State{
				state(models.KindProject, query.StatusReady, false, nil),
				state(models.KindDocument, query.StatusAbsent, true, nil),
				state(models.KindFile, query.StatusReady, false, nil),
			},
			want: Overall{Loading: true},
		},
		{
			name: "revalidating is not loading",
			states: []*query.State{
				state(models.KindProject, query.StatusReady, true, nil),
				state(models.KindDocument, query.StatusReady, false, nil),
				state(models.KindFile, query.StatusReady, false, nil),
			},
			want: Overall{},
		},
		{
			name: "documents error wins over files error",
			states: []*query.State{
				state(models.KindFile, query.StatusFailed, false, errF),
				state(models.KindProject, query.StatusReady, false, nil),
				state(models.KindDocument, query.StatusFailed, false, errD),
			},
			want: Overall{Err: errD},
		},
		{
			name: "loading and error together",
			states: []*query.State{
				state(models.KindProject, query.StatusAbsent, true, nil),
				state(models.KindDocument, query.StatusReady, false, nil),
				state(models.KindFile, query.StatusFailed, false, errF),
			},
			want: Overall{Loading: true, Err: errF},
		},
		{
			name: "nothing fetched yet",
			want: Overall{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.states))
		})
	}
}

type countingSource struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

func (s *countingSource) Select(ctx context.Context, table string, columns []string) ([]models.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[table]++
	return nil, s.fail[table]
}

func TestView_InitializeIsIdempotent(t *testing.T) {
	src := &countingSource{calls: map[string]int{}, fail: map[string]error{"files": errors.New("F")}}
	cache := query.NewCache(src, logging.Nop())
	defer cache.Close()
	v := New(cache)

	v.Initialize()
	v.Initialize()
	o, err := v.Wait(context.Background())
	require.NoError(t, err)
	v.Initialize()

	src.mu.Lock()
	assert.Equal(t, map[string]int{"projects": 1, "documents": 1, "files": 1}, src.calls)
	src.mu.Unlock()

	assert.False(t, o.Loading)
	var fe *models.FetchError
	require.ErrorAs(t, o.Err, &fe)
	assert.Equal(t, models.KindFile, fe.Kind)
}

type blockingSource struct{}

func (blockingSource) Select(ctx context.Context, table string, columns []string) ([]models.Row, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestView_WaitHonoursContext(t *testing.T) {
	src := blockingSource{}
	cache := query.NewCache(src, logging.Nop())
	defer cache.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, err := New(cache).Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, o.Loading)
}
