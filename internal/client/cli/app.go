package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/innovatehub/collab/internal/client/chat"
	"github.com/innovatehub/collab/internal/client/client"
	"github.com/innovatehub/collab/internal/client/config"
	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/client/mutation"
	"github.com/innovatehub/collab/internal/client/query"
	"github.com/innovatehub/collab/internal/client/view"
	"github.com/innovatehub/collab/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	client     client.Client
	cache      *query.Cache
	dispatcher *mutation.Dispatcher
	view       *view.View
	chat       *chat.Assistant

	reader  *bufio.Reader
	out     io.Writer
	prompts io.Writer

	mu   sync.Mutex
	mode Mode
	tab  models.Kind
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, "text", c.LogLevel)

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	a := newApp(c, apiClient, logger, os.Stdin, os.Stdout)
	a.prompts = promptWriter(os.Stdout)
	return a, nil
}

func newApp(c *config.Config, cl client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	cache := query.NewCache(cl, logger)
	return &App{
		config:     c,
		logger:     logger.With("module", "cli"),
		client:     cl,
		cache:      cache,
		dispatcher: mutation.NewDispatcher(cl, cache, c.StorageBucket, logger),
		view:       view.New(cache),
		chat:       chat.NewAssistant(c.ChatReplyDelay),
		reader:     bufio.NewReader(in),
		out:        out,
		prompts:    out,
		tab:        models.KindProject,
	}
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(ctx, "switched mode", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) activeTab() models.Kind {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tab
}

func (a *App) getStatus() string {
	s := tabs[a.activeTab()].title
	if m := a.Mode(); m != "" {
		s = s + " " + string(m)
	}
	return "(" + s + ")"
}

// Run renders the workspace, loads every list and serves the REPL until
// the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderHeader(a.out)
	a.logger.Info(ctx, "connecting", "endpoint", a.config.ServerEndpointAddr)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	go a.watchUpdates(ctx)

	_ = a.ShowTab(ctx, a.activeTab())
	printlnFn("Type 'help' for commands")

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) close(ctx context.Context) {
	a.chat.Close()
	a.cache.Close()
	if err := a.client.Close(); err != nil {
		a.logger.Warn(ctx, "closing client", "error", err)
	}
}

// checkOnline pings the backend once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.client.Ping(ctx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher probes the backend every interval until ctx is
// done. The mode is only shown in the prompt; requests are never blocked
// on it.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// watchUpdates logs every cache transition until ctx is done.
func (a *App) watchUpdates(ctx context.Context) {
	updates, unsubscribe := a.cache.Subscribe()
	defer unsubscribe()

	for {
		select {
		case kind, ok := <-updates:
			if !ok {
				return
			}
			st := a.cache.Snapshot(kind)
			a.logger.Debug(ctx, "list updated",
				"kind", kind.String(),
				"status", st.Status.String(),
				"fetching", st.Fetching,
				"records", len(st.Records),
			)
		case <-ctx.Done():
			return
		}
	}
}
