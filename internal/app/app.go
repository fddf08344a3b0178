package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/config"
	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/gateway/wirechat"
	"github.com/vovakirdan/wirechat-client/internal/store"
	"github.com/vovakirdan/wirechat-client/internal/store/sqlite"
	"github.com/vovakirdan/wirechat-client/internal/ui"
)

// App wires together the gateway, the mediators and the screens.
type App struct {
	cfg      *config.Config
	store    store.SessionStore
	client   *wirechat.Client
	login    *core.LoginMediator
	channels *core.ChannelMediator
	log      *zerolog.Logger

	programOptions []tea.ProgramOption
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger, opts ...tea.ProgramOption) (*App, error) {
	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	logger.Info().Str("db_path", cfg.DatabasePath).Msg("session store initialized")

	client, err := wirechat.New(wirechat.Options{
		ServerURL:      cfg.ServerURL,
		RequestTimeout: cfg.RequestTimeout,
		RetryMax:       cfg.RetryMax,
		Realtime:       cfg.Realtime,
		Sessions:       st,
		Logger:         logger,
	})
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init gateway: %w", err)
	}

	return &App{
		cfg:            cfg,
		store:          st,
		client:         client,
		login:          core.NewLoginMediator(client, cfg.MinUsernameLength, logger),
		channels:       core.NewChannelMediator(client, logger),
		log:            logger,
		programOptions: opts,
	}, nil
}

// Model builds the root screen model, pre-filled from the last session.
func (a *App) Model(ctx context.Context) ui.Model {
	var token *string
	if a.cfg.Token != "" {
		token = &a.cfg.Token
	}

	return ui.New(ctx, ui.Options{
		Login:              a.login,
		Channels:           a.channels,
		Gateway:            a.client,
		Messenger:          a.client,
		Token:              token,
		Username:           a.lastUsername(ctx),
		ChannelTypes:       a.cfg.ChannelTypes,
		DefaultChannelType: a.cfg.DefaultChannelType,
	})
}

func (a *App) lastUsername(ctx context.Context) string {
	sess, err := a.store.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSession) {
			a.log.Warn().Err(err).Msg("failed to load last session")
		}
		return ""
	}
	return sess.UserID
}

// Run shows the screens and blocks until the user quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	defer a.cleanup()

	model := a.Model(ctx)
	defer model.Close()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.programOptions...)
	program := tea.NewProgram(model, opts...)

	a.log.Info().Str("server", a.cfg.ServerURL).Msg("starting wirechat client")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	a.log.Info().Msg("client stopped")
	return nil
}

// cleanup closes the connection and the database.
func (a *App) cleanup() {
	a.client.Close()
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
