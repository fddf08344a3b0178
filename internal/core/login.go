package core

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/event"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
)

// DefaultMinUsernameLength is the length a trimmed username must exceed.
const DefaultMinUsernameLength = 2

// LoginMediator turns login intents into gateway connect calls and
// republishes their outcome as LoginEvents.
type LoginMediator struct {
	gw        gateway.Gateway
	minLength int
	events    *event.Bus[LoginEvent]
	log       *zerolog.Logger
}

// NewLoginMediator constructs a mediator over gw.
// A non-positive minUsernameLength selects DefaultMinUsernameLength.
func NewLoginMediator(gw gateway.Gateway, minUsernameLength int, logger *zerolog.Logger) *LoginMediator {
	if minUsernameLength <= 0 {
		minUsernameLength = DefaultMinUsernameLength
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &LoginMediator{
		gw:        gw,
		minLength: minUsernameLength,
		events:    event.NewBus[LoginEvent]("login", logger),
		log:       logger,
	}
}

// Subscribe attaches to the login event stream. Events emitted before the
// call are not replayed.
func (m *LoginMediator) Subscribe() *event.Subscription[LoginEvent] {
	return m.events.Subscribe(event.DefaultBuffer)
}

// SubmitLogin starts a login attempt and returns immediately.
// A non-nil token selects the registered-user flow, nil the guest flow.
func (m *LoginMediator) SubmitLogin(ctx context.Context, username string, token *string) {
	username = strings.TrimSpace(username)
	if !m.isValidUsername(username) {
		m.log.Debug().Int("length", utf8.RuneCountInString(username)).Msg("username too short")
		m.emit(LoginEvent{Kind: LoginInputTooShort})
		return
	}

	if token != nil {
		m.log.Info().Str("user", username).Str("flow", "registered").Msg("connecting")
		m.gw.ConnectUser(gateway.User{ID: username, Name: username}, *token).
			Enqueue(ctx, m.complete(username, "registered"))
		return
	}

	m.log.Info().Str("user", username).Str("flow", "guest").Msg("connecting")
	m.gw.ConnectGuestUser(username, username).
		Enqueue(ctx, m.complete(username, "guest"))
}

func (m *LoginMediator) isValidUsername(username string) bool {
	return utf8.RuneCountInString(username) > m.minLength
}

func (m *LoginMediator) complete(username, flow string) func(gateway.Result[struct{}]) {
	return func(res gateway.Result[struct{}]) {
		if res.IsSuccess() {
			m.log.Info().Str("user", username).Str("flow", flow).Msg("login succeeded")
			m.emit(LoginEvent{Kind: LoginSuccess})
			return
		}
		m.log.Warn().Err(res.Err).Str("user", username).Str("flow", flow).Msg("login failed")
		m.emit(LoginEvent{
			Kind:  LoginFailed,
			Error: messageOr(gateway.MessageOf(res.Err), MsgUnknownLoginError),
		})
	}
}

func (m *LoginMediator) emit(ev LoginEvent) {
	m.events.Publish(ev)
}
