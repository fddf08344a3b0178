package core

import "github.com/vovakirdan/wirechat-client/internal/gateway"

// LoginEventKind describes how a login attempt ended.
type LoginEventKind int

const (
	// LoginInputTooShort means the username was rejected locally.
	LoginInputTooShort LoginEventKind = iota
	// LoginFailed means the gateway refused or failed the connect request.
	LoginFailed
	// LoginSuccess means a session is established.
	LoginSuccess
)

func (k LoginEventKind) String() string {
	switch k {
	case LoginInputTooShort:
		return "input_too_short"
	case LoginFailed:
		return "login_failed"
	case LoginSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// LoginEvent is emitted exactly once per SubmitLogin call.
type LoginEvent struct {
	Kind LoginEventKind
	// Error is set for LoginFailed.
	Error string
}

// CreateChannelEventKind describes how a channel creation attempt ended.
type CreateChannelEventKind int

const (
	// CreateChannelError covers both local validation and gateway failures.
	CreateChannelError CreateChannelEventKind = iota
	// CreateChannelSuccess means the channel exists on the server.
	CreateChannelSuccess
)

func (k CreateChannelEventKind) String() string {
	switch k {
	case CreateChannelError:
		return "error"
	case CreateChannelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// CreateChannelEvent is emitted exactly once per SubmitChannelCreation call.
type CreateChannelEvent struct {
	Kind CreateChannelEventKind
	// Error is set for CreateChannelError.
	Error string
	// Channel is set for CreateChannelSuccess.
	Channel gateway.Channel
}
