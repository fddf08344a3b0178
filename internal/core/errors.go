package core

// User-facing messages emitted by the mediators.
const (
	MsgEnterChannelName  = "enter channel name"
	MsgUnknownLoginError = "Unknown error"
	MsgUnknownError      = "unknown error"
)

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
