package proto

// GuestRequest asks the server for an anonymous session.
type GuestRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// AuthResponse carries a session token.
type AuthResponse struct {
	Token string `json:"token"`
}

// UserResponse describes the user a token belongs to.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IsGuest  bool   `json:"is_guest"`
}

// CreateRoomRequest represents the create room request body.
type CreateRoomRequest struct {
	ID      string            `json:"id"`
	Type    string            `json:"type"`
	Name    string            `json:"name"`
	Members []string          `json:"members"`
	Extra   map[string]string `json:"extra,omitempty"`
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	ID          string `json:"id"`
	CID         string `json:"cid,omitempty"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
