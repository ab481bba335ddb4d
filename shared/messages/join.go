package messages

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// The board is built from the named level and the server's tick rate.
type JoinAccepted struct {
	PlayerID   int32
	ServerName string
	TickRate   int
	Level      string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
