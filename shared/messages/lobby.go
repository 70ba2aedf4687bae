// Package messages defines the wire contract between client and server.
// Each struct is one event, routed by type through the necs router and
// serialized as msgpack.
package messages

// Welcome is sent by the server immediately after a connection is accepted.
// ClientID is the connection's identity in every later payload (host checks,
// name maps).
type Welcome struct {
	ClientID   string
	ServerName string
}

// JoinRandom enqueues the caller for anonymous matchmaking. Sending it again
// while already waiting is a no-op.
type JoinRandom struct {
	Name string
}

// CreateLobby allocates a fresh lobby code with the caller as host.
type CreateLobby struct {
	Name string
}

// JoinLobby joins an existing lobby by its 6-character code.
type JoinLobby struct {
	LobbyID string
	Name    string
}

// LobbyCreated carries the code to share with the second player.
type LobbyCreated struct {
	LobbyID string
}

// LobbyError reports a create/join failure to the requesting connection
// only. The lobby screen stays up; the user re-enters a code.
type LobbyError struct {
	Reason string
}

// MatchFound tells both members they now share a room. The member whose
// ClientID equals HostID runs the canonical simulation.
type MatchFound struct {
	RoomID string
	HostID string
	Names  map[string]string
}
