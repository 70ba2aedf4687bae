package core

// Sender is the outbound half of a client connection. *router.NetworkClient
// satisfies it; tests substitute recording fakes so the registry runs
// without sockets.
type Sender interface {
	Id() string
	SendMessage(message any) error
}
