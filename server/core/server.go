package core

import (
	"log"

	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"

	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// Server wires the websocket transport and the necs router into the session
// registry. Every inbound event becomes a registry call; the registry's
// mutex gives each one run-to-completion semantics.
type Server struct {
	name      string
	registry  *Registry
	transport *transports.WsServerTransport
}

func NewServer(name string) *Server {
	s := &Server{
		name:     name,
		registry: NewRegistry(),
	}
	s.setupRouterCallbacks()
	return s
}

// Registry exposes the session registry for the HTTP sidecar and tests.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Start blocks serving the websocket transport on the given port.
func (s *Server) Start(port uint) error {
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
		if err := client.SendMessage(messages.Welcome{ClientID: client.Id(), ServerName: s.name}); err != nil {
			log.Printf("[server] welcome to %s failed: %v", client.Id(), err)
		}
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.registry.Disconnect(client)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})

	router.On(func(client *router.NetworkClient, msg messages.JoinRandom) {
		s.registry.JoinRandom(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.CreateLobby) {
		s.registry.CreateLobby(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.JoinLobby) {
		s.registry.JoinLobby(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.PlayerReady) {
		s.registry.PlayerReady(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.PaddleMove) {
		s.registry.PaddleMove(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.PuckMove) {
		s.registry.PuckMove(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.PuckHit) {
		s.registry.PuckHit(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.GoalScored) {
		s.registry.GoalScored(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.RequestRematch) {
		s.registry.RequestRematch(client, msg)
	})
	router.On(func(client *router.NetworkClient, msg messages.LeaveGame) {
		s.registry.LeaveGame(client, msg)
	})
}
