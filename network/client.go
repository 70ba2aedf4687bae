// Package network wraps the websocket connection to the relay server and
// surfaces inbound events as drainable channels polled once per frame.
package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"

	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

// Client manages a WebSocket connection to the relay server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	clientID   string
	serverName string
	conn       *websocket.Conn

	matchFoundCh     chan messages.MatchFound
	lobbyCreatedCh   chan messages.LobbyCreated
	lobbyErrorCh     chan messages.LobbyError
	opponentReadyCh  chan messages.OpponentReady
	countdownCh      chan messages.CountdownStart
	startGameCh      chan messages.StartGame
	scoreCh          chan messages.ScoreUpdate
	resetPuckCh      chan messages.ResetPuck
	gameOverCh       chan messages.GameOver
	playerLeftCh     chan messages.PlayerLeft
	rematchCh        chan messages.RematchAccepted
	puckHitCh        chan messages.PuckHit
	opponentPaddleCh chan messages.OpponentPaddle // size-1 buffered; latest wins
	puckUpdateCh     chan messages.PuckUpdate     // size-1 buffered; latest wins
}

func NewClient() *Client {
	return &Client{
		state:            StateDisconnected,
		matchFoundCh:     make(chan messages.MatchFound, 4),
		lobbyCreatedCh:   make(chan messages.LobbyCreated, 4),
		lobbyErrorCh:     make(chan messages.LobbyError, 4),
		opponentReadyCh:  make(chan messages.OpponentReady, 4),
		countdownCh:      make(chan messages.CountdownStart, 4),
		startGameCh:      make(chan messages.StartGame, 4),
		scoreCh:          make(chan messages.ScoreUpdate, 4),
		resetPuckCh:      make(chan messages.ResetPuck, 4),
		gameOverCh:       make(chan messages.GameOver, 4),
		playerLeftCh:     make(chan messages.PlayerLeft, 4),
		rematchCh:        make(chan messages.RematchAccepted, 4),
		puckHitCh:        make(chan messages.PuckHit, 8),
		opponentPaddleCh: make(chan messages.OpponentPaddle, 1),
		puckUpdateCh:     make(chan messages.PuckUpdate, 1),
	}
}

// Connect dials the server in a background goroutine and registers the
// router callbacks for every server event.
func (c *Client) Connect(address string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.Welcome) {
		log.Printf("[client] welcome: id=%s server=%s", msg.ClientID, msg.ServerName)
		c.mu.Lock()
		c.clientID = msg.ClientID
		c.serverName = msg.ServerName
		c.mu.Unlock()
	})

	registerBuffered(c.matchFoundCh)
	registerBuffered(c.lobbyCreatedCh)
	registerBuffered(c.lobbyErrorCh)
	registerBuffered(c.opponentReadyCh)
	registerBuffered(c.countdownCh)
	registerBuffered(c.startGameCh)
	registerBuffered(c.scoreCh)
	registerBuffered(c.resetPuckCh)
	registerBuffered(c.gameOverCh)
	registerBuffered(c.playerLeftCh)
	registerBuffered(c.rematchCh)
	registerBuffered(c.puckHitCh)
	registerLatest(c.opponentPaddleCh)
	registerLatest(c.puckUpdateCh)

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// registerBuffered routes an event type into a channel, dropping when full.
func registerBuffered[T any](ch chan T) {
	router.On(func(_ *router.NetworkClient, msg T) {
		select {
		case ch <- msg:
		default:
		}
	})
}

// registerLatest keeps only the most recent value: stale entries are drained
// before pushing, so a slow frame never renders an old snapshot.
func registerLatest[T any](ch chan T) {
	router.On(func(_ *router.NetworkClient, msg T) {
		select {
		case <-ch:
		default:
		}
		ch <- msg
	})
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// ClientID is this connection's identity as assigned by the server.
func (c *Client) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// Drain and poll helpers, called once per frame by the active scene.

func (c *Client) DrainMatchFound() []messages.MatchFound { return drainChan(c.matchFoundCh) }
func (c *Client) DrainLobbyCreated() []messages.LobbyCreated {
	return drainChan(c.lobbyCreatedCh)
}
func (c *Client) DrainLobbyErrors() []messages.LobbyError { return drainChan(c.lobbyErrorCh) }
func (c *Client) DrainOpponentReady() []messages.OpponentReady {
	return drainChan(c.opponentReadyCh)
}
func (c *Client) DrainCountdowns() []messages.CountdownStart { return drainChan(c.countdownCh) }
func (c *Client) DrainStartGame() []messages.StartGame { return drainChan(c.startGameCh) }
func (c *Client) DrainScores() []messages.ScoreUpdate { return drainChan(c.scoreCh) }
func (c *Client) DrainResetPuck() []messages.ResetPuck { return drainChan(c.resetPuckCh) }
func (c *Client) DrainGameOver() []messages.GameOver { return drainChan(c.gameOverCh) }
func (c *Client) DrainPlayerLeft() []messages.PlayerLeft { return drainChan(c.playerLeftCh) }
func (c *Client) DrainRematchAccepted() []messages.RematchAccepted {
	return drainChan(c.rematchCh)
}
func (c *Client) DrainPuckHits() []messages.PuckHit { return drainChan(c.puckHitCh) }

// LatestOpponentPaddle returns the most recent opponent paddle position, or
// false. Non-blocking.
func (c *Client) LatestOpponentPaddle() (messages.OpponentPaddle, bool) {
	select {
	case msg := <-c.opponentPaddleCh:
		return msg, true
	default:
		return messages.OpponentPaddle{}, false
	}
}

// LatestPuckUpdate returns the most recent canonical puck snapshot, or
// false. Non-blocking.
func (c *Client) LatestPuckUpdate() (messages.PuckUpdate, bool) {
	select {
	case msg := <-c.puckUpdateCh:
		return msg, true
	default:
		return messages.PuckUpdate{}, false
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
