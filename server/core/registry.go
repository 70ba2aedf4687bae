package core

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// Lobby failures, reported to the requesting connection only.
var (
	ErrLobbyNotFound  = errors.New("lobby code is invalid or the lobby has expired")
	ErrLobbyFull      = errors.New("lobby is full (2/2 players)")
	ErrAlreadyInLobby = errors.New("already a member of this lobby")
)

// Registry owns every active room and the matchmaking waiting slot. A single
// mutex serializes all inbound events and timer callbacks, so each message
// is handled to completion before the next; room state never races.
//
// Events referencing an unknown room are silent no-ops: the departure that
// destroyed the room has already notified the opponent.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room

	// Single-slot FIFO for anonymous matchmaking.
	waiting     Sender
	waitingName string

	countdownDelay time.Duration
	goalPauseDelay time.Duration
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:          make(map[string]*Room),
		countdownDelay: hockey.CountdownDelay,
		goalPauseDelay: hockey.GoalPauseDelay,
	}
}

// RoomCount reports the number of active rooms.
func (g *Registry) RoomCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}

// Room looks up a room snapshot by id. Test and inspection hook.
func (g *Registry) Room(id string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[id]
	return room, ok
}

// newRoomID allocates a 6-character uppercase code not currently in use.
// Callers hold g.mu.
func (g *Registry) newRoomID() string {
	for {
		id := strings.ToUpper(uuid.NewString()[:6])
		if _, taken := g.rooms[id]; !taken {
			return id
		}
	}
}

// JoinRandom pairs the caller with the waiting player, or parks the caller
// in the waiting slot. Calling again while already waiting is a no-op.
func (g *Registry) JoinRandom(c Sender, msg messages.JoinRandom) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.waiting == nil {
		g.waiting = c
		g.waitingName = msg.Name
		log.Printf("[registry] %s (%s) waiting for a random match", c.Id(), msg.Name)
		return
	}
	if g.waiting.Id() == c.Id() {
		return
	}

	host, hostName := g.waiting, g.waitingName
	g.waiting, g.waitingName = nil, ""

	room := newRoom(g.newRoomID(), host, hostName)
	room.add(c, msg.Name)
	room.Phase = hockey.PhaseReadyWait
	g.rooms[room.ID] = room

	log.Printf("[registry] paired %s and %s in room %s", host.Id(), c.Id(), room.ID)
	room.broadcast(messages.MatchFound{RoomID: room.ID, HostID: room.HostID, Names: room.Names})
}

// CreateLobby allocates a fresh code with the caller as host.
func (g *Registry) CreateLobby(c Sender, msg messages.CreateLobby) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room := newRoom(g.newRoomID(), c, msg.Name)
	g.rooms[room.ID] = room

	log.Printf("[registry] lobby %s created by %s (%s)", room.ID, c.Id(), msg.Name)
	room.sendTo(c.Id(), messages.LobbyCreated{LobbyID: room.ID})
}

// JoinLobby joins an existing lobby by code. Failures go back to the caller
// as LobbyError; no room state changes.
func (g *Registry) JoinLobby(c Sender, msg messages.JoinLobby) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.LobbyID]
	if !ok {
		g.sendError(c, ErrLobbyNotFound)
		return
	}
	if room.member(c.Id()) {
		g.sendError(c, ErrAlreadyInLobby)
		return
	}
	if len(room.Players) >= 2 {
		g.sendError(c, ErrLobbyFull)
		return
	}

	room.add(c, msg.Name)

	// Reset for a fresh match; this also covers a rejoin-for-rematch flow.
	room.Scores = hockey.Scores{}
	room.Ready = make(map[string]bool)
	room.Phase = hockey.PhaseReadyWait

	log.Printf("[registry] %s (%s) joined lobby %s", c.Id(), msg.Name, room.ID)
	room.broadcast(messages.MatchFound{RoomID: room.ID, HostID: room.HostID, Names: room.Names})
}

func (g *Registry) sendError(c Sender, reason error) {
	if err := c.SendMessage(messages.LobbyError{Reason: reason.Error()}); err != nil {
		log.Printf("[registry] send to %s failed: %v", c.Id(), err)
	}
}

// LeaveGame handles a voluntary departure.
func (g *Registry) LeaveGame(c Sender, msg messages.LeaveGame) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || !room.member(c.Id()) {
		return
	}
	g.departed(room, c.Id())
}

// Disconnect handles a transport-level drop: clear the waiting slot if the
// connection was parked there, and run the forfeit path for every room it
// belonged to.
func (g *Registry) Disconnect(c Sender) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.waiting != nil && g.waiting.Id() == c.Id() {
		g.waiting, g.waitingName = nil, ""
	}

	for _, room := range g.rooms {
		if room.member(c.Id()) {
			g.departed(room, c.Id())
		}
	}
}

// departed removes a member and converts the departure into a forfeit for
// the remaining player. Callers hold g.mu.
func (g *Registry) departed(room *Room, id string) {
	room.remove(id)
	log.Printf("[registry] %s left room %s", id, room.ID)

	for remaining := range room.Players {
		room.sendTo(remaining, messages.PlayerLeft{})
	}
	g.destroyRoom(room)
}

// destroyRoom drops the room and invalidates any pending timer. Callers
// hold g.mu.
func (g *Registry) destroyRoom(room *Room) {
	room.epoch++
	if room.timer != nil {
		room.timer.Stop()
		room.timer = nil
	}
	delete(g.rooms, room.ID)
	log.Printf("[registry] room %s destroyed", room.ID)
}

// schedule arms a single delayed transition for a room. The callback runs
// under the registry lock and only if the room still exists with the same
// epoch; a room destroyed mid-delay turns the firing into a no-op.
func (g *Registry) schedule(room *Room, delay time.Duration, fn func(*Room)) {
	id, epoch := room.ID, room.epoch
	room.timer = time.AfterFunc(delay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		current, ok := g.rooms[id]
		if !ok || current.epoch != epoch {
			return
		}
		fn(current)
	})
}
