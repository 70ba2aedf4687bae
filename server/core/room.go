package core

import (
	"log"
	"time"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
)

// Room is one match instance: at most two members, their display names, the
// running score, and the canonical puck snapshot. The Registry is the only
// writer; rooms never outlive their membership.
type Room struct {
	ID      string
	Players map[string]Sender
	Names   map[string]string
	HostID  string
	Scores  hockey.Scores
	Ready   map[string]bool
	Puck    hockey.PuckState
	Phase   hockey.Phase

	// epoch invalidates pending timers when the room is reset or destroyed.
	epoch uint64
	timer *time.Timer
}

func newRoom(id string, host Sender, name string) *Room {
	return &Room{
		ID:      id,
		Players: map[string]Sender{host.Id(): host},
		Names:   map[string]string{host.Id(): name},
		HostID:  host.Id(),
		Ready:   make(map[string]bool),
		Puck:    hockey.ServePuck(),
		Phase:   hockey.PhaseWaiting,
	}
}

func (r *Room) add(c Sender, name string) {
	r.Players[c.Id()] = c
	r.Names[c.Id()] = name
}

func (r *Room) remove(id string) {
	delete(r.Players, id)
	delete(r.Names, id)
	delete(r.Ready, id)
}

func (r *Room) member(id string) bool {
	_, ok := r.Players[id]
	return ok
}

// other returns the member that is not id, or nil.
func (r *Room) other(id string) Sender {
	for pid, p := range r.Players {
		if pid != id {
			return p
		}
	}
	return nil
}

func (r *Room) host() Sender {
	return r.Players[r.HostID]
}

// side returns the end of the field a member defends in the host's frame.
func (r *Room) side(id string) hockey.Side {
	if id == r.HostID {
		return hockey.SideBottom
	}
	return hockey.SideTop
}

func (r *Room) broadcast(msg any) {
	for id, p := range r.Players {
		if err := p.SendMessage(msg); err != nil {
			log.Printf("[registry] send to %s failed: %v", id, err)
		}
	}
}

func (r *Room) sendTo(id string, msg any) {
	p, ok := r.Players[id]
	if !ok {
		return
	}
	if err := p.SendMessage(msg); err != nil {
		log.Printf("[registry] send to %s failed: %v", id, err)
	}
}

// winnerByScore returns the side that reached the win score, if any.
func (r *Room) winnerByScore() (hockey.Side, bool) {
	if r.Scores.Top >= hockey.WinScore {
		return hockey.SideTop, true
	}
	if r.Scores.Bottom >= hockey.WinScore {
		return hockey.SideBottom, true
	}
	return "", false
}
