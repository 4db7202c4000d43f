package game

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pixil98/go-chat/internal/message"
	"github.com/pixil98/go-chat/internal/storage"
)

// RoomInstance is a live room: its stored definition plus current
// occupants. Membership is a weak reference; the registry owns avatars.
type RoomInstance struct {
	id   string
	room *Room

	exits   map[Direction]string
	avatars map[string]*Avatar // keyed by handle
}

func (ri *RoomInstance) Id() string {
	return ri.id
}

func (ri *RoomInstance) Name() string {
	return ri.room.Name
}

func (ri *RoomInstance) Description() string {
	return ri.room.Description
}

// Occupants returns the room's avatars sorted by display name so rosters
// render in a stable order.
func (ri *RoomInstance) Occupants() []*Avatar {
	out := make([]*Avatar, 0, len(ri.avatars))
	for _, a := range ri.avatars {
		out = append(out, a)
	}
	slices.SortFunc(out, func(x, y *Avatar) int {
		return strings.Compare(x.Name(), y.Name())
	})
	return out
}

// ExitInfo describes one exit for display purposes.
type ExitInfo struct {
	Direction Direction
	RoomId    string
	RoomName  string
}

// World is the directed graph of rooms plus an index of which room each
// avatar currently occupies. Rooms are built once at startup and never
// added or destroyed at runtime.
type World struct {
	mu        sync.RWMutex
	rooms     map[string]*RoomInstance
	locations map[string]string // avatar handle -> room id

	store storage.Storer[*Room]
}

type WorldOpt func(*World)

// WithStore attaches the room store the world re-saves its topology
// through on each driver tick.
func WithStore(st storage.Storer[*Room]) WorldOpt {
	return func(w *World) {
		w.store = st
	}
}

// NewWorld builds room instances from stored definitions, verifying that
// every exit resolves to a known room.
func NewWorld(defs map[string]*Room, opts ...WorldOpt) (*World, error) {
	w := &World{
		rooms:     make(map[string]*RoomInstance, len(defs)),
		locations: map[string]string{},
	}

	for id, def := range defs {
		ri := &RoomInstance{
			id:      id,
			room:    def,
			exits:   map[Direction]string{},
			avatars: map[string]*Avatar{},
		}
		for dir, dest := range def.Exits {
			d, ok := ParseDirection(dir)
			if !ok {
				return nil, fmt.Errorf("room %q: exit %q: unknown direction", id, dir)
			}
			ri.exits[d] = dest
		}
		w.rooms[id] = ri
	}

	// Exits may only point at rooms that exist
	for id, ri := range w.rooms {
		for d, dest := range ri.exits {
			if _, ok := w.rooms[dest]; !ok {
				return nil, fmt.Errorf("room %q: exit %s: %w: %q", id, d, ErrRoomNotFound, dest)
			}
		}
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Room returns the instance for a room id, or nil.
func (w *World) Room(id string) *RoomInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.rooms[id]
}

// Connect adds an exit from room a to room b. With bidirectional set, the
// reverse edge is added to b as well.
func (w *World) Connect(a, b string, d Direction, bidirectional bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ra, ok := w.rooms[a]
	if !ok {
		return fmt.Errorf("connecting %q: %w", a, ErrRoomNotFound)
	}
	rb, ok := w.rooms[b]
	if !ok {
		return fmt.Errorf("connecting %q: %w", b, ErrRoomNotFound)
	}

	ra.exits[d] = b
	if bidirectional {
		rb.exits[d.Reverse()] = a
	}
	return nil
}

// ExistsExit reports whether the room has an exit in the given direction.
func (w *World) ExistsExit(roomId string, d Direction) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ri, ok := w.rooms[roomId]
	if !ok {
		return false
	}
	_, ok = ri.exits[d]
	return ok
}

// NextRoom resolves the destination of an exit.
func (w *World) NextRoom(roomId string, d Direction) (*RoomInstance, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.nextRoomLocked(roomId, d)
}

func (w *World) nextRoomLocked(roomId string, d Direction) (*RoomInstance, error) {
	ri, ok := w.rooms[roomId]
	if !ok {
		return nil, fmt.Errorf("room %q: %w", roomId, ErrRoomNotFound)
	}
	dest, ok := ri.exits[d]
	if !ok {
		return nil, fmt.Errorf("room %q going %s: %w", roomId, d, ErrNoSuchExit)
	}
	return w.rooms[dest], nil
}

// Exits lists a room's exits in fixed direction order with their
// destination names resolved.
func (w *World) Exits(roomId string) []ExitInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ri, ok := w.rooms[roomId]
	if !ok {
		return nil
	}

	var out []ExitInfo
	for _, d := range Directions {
		dest, ok := ri.exits[d]
		if !ok {
			continue
		}
		out = append(out, ExitInfo{Direction: d, RoomId: dest, RoomName: w.rooms[dest].Name()})
	}
	return out
}

// FindByAvatar returns the room containing the avatar, or nil if the
// avatar is not placed (mid-onboarding).
func (w *World) FindByAvatar(a *Avatar) *RoomInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()

	roomId, ok := w.locations[a.Handle()]
	if !ok {
		return nil
	}
	return w.rooms[roomId]
}

// AddAvatar places an avatar into a room and indexes the placement.
func (w *World) AddAvatar(roomId string, a *Avatar) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ri, ok := w.rooms[roomId]
	if !ok {
		return fmt.Errorf("placing avatar in %q: %w", roomId, ErrRoomNotFound)
	}
	ri.avatars[a.Handle()] = a
	w.locations[a.Handle()] = roomId
	return nil
}

// RemoveAvatar removes an avatar from whatever room holds it. Removing an
// avatar that is not placed is a no-op.
func (w *World) RemoveAvatar(a *Avatar) {
	w.mu.Lock()
	defer w.mu.Unlock()

	roomId, ok := w.locations[a.Handle()]
	if !ok {
		return
	}
	delete(w.rooms[roomId].avatars, a.Handle())
	delete(w.locations, a.Handle())
}

// MoveAvatar transfers an avatar through an exit of its current room and
// returns the destination. The exit is checked before any mutation, so a
// failed move leaves membership untouched.
func (w *World) MoveAvatar(a *Avatar, d Direction) (*RoomInstance, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fromId, ok := w.locations[a.Handle()]
	if !ok {
		return nil, fmt.Errorf("moving avatar %q: %w", a.Handle(), ErrAvatarNotFound)
	}

	to, err := w.nextRoomLocked(fromId, d)
	if err != nil {
		return nil, err
	}

	delete(w.rooms[fromId].avatars, a.Handle())
	to.avatars[a.Handle()] = a
	w.locations[a.Handle()] = to.id
	return to, nil
}

// Broadcast buffers a message to every occupant of a room, optionally
// skipping one avatar. Delivery to the wire happens at the next flush.
func (w *World) Broadcast(roomId string, m *message.Message, excluding *Avatar) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ri, ok := w.rooms[roomId]
	if !ok {
		return
	}
	for _, a := range ri.avatars {
		if a == excluding {
			continue
		}
		a.Send(m)
	}
}

// Tick re-saves the room definitions through the attached store. Room
// topology is static at runtime, so this is a plain write-back of the
// loaded definitions; avatar state is never persisted.
func (w *World) Tick(ctx context.Context) error {
	if w.store == nil {
		return nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	for id, ri := range w.rooms {
		if err := w.store.Save(id, ri.room); err != nil {
			return fmt.Errorf("saving room %q: %w", id, err)
		}
	}
	return nil
}
