package main

import (
	"math/rand"
	"sync"
)

const roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RoomManager owns the live room set and the player-to-room index
type RoomManager struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	playerRoom map[string]string
	db         *DB
	analytics  *Analytics
}

func NewRoomManager(db *DB, analytics *Analytics) *RoomManager {
	return &RoomManager{
		rooms:      make(map[string]*Room),
		playerRoom: make(map[string]string),
		db:         db,
		analytics:  analytics,
	}
}

// generateRoomCode picks a 4-letter code not currently in use. Caller
// holds the manager lock.
func (rm *RoomManager) generateRoomCode() string {
	for {
		b := make([]byte, 4)
		for i := range b {
			b[i] = roomCodeLetters[rand.Intn(len(roomCodeLetters))]
		}
		code := string(b)
		if _, taken := rm.rooms[code]; !taken {
			return code
		}
	}
}

// CreateRoom opens a room with the creator as host and first member
func (rm *RoomManager) CreateRoom(playerID, name, color string) (*Room, *Player) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if prev, ok := rm.playerRoom[playerID]; ok {
		if room, live := rm.rooms[prev]; live {
			rm.leaveLocked(room, playerID)
		}
		delete(rm.playerRoom, playerID)
	}

	code := rm.generateRoomCode()
	room := NewRoom(code, playerID, rm.db, rm.analytics)
	p, _ := room.AddPlayer(playerID, name, color, false)
	rm.rooms[code] = room
	rm.playerRoom[playerID] = code

	if rm.analytics != nil {
		rm.analytics.Track(EvtRoomCreated, 0, code, "")
		rm.analytics.SetActiveRooms(len(rm.rooms))
	}
	return room, p
}

// JoinRoom adds a player to an existing room. Returns a rejection reason
// or "".
func (rm *RoomManager) JoinRoom(code, playerID, name, color string) (*Room, *Player, string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, ok := rm.rooms[code]
	if !ok {
		return nil, nil, "Room not found"
	}
	if prev, has := rm.playerRoom[playerID]; has && prev != code {
		if prevRoom, live := rm.rooms[prev]; live {
			rm.leaveLocked(prevRoom, playerID)
		}
		delete(rm.playerRoom, playerID)
	}

	p, reason := room.AddPlayer(playerID, name, color, false)
	if reason != "" {
		return nil, nil, reason
	}
	rm.playerRoom[playerID] = code
	return room, p, ""
}

// Get returns a live room by code
func (rm *RoomManager) Get(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// GetByPlayer returns the room a player currently belongs to
func (rm *RoomManager) GetByPlayer(playerID string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	code, ok := rm.playerRoom[playerID]
	if !ok {
		return nil
	}
	return rm.rooms[code]
}

// RemovePlayer detaches a player from their room, tearing the room down
// once no humans remain
func (rm *RoomManager) RemovePlayer(playerID string) *Room {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code, ok := rm.playerRoom[playerID]
	if !ok {
		return nil
	}
	delete(rm.playerRoom, playerID)
	room, live := rm.rooms[code]
	if !live {
		return nil
	}
	if empty := rm.leaveLocked(room, playerID); empty {
		return nil
	}
	return room
}

// leaveLocked removes one player and reaps the room if it is down to bots
// only. Caller holds the manager lock. Reports whether the room was reaped.
func (rm *RoomManager) leaveLocked(room *Room, playerID string) bool {
	_, empty := room.RemovePlayer(playerID)
	if empty {
		delete(rm.rooms, room.Code)
		if rm.analytics != nil {
			rm.analytics.SetActiveRooms(len(rm.rooms))
		}
		return true
	}
	return false
}

// Rooms snapshots the live room list for the tick loop
func (rm *RoomManager) Rooms() []*Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	list := make([]*Room, 0, len(rm.rooms))
	for _, room := range rm.rooms {
		list = append(list, room)
	}
	return list
}
