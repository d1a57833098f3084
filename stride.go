package stride

import (
	"log/slog"
	"sync"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/player"
	"github.com/stride-anim/stride/player/component"
)

// System owns every animated character in the running game and ticks them at
// the host's simulation rate.
type System struct {
	log     *slog.Logger
	library *animation.Library

	playerMutex sync.Mutex
	players     map[entity.ID]*player.Player
}

// New returns a system that spawns characters using poses from the given
// library.
func New(log *slog.Logger, library *animation.Library) *System {
	return &System{
		log:     log,
		library: library,
		players: make(map[entity.ID]*player.Player),
	}
}

// Library returns the pose library characters are animated from.
func (s *System) Library() *animation.Library {
	return s.library
}

// Spawn creates a character from the given config, registers its components
// and starts ticking it. An incomplete pose library is tolerated but warned
// about, since the missing poses will hold the blend at whatever is loaded.
func (s *System) Spawn(conf player.Config) (*player.Player, error) {
	p, err := player.New(s.log, conf)
	if err != nil {
		return nil, err
	}
	if missing := s.library.Missing(); len(missing) > 0 {
		s.log.Warn("spawning with incomplete pose library", "missing", len(missing))
	}
	component.Register(p)

	s.playerMutex.Lock()
	s.players[p.EntityID()] = p
	s.playerMutex.Unlock()
	return p, nil
}

// Player returns the character with the given entity handle.
func (s *System) Player(id entity.ID) (*player.Player, bool) {
	s.playerMutex.Lock()
	defer s.playerMutex.Unlock()
	p, ok := s.players[id]
	return p, ok
}

// Remove closes the character with the given entity handle and stops ticking
// it.
func (s *System) Remove(id entity.ID) {
	s.playerMutex.Lock()
	p, ok := s.players[id]
	delete(s.players, id)
	s.playerMutex.Unlock()
	if ok {
		p.Close()
	}
}

// Tick advances every spawned character by dt seconds.
func (s *System) Tick(dt float32) {
	s.playerMutex.Lock()
	players := make([]*player.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	s.playerMutex.Unlock()

	for _, p := range players {
		p.Tick(dt)
	}
}

// Close closes every spawned character.
func (s *System) Close() {
	s.playerMutex.Lock()
	defer s.playerMutex.Unlock()
	for id, p := range s.players {
		p.Close()
		delete(s.players, id)
	}
}
