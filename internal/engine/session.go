package engine

// Session is the mutable holder the desktop loop drives. Tick and Turn are
// called from the same goroutine; there is no locking.
type Session struct {
	state State
	rng   *Rand
	bus   *EventBus

	Games     int // games started, including the current one
	BestScore int
}

func NewSession(seed uint64, bus *EventBus) *Session {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Session{
		state: NewState(),
		rng:   NewRand(seed),
		bus:   bus,
		Games: 1,
	}
}

// Bus returns the session's event bus.
func (s *Session) Bus() *EventBus { return s.bus }

// State returns the live state. Callers must not retain Snake across ticks;
// use Snapshot for that.
func (s *Session) State() State { return s.state }

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() State { return s.state.Clone() }

// Tick advances the game by one step and emits the resulting events.
func (s *Session) Tick() {
	prev := s.state
	s.state = Step(prev, s.rng)
	cur := s.state

	if cur.Score > prev.Score {
		if cur.Score > s.BestScore {
			s.BestScore = cur.Score
		}
		s.bus.Emit(Event{Type: EventFoodEaten, Cell: cur.Head(), Score: cur.Score, Len: cur.Len()})
	}
	if cur.GameOver && !prev.GameOver {
		s.bus.Emit(Event{Type: EventGameOver, Cell: cur.Head(), Score: cur.Score, Len: cur.Len()})
	}
}

// Turn queues a direction change. It reports whether the change was accepted.
func (s *Session) Turn(d Direction) bool {
	if s.state.GameOver {
		return false
	}
	next := SetDirection(s.state, d)
	if next.Direction == s.state.Direction {
		return false
	}
	s.state = next
	s.bus.Emit(Event{Type: EventTurn, Cell: next.Head(), Dir: d, Score: next.Score, Len: next.Len()})
	return true
}

// Restart resets the game, but only once it is over.
func (s *Session) Restart() bool {
	if !s.state.GameOver {
		return false
	}
	s.state = Reset()
	s.Games++
	s.bus.Emit(Event{Type: EventRestart, Cell: s.state.Head(), Len: s.state.Len()})
	return true
}
