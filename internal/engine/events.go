package engine

type EventType int

const (
	EventFoodEaten EventType = iota
	EventGameOver
	EventRestart
	EventTurn
)

func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	case EventTurn:
		return "turn"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Cell  Point // head cell
	Dir   Direction
	Score int
	Len   int
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for _, t := range []EventType{EventFoodEaten, EventGameOver, EventRestart, EventTurn} {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
