package game

type EventType int

const (
	EventLapCompleted EventType = iota
	EventCrash
	EventWallHit
	EventRaceFinished
	EventRecordSet
	EventCountdownTick
	EventCountdownGo
)

type Event struct {
	Type EventType
	Lap  int     // lap number for lap/finish events
	Data int     // generic payload (crash kind, countdown value)
	Time float64 // lap or race time in seconds where it applies
}

type EventHandler func(Event)

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

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
