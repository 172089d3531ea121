package audit

import "log"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher decouples audit writes from request handling. Events are
// queued to a single background worker; when the queue is full the event is
// dropped rather than blocking the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
