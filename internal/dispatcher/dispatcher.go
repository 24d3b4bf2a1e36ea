package dispatcher

import (
	"fmt"

	"github.com/asaskevich/EventBus"
)

type Subscriber interface {
	Subscribe(topic string, fn interface{})
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

type Dispatcher interface {
	Subscriber
	Emitter
}

// eventBusDispatcher delivers events synchronously, in the emitter's goroutine.
// Handlers must accept exactly the arguments of the topic; nil arguments are passed as zero values.
type eventBusDispatcher struct {
	bus EventBus.Bus
}

func (d *eventBusDispatcher) Subscribe(topic string, fn interface{}) {
	if err := d.bus.Subscribe(topic, fn); err != nil {
		panic(fmt.Sprintf("unable to subscribe to the %s topic: %v", topic, err))
	}
}

func (d *eventBusDispatcher) Emit(topic string, args ...interface{}) {
	d.bus.Publish(topic, args...)
}

func New() Dispatcher {
	return &eventBusDispatcher{
		bus: EventBus.New(),
	}
}
