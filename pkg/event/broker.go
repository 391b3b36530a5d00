package event

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/event/models"
)

type EventBroker interface {
	Subscribe(name string, eventTypes ...string) <-chan models.IEvent
	Publish(event models.IEvent)
}

type subscription struct {
	name string
	ch   chan models.IEvent
}

// EventBrokerImpl never blocks publisher, events are dropped for subscribers which fall behind.
type EventBrokerImpl struct {
	mtx     sync.RWMutex
	subs    map[string][]subscription
	bSize   int
	dropped atomic.Int64
	l       *zap.SugaredLogger
}

func NewEventBrokerImpl(bufferSize int, l *zap.Logger) *EventBrokerImpl {
	return &EventBrokerImpl{
		subs:  make(map[string][]subscription),
		bSize: bufferSize,
		l:     l.Sugar(),
	}
}

func (b *EventBrokerImpl) Subscribe(name string, eventTypes ...string) <-chan models.IEvent {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	ch := make(chan models.IEvent, b.bSize)
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], subscription{name: name, ch: ch})
	}
	return ch
}

func (b *EventBrokerImpl) Publish(event models.IEvent) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	for _, s := range b.subs[event.EventType()] {
		select {
		case s.ch <- event:
		default:
			b.dropped.Add(1)
			b.l.With(zap.String("type", event.EventType()), zap.String("subscriber", s.name)).
				Warnf("dropping published event, channel is full: length=%d", len(s.ch))
		}
	}
}

// Dropped returns total number of events not delivered to subscribers.
func (b *EventBrokerImpl) Dropped() int64 {
	return b.dropped.Load()
}

func (b *EventBrokerImpl) ShutDown(_ context.Context) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	closed := make(map[chan models.IEvent]bool)
	for et, subs := range b.subs {
		for _, s := range subs {
			if !closed[s.ch] {
				close(s.ch)
				closed[s.ch] = true
			}
		}
		delete(b.subs, et)
	}
	b.l.Info("event broker shutdown completed")
	return nil
}
