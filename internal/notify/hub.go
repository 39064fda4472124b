// Package notify fans state-change events out to whichever screens are
// open, so a menu edit on the manage screen re-renders the browse
// screen without the two knowing about each other.
package notify

import (
	"encoding/json"
	"sync"
)

// Topics events are published under.
const (
	TopicMenu   = "menu"
	TopicDrinks = "drinks"
	TopicOrder  = "order"
)

// Event is a state-change notification.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// topicEvent routes an event to one topic's subscribers.
type topicEvent struct {
	Topic string
	Event Event
}

// Subscriber receives events for the topics it registered with.
type Subscriber struct {
	hub    *Hub
	topics []string

	// C delivers events. Closed when the subscriber is closed.
	C chan Event
}

// Close unregisters the subscriber; its channel is closed by the hub.
func (s *Subscriber) Close() {
	s.hub.unregister <- s
}

// Hub maintains the set of live subscribers per topic and broadcasts
// events to them.
type Hub struct {
	rooms map[string]map[*Subscriber]bool

	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan *topicEvent

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Subscriber]bool),
		register:   make(chan *Subscriber),
		unregister: make(chan *Subscriber),
		broadcast:  make(chan *topicEvent, 256),
	}
}

// Run starts the hub's main loop. Call as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			for _, topic := range sub.topics {
				if h.rooms[topic] == nil {
					h.rooms[topic] = make(map[*Subscriber]bool)
				}
				h.rooms[topic][sub] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			alive := false
			for _, topic := range sub.topics {
				if subs, ok := h.rooms[topic]; ok {
					if subs[sub] {
						alive = true
						delete(subs, sub)
						if len(subs) == 0 {
							delete(h.rooms, topic)
						}
					}
				}
			}
			if alive {
				close(sub.C)
			}
			h.mu.Unlock()

		case te := <-h.broadcast:
			h.mu.Lock()
			for sub := range h.rooms[te.Topic] {
				select {
				case sub.C <- te.Event:
				default:
					// Subscriber stopped draining; drop it.
					h.drop(sub)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop removes a stalled subscriber from every topic. Caller holds mu.
func (h *Hub) drop(sub *Subscriber) {
	for _, topic := range sub.topics {
		if subs, ok := h.rooms[topic]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.rooms, topic)
			}
		}
	}
	close(sub.C)
}

// Subscribe registers a new subscriber for the given topics.
func (h *Hub) Subscribe(topics ...string) *Subscriber {
	sub := &Subscriber{
		hub:    h,
		topics: topics,
		C:      make(chan Event, 256),
	}
	h.register <- sub
	return sub
}

// Publish sends an event to every subscriber of the topic. The payload
// is marshaled once, up front, so a bad payload surfaces to the
// publisher.
func (h *Hub) Publish(topic, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	h.broadcast <- &topicEvent{
		Topic: topic,
		Event: Event{Type: eventType, Payload: raw},
	}
	return nil
}
