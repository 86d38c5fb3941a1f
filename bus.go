package arbor

import (
	"reflect"

	"go.uber.org/zap"
)

// Payload carries the weakly-typed parameters of a published event. Handlers
// always receive a non-nil map.
type Payload map[string]any

// Float returns the float64 stored under key, converting common numeric types.
// Missing or non-numeric values yield 0, false.
func (p Payload) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Point returns the "x" and "y" entries of a touch payload.
func (p Payload) Point() (x, y float64) {
	x, _ = p.Float("x")
	y, _ = p.Float("y")
	return x, y
}

// TouchPayload builds the payload published for raw pointer events.
func TouchPayload(x, y float64) Payload {
	return Payload{"x": x, "y": y}
}

// Handler receives events published on the topics it is subscribed to.
//
// A handler value is the (callback, context) pair of a subscription: two
// subscriptions are identical when their handler values compare equal, which
// for pointer receivers means the same object. Handlers whose dynamic type is
// not comparable are never treated as duplicates.
type Handler interface {
	HandleEvent(topic string, bus *EventBus, payload Payload)
}

// HandlerFunc adapts a function to Handler. Function values are not
// comparable, so a HandlerFunc subscribed directly can never be unsubscribed
// or deduplicated; use Listen to get a removable handle.
type HandlerFunc func(topic string, bus *EventBus, payload Payload)

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(topic string, bus *EventBus, payload Payload) {
	f(topic, bus, payload)
}

// funcHandler gives a HandlerFunc a stable identity so it can be unsubscribed.
type funcHandler struct {
	fn HandlerFunc
}

func (h *funcHandler) HandleEvent(topic string, bus *EventBus, payload Payload) {
	h.fn(topic, bus, payload)
}

// EventBus is a named-topic publish/subscribe registry. It is owned by one
// Game session and is not safe for concurrent use.
type EventBus struct {
	topics map[string][]Handler
	log    *zap.Logger
}

// NewEventBus creates an empty bus. A nil logger disables warnings.
func NewEventBus(log *zap.Logger) *EventBus {
	return &EventBus{
		topics: make(map[string][]Handler),
		log:    orNop(log),
	}
}

// Logger returns the bus logger.
func (b *EventBus) Logger() *zap.Logger {
	return b.log
}

// Subscribe registers h for topic. Subscribing the same handler to the same
// topic twice is a no-op.
func (b *EventBus) Subscribe(topic string, h Handler) {
	if topic == "" || h == nil {
		b.log.Warn("subscribe: topic and handler are required", zap.String("topic", topic))
		return
	}
	for _, existing := range b.topics[topic] {
		if sameHandler(existing, h) {
			return
		}
	}
	b.topics[topic] = append(b.topics[topic], h)
}

// Listen subscribes fn to topic and returns the handler to pass to
// Unsubscribe. Every call creates a distinct subscription.
func (b *EventBus) Listen(topic string, fn HandlerFunc) Handler {
	if fn == nil {
		b.log.Warn("listen: nil callback", zap.String("topic", topic))
		return nil
	}
	h := &funcHandler{fn: fn}
	b.Subscribe(topic, h)
	return h
}

// Unsubscribe removes the subscription of h to topic. The topic entry is
// dropped once its last subscriber is gone.
func (b *EventBus) Unsubscribe(topic string, h Handler) {
	subs, ok := b.topics[topic]
	if !ok {
		return
	}
	for i, existing := range subs {
		if sameHandler(existing, h) {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = nil
			subs = subs[:len(subs)-1]
			break
		}
	}
	if len(subs) == 0 {
		delete(b.topics, topic)
		return
	}
	b.topics[topic] = subs
}

// Publish invokes every subscriber of topic in subscription order. Handlers
// see the subscriber list as it was when Publish was called; subscriptions
// added or removed during dispatch take effect on the next Publish.
func (b *EventBus) Publish(topic string, payload Payload) {
	subs, ok := b.topics[topic]
	if !ok {
		return
	}
	snapshot := make([]Handler, len(subs))
	copy(snapshot, subs)
	if payload == nil {
		payload = Payload{}
	}
	for _, h := range snapshot {
		h.HandleEvent(topic, b, payload)
	}
}

// HasSubscribers reports whether topic has at least one subscriber.
func (b *EventBus) HasSubscribers(topic string) bool {
	return len(b.topics[topic]) > 0
}

// SubscriberCount returns the number of subscribers of topic.
func (b *EventBus) SubscriberCount(topic string) int {
	return len(b.topics[topic])
}

// Clear removes every subscription on every topic.
func (b *EventBus) Clear() {
	clear(b.topics)
}

// sameHandler compares two handlers without panicking on uncomparable
// dynamic types.
func sameHandler(a, b Handler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}
