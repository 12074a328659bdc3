package mq

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/rdx"
)

const eventChannel = "salon-events"

// Event is the wire form of a published mutation.
type Event struct {
	Name string `json:"name"`
	models.Index
}

// Emit publishes a mutation event to the Redis event channel. Emission is
// best effort; a publish failure never fails the originating request. Callers
// emitting after their request returns must pass a context that outlives it.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(Event{Name: eventName, Index: content})
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartEventLogger subscribes to the event channel and logs mutations. It is
// the audit trail for record changes made through the API.
func StartEventLogger() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventChannel)
	ch := sub.Channel()

	log.Println("[EventLogger] Listening for salon events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventLogger] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[EventLogger] %s: %s %s/%s", event.Name, event.Method, event.EntityType, event.EntityId)
	}
}
