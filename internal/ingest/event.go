package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedEvent indicates an ingestion event that cannot be acted on.
var ErrMalformedEvent = errors.New("malformed storage event")

// Event is an object-storage finalize notification: a document landed
// in a bucket and should be ingested.
type Event struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
}

// ParseEvent decodes and validates a storage event payload.
// Both bucket and name must be present; anything else is ErrMalformedEvent.
func ParseEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if ev.Bucket == "" {
		return Event{}, fmt.Errorf("%w: missing bucket", ErrMalformedEvent)
	}
	if ev.Name == "" {
		return Event{}, fmt.Errorf("%w: missing name", ErrMalformedEvent)
	}
	return ev, nil
}
