package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/logistics/engine/internal/domain/shared"
)

// EnvelopeVersion is the wire-format version stamped on every published
// envelope. Consumers reject nothing on version today; the field exists so
// a future format change can be rolled out without a flag day.
const EnvelopeVersion = "1.0"

// Envelope is the wire form every domain event travels in. The payload is
// nested under data so the metadata can be read without decoding it.
type Envelope struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
	Data      json.RawMessage `json:"data"`
}

// NewEnvelope wraps a domain event for publishing. The envelope id is the
// consumer-side dedupe key.
func NewEnvelope(event shared.DomainEvent) (*Envelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		ID:        uuid.New().String(),
		EventType: event.EventType(),
		Timestamp: time.Now().UTC(),
		Version:   EnvelopeVersion,
		Data:      data,
	}, nil
}

// DecodeEnvelope parses a raw message body.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}
