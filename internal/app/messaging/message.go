package messaging

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Message is a popup request as it travels over the wire.
// Value is kept raw: range inputs send numeric strings, checkboxes send booleans.
type Message struct {
	Action string          `json:"action" jsonschema:"required,enum=toggleHighContrast,enum=setHighContrast,enum=toggleReadableFont,enum=setZoom,enum=setSpace,enum=setAlign,enum=setFont,enum=toggleZoom,enum=slideText,enum=slideAlign"`
	Value  json.RawMessage `json:"value,omitempty" jsonschema:"oneof_type=integer;string;boolean"`
}

// Response is returned for every handled message. Status is informational.
type Response struct {
	Status string `json:"status" jsonschema:"required"`
}

// NewMessage builds a message carrying value encoded as JSON. A nil value omits it.
func NewMessage(action string, value any) (Message, error) {
	msg := Message{Action: action}
	if value == nil {
		return msg, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return Message{}, fmt.Errorf("failed to encode value: %w", err)
	}
	msg.Value = raw
	return msg, nil
}

// ParseMessage decodes one JSON message.
func ParseMessage(payload []byte) (Message, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return Message{}, errors.New("empty message")
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to decode message: %w", err)
	}
	if msg.Action == "" {
		return Message{}, errors.New("message has no action")
	}
	return msg, nil
}
