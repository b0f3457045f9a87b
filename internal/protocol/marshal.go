package protocol

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ErrUnknownMessageType is returned for values or payloads the codec does not handle
var ErrUnknownMessageType = errors.New("unknown message type")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal serializes a message
func Marshal(v any) ([]byte, error) {
	switch v.(type) {
	case *Connect, *Action, *HandStart, *ActionRequest, *GameUpdate,
		*PlayerAction, *StreetChange, *HandResult, *GameCompleted, *Error:
		return json.Marshal(v)
	default:
		return nil, ErrUnknownMessageType
	}
}

// Unmarshal deserializes data into a message
func Unmarshal(data []byte, v any) error {
	switch v.(type) {
	case *Connect, *Action, *HandStart, *ActionRequest, *GameUpdate,
		*PlayerAction, *StreetChange, *HandResult, *GameCompleted, *Error:
		return json.Unmarshal(data, v)
	default:
		return ErrUnknownMessageType
	}
}

// PeekType returns the "type" field of an encoded message without decoding the rest
func PeekType(data []byte) (string, error) {
	field := json.Get(data, "type")
	if err := field.LastError(); err != nil {
		return "", fmt.Errorf("read message type: %w", err)
	}
	if field.ValueType() != jsoniter.StringValue {
		return "", ErrUnknownMessageType
	}
	return field.ToString(), nil
}

// Decode reads the type of data and returns a pointer to the matching message
func Decode(data []byte) (any, error) {
	kind, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	var msg any
	switch kind {
	case TypeConnect:
		msg = &Connect{}
	case TypeAction:
		msg = &Action{}
	case TypeHandStart:
		msg = &HandStart{}
	case TypeActionRequest:
		msg = &ActionRequest{}
	case TypeGameUpdate:
		msg = &GameUpdate{}
	case TypePlayerAction:
		msg = &PlayerAction{}
	case TypeStreetChange:
		msg = &StreetChange{}
	case TypeHandResult:
		msg = &HandResult{}
	case TypeGameCompleted:
		msg = &GameCompleted{}
	case TypeError:
		msg = &Error{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, kind)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return msg, nil
}
