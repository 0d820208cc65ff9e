package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ActionKind enumerates the popup-to-page requests.
type ActionKind string

const (
	ActionToggleHighContrast ActionKind = "toggleHighContrast"
	ActionSetHighContrast    ActionKind = "setHighContrast"
	ActionToggleReadableFont ActionKind = "toggleReadableFont"
	ActionSetZoom            ActionKind = "setZoom"
	ActionSetSpace           ActionKind = "setSpace"
	ActionSetAlign           ActionKind = "setAlign"
	ActionSetFont            ActionKind = "setFont"
	ActionToggleZoom         ActionKind = "toggleZoom"
)

// Sentinel errors returned by ParseAction.
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidValue  = errors.New("invalid action value")
)

// legacyAliases maps action names sent by older popups.
var legacyAliases = map[string]ActionKind{
	"slideText":  ActionSetSpace,
	"slideAlign": ActionSetAlign,
}

type actionSpec struct {
	dimension  Dimension
	needsValue bool
}

var actionSpecs = map[ActionKind]actionSpec{
	ActionToggleHighContrast: {dimension: DimensionContrast},
	ActionSetHighContrast:    {dimension: DimensionContrast, needsValue: true},
	ActionToggleReadableFont: {dimension: DimensionReadableFont},
	ActionSetZoom:            {dimension: DimensionZoom, needsValue: true},
	ActionSetSpace:           {dimension: DimensionSpacing, needsValue: true},
	ActionSetAlign:           {dimension: DimensionAlign, needsValue: true},
	ActionSetFont:            {dimension: DimensionFont, needsValue: true},
	ActionToggleZoom:         {dimension: DimensionZoom},
}

// Action is a validated request: a kind plus its integer payload.
// Toggle kinds carry no payload and Value is zero.
type Action struct {
	Kind  ActionKind
	Value int
}

// Dimension returns the style dimension the action changes.
func (a Action) Dimension() Dimension {
	return actionSpecs[a.Kind].dimension
}

// IsToggle reports whether the action flips state instead of setting it.
func (a Action) IsToggle() bool {
	spec, ok := actionSpecs[a.Kind]
	return ok && !spec.needsValue
}

// ActionKinds lists every canonical action name.
func ActionKinds() []ActionKind {
	return []ActionKind{
		ActionToggleHighContrast,
		ActionSetHighContrast,
		ActionToggleReadableFont,
		ActionSetZoom,
		ActionSetSpace,
		ActionSetAlign,
		ActionSetFont,
		ActionToggleZoom,
	}
}

// NewAction builds a set-style action.
func NewAction(kind ActionKind, value int) Action {
	return Action{Kind: kind, Value: value}
}

// ParseAction validates a raw action name and JSON value.
// Values may be JSON numbers, numeric strings or booleans; fractions are truncated.
func ParseAction(name string, raw json.RawMessage) (Action, error) {
	kind := ActionKind(name)
	if alias, ok := legacyAliases[name]; ok {
		kind = alias
	}

	spec, ok := actionSpecs[kind]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	if !spec.needsValue {
		return Action{Kind: kind}, nil
	}

	v, err := ParseValue(raw)
	if err != nil {
		return Action{}, fmt.Errorf("%w for %s: %v", ErrInvalidValue, kind, err)
	}
	return Action{Kind: kind, Value: v}, nil
}

// ParseValue decodes a loosely typed JSON primitive into an integer setting value.
// Numbers and numeric strings are truncated toward zero, booleans map to 0/1.
func ParseValue(raw json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, errors.New("value missing")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, err
		}
		return parseNumber(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return 0, err
		}
		if b {
			return 1, nil
		}
		return 0, nil
	default:
		return parseNumber(string(trimmed))
	}
}

// parseNumber accepts integers and floats within the int32 range.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, fmt.Errorf("out of range: %q", s)
		}
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return int(f), nil
}
