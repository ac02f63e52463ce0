package core

import "strconv"

// ParamType enumerates supported tunable value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued tunables.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point tunables.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes enumerated string tunables (noise kind, humidity model).
	ParamTypeString ParamType = "string"
)

// Parameter describes a single generation knob as shown to a user.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related knobs (terrain, erosion, climate...).
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the knobs a generator ran with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a float parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// StringParam builds an enumerated string parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// ParameterControl describes a knob the viewer HUD can step up and down.
// Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp applies the control's bounds to v.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the knobs a HUD may adjust.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter applies an integer knob change. It reports whether the
// key was recognised.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter applies a float knob change.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
