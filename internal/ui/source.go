// Package ui draws the viewer's parameter panel and map overlays.
package ui

import "seedgen/internal/core"

// Source is what the HUD and overlay read from. Optional behaviour (knob
// controls, setters, flow masks, status lines) is discovered by type
// assertion.
type Source interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

type namer interface {
	Name() string
}

type flowProvider interface {
	FlowMask() []float32
}

type statusProvider interface {
	Status() []string
}
