package components

import (
	"github.com/automoto/tilewalk/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HighlightData is a fading outline drawn where a collision happened.
type HighlightData struct {
	Name  string
	Box   gamemath.Rect
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Highlight = donburi.NewComponentType[HighlightData]()
