package components

import (
	cfg "github.com/automoto/tilewalk/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Edges are computed on demand by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

func (d *InputData) JustReleased(a cfg.ActionID) bool {
	return !d.Current[a] && d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
