package tags

import "github.com/yohamta/donburi"

var (
	World     = donburi.NewTag().SetName("World")
	Highlight = donburi.NewTag().SetName("Highlight")
)
