package components

import "github.com/yohamta/donburi"

// AudioData queues sounds for the audio system (singleton component).
type AudioData struct {
	PendingBumps int
	Muted        bool
}

var Audio = donburi.NewComponentType[AudioData]()
