package terminal

import (
	"github.com/automoto/tilewalk/input"
	"github.com/gdamore/tcell/v2"
)

// Command is what a key asks of the frontend itself.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleStatus
	CommandToggleMute
)

// Controller turns key events into player moves. Terminals report no key
// releases: a direction key walks until Space stops the player or another
// direction replaces it. Auto-repeat re-sends the same move, which leaves
// the animation clock alone.
type Controller struct {
	adapter *input.Adapter
	last    input.Direction
	moving  bool
}

func NewController(adapter *input.Adapter) *Controller {
	return &Controller{adapter: adapter}
}

func (c *Controller) Handle(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyF1:
		return CommandToggleStatus
	case tcell.KeyUp:
		c.walk(input.Up)
	case tcell.KeyDown:
		c.walk(input.Down)
	case tcell.KeyLeft:
		c.walk(input.Left)
	case tcell.KeyRight:
		c.walk(input.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return CommandQuit
		case 'm':
			return CommandToggleMute
		case 'w':
			c.walk(input.Up)
		case 's':
			c.walk(input.Down)
		case 'a':
			c.walk(input.Left)
		case 'd':
			c.walk(input.Right)
		case ' ':
			c.stop()
		}
	}
	return CommandNone
}

func (c *Controller) walk(dir input.Direction) {
	if c.adapter.KeyDown(dir, false) {
		c.last, c.moving = dir, true
	}
}

func (c *Controller) stop() {
	if c.moving {
		c.adapter.KeyUp(c.last, false)
		c.moving = false
		return
	}
	c.adapter.Stop()
}
