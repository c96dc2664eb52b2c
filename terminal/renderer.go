// Package terminal renders a tile world as text with tcell and maps key
// events to player commands.
package terminal

import (
	"unicode"
	"unicode/utf8"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/automoto/tilewalk/world"
	"github.com/gdamore/tcell/v2"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	spriteStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	bboxColor   = tcell.ColorMaroon
)

// Renderer draws one world cell per CellWidth x CellHeight world pixels.
// The last StatusLines rows of the screen hold the status text.
type Renderer struct {
	screen tcell.Screen
	cfg    config.TerminalConfig
}

func NewRenderer(screen tcell.Screen, cfg config.TerminalConfig) *Renderer {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 1
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 1
	}
	return &Renderer{screen: screen, cfg: cfg}
}

// Draw renders the map, the debug boxes, every sprite and the status
// lines, then shows the frame. Collided names are drawn reversed.
func (r *Renderer) Draw(w *world.World, status []string, collided map[string]bool) {
	r.screen.Clear()
	width, height := r.screen.Size()
	rows := height - r.cfg.StatusLines
	if rows < 0 {
		rows = 0
	}

	if m := w.Map(); m != nil {
		r.drawMap(m, width, rows)
	}
	w.Draw(&sink{r: r, cols: width, rows: rows})

	for _, s := range w.Snapshot() {
		col, row := r.cellOf(center(s.Box))
		if col < 0 || col >= width || row < 0 || row >= rows {
			continue
		}
		style := spriteStyle
		if s.Player {
			style = playerStyle
		}
		if collided[s.Name] {
			style = style.Reverse(true)
		}
		// Keep any debug box shading under the glyph.
		_, _, under, _ := r.screen.GetContent(col, row)
		if _, bg, _ := under.Decompose(); bg == bboxColor {
			style = style.Background(bg)
		}
		r.screen.SetContent(col, row, Glyph(s), nil, style)
	}

	for i, line := range status {
		if i >= r.cfg.StatusLines {
			break
		}
		r.putString(0, rows+i, width, line, statusStyle)
	}
	r.screen.Show()
}

func (r *Renderer) drawMap(m *actors.TileMap, cols, rows int) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := (float64(col) + 0.5) * float64(r.cfg.CellWidth)
			cy := (float64(row) + 0.5) * float64(r.cfg.CellHeight)
			ch, style := r.cfg.EmptyGlyph, floorStyle
			if tc, tr, ok := m.CellOf(gamemath.V(cx, cy)); ok {
				if id, inside := m.TileAt(tc, tr); inside && id != actors.EmptyTile {
					ch = r.cfg.FloorGlyph
					if m.IsCollidable(id) {
						ch, style = r.cfg.WallGlyph, wallStyle
					}
				}
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *Renderer) cellOf(p gamemath.Vec) (col, row int) {
	return p.Div(gamemath.V(float64(r.cfg.CellWidth), float64(r.cfg.CellHeight))).Cell()
}

func (r *Renderer) putString(x, y, width int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Glyph is '@' for the player and the upper-cased first letter of the name
// for everyone else.
func Glyph(s world.SpriteState) rune {
	if s.Player {
		return '@'
	}
	ch, _ := utf8.DecodeRuneInString(s.Name)
	if ch == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(ch)
}

func center(r gamemath.Rect) gamemath.Vec {
	return gamemath.V(r.X+r.W/2, r.Y+r.H/2)
}

// sink shades debug boxes; sprite pixels have no text form.
type sink struct {
	r          *Renderer
	cols, rows int
}

func (s *sink) DrawImage(*actors.Image, gamemath.Rect, gamemath.Rect) {}

func (s *sink) FillRect(dst gamemath.Rect) {
	c0, r0 := s.r.cellOf(dst.Min())
	c1, r1 := s.r.cellOf(dst.Max())
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			ch, _, style, _ := s.r.screen.GetContent(col, row)
			s.r.screen.SetContent(col, row, ch, nil, style.Background(bboxColor))
		}
	}
}
