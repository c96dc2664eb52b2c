package world

import (
	"math"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/solarlune/resolv"
)

const actorTag = "actor"

// boxed is any actor with a collision rectangle that can be indexed.
type boxed interface {
	actors.Actor
	Box() gamemath.Rect
}

// space is the broad phase: a resolv grid mirroring every sprite's box.
// It only narrows the candidate set; the exact test is still CollideBox.
type space struct {
	grid    *resolv.Space
	bounds  gamemath.Rect
	objects map[actors.Actor]*resolv.Object
}

// newSpace covers at least [0,width)x[0,height); resolv grids start at
// the origin and only hold whole cells, so the size is rounded up to the
// next cell.
func newSpace(width, height float64, cell int) *space {
	cols := int(math.Ceil(width / float64(cell)))
	rows := int(math.Ceil(height / float64(cell)))
	return &space{
		grid:    resolv.NewSpace(cols*cell, rows*cell, cell, cell),
		bounds:  gamemath.R(0, 0, float64(cols*cell), float64(rows*cell)),
		objects: make(map[actors.Actor]*resolv.Object),
	}
}

// track indexes a if it has a box. The map and other unboxed actors stay
// out of the grid and are always tested directly.
func (s *space) track(a actors.Actor) {
	b, ok := a.(boxed)
	if !ok {
		return
	}
	box := pad(b.Box())
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, actorTag)
	obj.Data = a
	s.grid.Add(obj)
	s.objects[a] = obj
}

func (s *space) indexed(a actors.Actor) bool {
	_, ok := s.objects[a]
	return ok
}

// sync moves a's grid object to its current box.
func (s *space) sync(a actors.Actor) {
	obj, ok := s.objects[a]
	if !ok {
		return
	}
	box := pad(a.(boxed).Box())
	obj.X, obj.Y = box.X, box.Y
	obj.W, obj.H = box.W, box.H
	obj.Update()
}

func (s *space) syncAll() {
	for a := range s.objects {
		s.sync(a)
	}
}

// candidates returns the indexed actors sharing a grid cell with box. ok is
// false when box reaches outside the grid, where cell membership is not
// tracked and the caller has to scan everything.
func (s *space) candidates(box gamemath.Rect) (set map[actors.Actor]struct{}, ok bool) {
	probe := pad(box)
	if probe.X < s.bounds.X || probe.Y < s.bounds.Y ||
		probe.Right() > s.bounds.Right() || probe.Bottom() > s.bounds.Bottom() {
		return nil, false
	}

	obj := resolv.NewObject(probe.X, probe.Y, probe.W, probe.H)
	s.grid.Add(obj)
	defer s.grid.Remove(obj)

	set = make(map[actors.Actor]struct{})
	if c := obj.Check(0, 0, actorTag); c != nil {
		for _, o := range c.Objects {
			if a, ok := o.Data.(actors.Actor); ok {
				set[a] = struct{}{}
			}
		}
	}
	return set, true
}

// pad grows r by one unit on every side. resolv places the far edge of an
// object at x+w-1, so unpadded boxes can miss sub-unit overlaps and
// zero-size boxes can miss their cell entirely.
func pad(r gamemath.Rect) gamemath.Rect {
	return gamemath.R(r.X-1, r.Y-1, r.W+2, r.H+2)
}
