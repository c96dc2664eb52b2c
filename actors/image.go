package actors

import (
	"context"
	"sync"
)

// Image is a handle on a tileset or sprite sheet whose pixel dimensions are
// only known once a loader resolves it. It resolves exactly once; every
// dimension-dependent operation treats an unresolved image as absent.
type Image struct {
	Path string

	once   sync.Once
	done   chan struct{}
	width  int
	height int
	handle any
	err    error
}

func NewImage(path string) *Image {
	return &Image{Path: path, done: make(chan struct{})}
}

// Resolve records the decoded dimensions and an optional renderer-specific
// handle (an *ebiten.Image for instance). Only the first Resolve or Fail
// call has any effect; it reports whether this call won.
func (i *Image) Resolve(width, height int, handle any) bool {
	won := false
	i.once.Do(func() {
		i.width, i.height, i.handle = width, height, handle
		close(i.done)
		won = true
	})
	return won
}

// Fail resolves the image into a permanent error state.
func (i *Image) Fail(err error) bool {
	won := false
	i.once.Do(func() {
		i.err = err
		close(i.done)
		won = true
	})
	return won
}

func (i *Image) resolved() bool {
	select {
	case <-i.done:
		return true
	default:
		return false
	}
}

// Loaded reports whether the image resolved successfully.
func (i *Image) Loaded() bool {
	return i.resolved() && i.err == nil
}

// Size returns the pixel dimensions, ok is false until loaded.
func (i *Image) Size() (width, height int, ok bool) {
	if !i.Loaded() {
		return 0, 0, false
	}
	return i.width, i.height, true
}

func (i *Image) Handle() any {
	if !i.Loaded() {
		return nil
	}
	return i.handle
}

// Err returns the load error, if the image failed.
func (i *Image) Err() error {
	if !i.resolved() {
		return nil
	}
	return i.err
}

// Wait blocks until the image resolves or ctx is done.
func (i *Image) Wait(ctx context.Context) error {
	select {
	case <-i.done:
		return i.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
