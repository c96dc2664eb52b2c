package actors

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageUnloaded(t *testing.T) {
	img := NewImage("walls.png")

	w, h, ok := img.Size()
	assert.False(t, ok)
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.False(t, img.Loaded())
	assert.Nil(t, img.Handle())
	assert.NoError(t, img.Err())
}

func TestImageResolvesOnce(t *testing.T) {
	img := NewImage("walls.png")

	assert.True(t, img.Resolve(256, 512, "handle"))
	assert.False(t, img.Resolve(1, 1, nil))
	assert.False(t, img.Fail(errors.New("late")))

	w, h, ok := img.Size()
	require.True(t, ok)
	assert.Equal(t, 256, w)
	assert.Equal(t, 512, h)
	assert.Equal(t, "handle", img.Handle())
}

func TestImageFail(t *testing.T) {
	img := NewImage("missing.png")
	boom := errors.New("boom")

	assert.True(t, img.Fail(boom))
	assert.False(t, img.Loaded())
	assert.ErrorIs(t, img.Err(), boom)
	assert.ErrorIs(t, img.Wait(context.Background()), boom)
}

func TestImageWait(t *testing.T) {
	img := NewImage("sprites.png")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, img.Wait(ctx), context.DeadlineExceeded)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		img.Resolve(576, 256, nil)
	}()
	require.NoError(t, img.Wait(context.Background()))
	wg.Wait()
	assert.True(t, img.Loaded())
}
