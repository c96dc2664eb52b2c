package assets

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"sort"
	"sync"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed all:levels all:images
var assetFS embed.FS

// maxConcurrentLoads bounds Preload's decoders.
const maxConcurrentLoads = 4

// FS returns the embedded levels and images.
func FS() fs.FS {
	return assetFS
}

// MustLoadLevel loads an embedded level and panics on failure; embedded
// levels are part of the build.
func MustLoadLevel(path string) *config.LevelConfig {
	lvl, err := config.LoadLevelFile(assetFS, path)
	if err != nil {
		panic(err)
	}
	return lvl
}

// Decoder turns encoded image bytes into pixel dimensions and a
// backend-specific handle (an *ebiten.Image for the graphical frontend).
type Decoder func(r io.Reader) (w, h int, handle any, err error)

// DecodeConfig reads only the image header. Frontends that never draw
// pixels use it.
func DecodeConfig(r io.Reader) (int, int, any, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, nil, err
	}
	return cfg.Width, cfg.Height, nil, nil
}

// ImageLoader hands out one image future per path and resolves them from
// a file system.
type ImageLoader struct {
	fsys   fs.FS
	decode Decoder
	log    *zap.Logger

	mu    sync.Mutex
	cache map[string]*actors.Image
}

func NewImageLoader(fsys fs.FS, decode Decoder, log *zap.Logger) *ImageLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageLoader{
		fsys:   fsys,
		decode: decode,
		log:    log,
		cache:  make(map[string]*actors.Image),
	}
}

// Image returns the future for path, creating it unresolved on first use.
func (l *ImageLoader) Image(path string) *actors.Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img
	}
	img := actors.NewImage(path)
	l.cache[path] = img
	return img
}

// Paths lists every requested image path, sorted.
func (l *ImageLoader) Paths() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	paths := make([]string, 0, len(l.cache))
	for p := range l.cache {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Load resolves the image at path. A failure is recorded on the future as
// well as returned.
func (l *ImageLoader) Load(path string) error {
	img := l.Image(path)
	if img.Loaded() || img.Err() != nil {
		return img.Err()
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		err = fmt.Errorf("read image %s: %w", path, err)
		img.Fail(err)
		return err
	}

	w, h, handle, err := l.decode(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("decode image %s: %w", path, err)
		img.Fail(err)
		return err
	}

	img.Resolve(w, h, handle)
	l.log.Info("image loaded",
		zap.String("path", path),
		zap.Int("width", w),
		zap.Int("height", h),
	)
	return nil
}

// Preload resolves every requested image concurrently. It returns the
// first failure; one bad image does not stop the others from loading.
func (l *ImageLoader) Preload(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(maxConcurrentLoads)

	for _, path := range l.Paths() {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := l.Load(path); err != nil {
				l.log.Error("image failed", zap.String("path", path), zap.Error(err))
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
