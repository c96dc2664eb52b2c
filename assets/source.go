package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/tilewalk/config"
)

// LevelSource resolves a -level argument to a file system and a path
// inside it. Empty selects the default embedded level, a path present in
// the embedded levels wins over the disk, and anything else is read from
// disk. Disk levels are rooted at the volume so that "../images" style
// references keep working.
func LevelSource(arg string) (fs.FS, string, error) {
	if arg == "" {
		return assetFS, config.Assets.DefaultLevel, nil
	}
	if _, err := fs.Stat(assetFS, arg); err == nil {
		return assetFS, arg, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return nil, "", fmt.Errorf("level %s: %w", arg, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, "", fmt.Errorf("level %s: %w", arg, err)
	}
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel := filepath.ToSlash(strings.TrimPrefix(abs, root))
	return os.DirFS(root), rel, nil
}
