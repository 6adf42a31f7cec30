package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-flappy/internal/audio"
)

// maxParallel bounds the number of files decoded at once.
const maxParallel = 8

// Load loads every asset of m in parallel on a background goroutine and then
// calls onDone exactly once, with either the complete bundle or the first
// error encountered.
func Load(ctx context.Context, m Manifest, onDone func(*Bundle, error)) {
	go func() {
		onDone(LoadSync(ctx, m))
	}()
}

// LoadSync is the blocking form of Load.
func LoadSync(ctx context.Context, m Manifest) (*Bundle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b := &Bundle{
		images: make(map[string]image.Image, len(m.Images)),
		clips:  make(map[string]*audio.Clip, len(m.Sounds)),
	}
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallel)

	for name, locator := range m.Images {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := loadImage(m.resolve(locator))
			if err != nil {
				return fmt.Errorf("assets: image %s: %w", name, err)
			}
			mu.Lock()
			b.images[name] = img
			mu.Unlock()
			return nil
		})
	}

	for name, locator := range m.Sounds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			clip, err := audio.Load(name, m.resolve(locator))
			if err != nil {
				return fmt.Errorf("assets: sound %s: %w", name, err)
			}
			mu.Lock()
			b.clips[name] = clip
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

// loadImage resolves a builtin locator or decodes an image file.
func loadImage(locator string) (image.Image, error) {
	if name, ok := strings.CutPrefix(locator, BuiltinPrefix); ok {
		return Builtin(name)
	}

	f, err := os.Open(locator)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", locator, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", locator, err)
	}
	return img, nil
}
