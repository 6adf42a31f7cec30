// Package assets loads the images and sounds a game session needs into an
// immutable Bundle.
package assets

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Logical image names.
const (
	ImageBird       = "bird"
	ImageBackground = "background"
	ImagePipeTop    = "pipetop"
	ImagePipeBottom = "pipebottom"
)

// Logical sound names.
const (
	SoundFlap            = "flap"
	SoundScore           = "score"
	SoundHit             = "hit"
	SoundBackgroundMusic = "backgroundMusic"
)

// RequiredImages and RequiredSounds list the names every manifest must map.
var (
	RequiredImages = []string{ImageBird, ImageBackground, ImagePipeTop, ImagePipeBottom}
	RequiredSounds = []string{SoundFlap, SoundScore, SoundHit, SoundBackgroundMusic}
)

var (
	// ErrMissingAsset is returned when a manifest lacks a required name.
	ErrMissingAsset = errors.New("assets: missing required asset")
	// ErrUnknownLocator is returned for builtin locators that name nothing.
	ErrUnknownLocator = errors.New("assets: unknown locator")
)

// Manifest maps logical names to locators.
type Manifest struct {
	BaseDir string
	Images  map[string]string
	Sounds  map[string]string
}

// ManifestFromConfig builds a manifest from the assets configuration section.
func ManifestFromConfig(cfg config.AssetsConfig) Manifest {
	return Manifest{
		BaseDir: cfg.BaseDir,
		Images:  cfg.Images,
		Sounds:  cfg.Sounds,
	}
}

// Validate checks that every required name is present.
func (m Manifest) Validate() error {
	var missing []string
	for _, name := range RequiredImages {
		if m.Images[name] == "" {
			missing = append(missing, "image "+name)
		}
	}
	for _, name := range RequiredSounds {
		if m.Sounds[name] == "" {
			missing = append(missing, "sound "+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}

// resolve turns a file locator into a path. Builtin and synth locators and
// absolute paths are returned unchanged.
func (m Manifest) resolve(locator string) string {
	if m.BaseDir == "" || filepath.IsAbs(locator) ||
		strings.HasPrefix(locator, BuiltinPrefix) || strings.HasPrefix(locator, audio.SynthPrefix) {
		return locator
	}
	return filepath.Join(m.BaseDir, locator)
}

// Bundle holds loaded assets. It is read-only once returned by the loader.
type Bundle struct {
	images map[string]image.Image
	clips  map[string]*audio.Clip
}

// Image returns the image named name, or nil.
func (b *Bundle) Image(name string) image.Image {
	return b.images[name]
}

// Clip returns the sound named name, or nil.
func (b *Bundle) Clip(name string) *audio.Clip {
	return b.clips[name]
}

// Clips returns a copy of the name to clip mapping.
func (b *Bundle) Clips() map[string]*audio.Clip {
	out := make(map[string]*audio.Clip, len(b.clips))
	for name, c := range b.clips {
		out[name] = c
	}
	return out
}

// ImageNames returns the loaded image names in sorted order.
func (b *Bundle) ImageNames() []string {
	names := make([]string, 0, len(b.images))
	for name := range b.images {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ImageSize returns the pixel size of the image named name, or zeros.
func (b *Bundle) ImageSize(name string) (w, h int) {
	img := b.images[name]
	if img == nil {
		return 0, 0
	}
	r := img.Bounds()
	return r.Dx(), r.Dy()
}

// NewBundle assembles a bundle from already loaded assets.
func NewBundle(images map[string]image.Image, clips map[string]*audio.Clip) *Bundle {
	b := &Bundle{
		images: make(map[string]image.Image, len(images)),
		clips:  make(map[string]*audio.Clip, len(clips)),
	}
	for name, img := range images {
		b.images[name] = img
	}
	for name, c := range clips {
		b.clips[name] = c
	}
	return b
}
