package assets

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SpriteRune is the glyph used for opaque sprite cells.
const SpriteRune = '█'

// alphaThreshold is the minimum alpha for a pixel to become an opaque cell.
const alphaThreshold = 0x80

// Sprite is an image reduced to a grid of terminal cells.
type Sprite struct {
	W, H  int
	cells []core.Cell
	solid []bool
}

// ToSprite scales img to w x h cells and quantises it to the terminal
// palette. Pixels with less than half alpha become transparent.
func ToSprite(img image.Image, w, h int) *Sprite {
	s := &Sprite{W: max(w, 0), H: max(h, 0)}
	if s.W == 0 || s.H == 0 {
		return s
	}
	s.cells = make([]core.Cell, s.W*s.H)
	s.solid = make([]bool, s.W*s.H)

	dst := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := dst.RGBAAt(x, y)
			if c.A < alphaThreshold {
				continue
			}
			// Undo alpha premultiplication
			r := uint8(uint16(c.R) * 0xFF / uint16(c.A))
			g := uint8(uint16(c.G) * 0xFF / uint16(c.A))
			b := uint8(uint16(c.B) * 0xFF / uint16(c.A))
			i := y*s.W + x
			s.cells[i] = core.Cell{Rune: SpriteRune, Color: core.NearestColor(r, g, b)}
			s.solid[i] = true
		}
	}
	return s
}

// At returns the cell at (x, y) and whether it is opaque.
func (s *Sprite) At(x, y int) (core.Cell, bool) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return core.Cell{}, false
	}
	i := y*s.W + x
	return s.cells[i], s.solid[i]
}

type spriteKey struct {
	name string
	w, h int
}

// SpriteSet caches sprites of a bundle's images by target size.
// It is not safe for concurrent use.
type SpriteSet struct {
	bundle *Bundle
	cache  map[spriteKey]*Sprite
}

// NewSpriteSet returns an empty cache over b.
func NewSpriteSet(b *Bundle) *SpriteSet {
	return &SpriteSet{bundle: b, cache: make(map[spriteKey]*Sprite)}
}

// Get returns the image called name scaled to w x h cells, or nil if the
// bundle has no such image.
func (s *SpriteSet) Get(name string, w, h int) *Sprite {
	key := spriteKey{name, w, h}
	if sp, ok := s.cache[key]; ok {
		return sp
	}
	img := s.bundle.Image(name)
	if img == nil {
		return nil
	}
	sp := ToSprite(img, w, h)
	s.cache[key] = sp
	return sp
}

// Size returns the pixel size of the image called name.
func (s *SpriteSet) Size(name string) (w, h int) {
	return s.bundle.ImageSize(name)
}
