package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyphs used when a bundle image is unavailable.
const (
	BirdChar = '●'
	PipeChar = '█'
)

// Renderer draws frames into a terminal screen, scaling playfield units to
// cells. It never touches the session; it only reads frames.
type Renderer struct {
	sprites *assets.SpriteSet
}

// NewRenderer returns a renderer for the images in b.
// A nil bundle draws plain glyphs instead of sprites.
func NewRenderer(b *assets.Bundle) *Renderer {
	r := &Renderer{}
	if b != nil {
		r.sprites = assets.NewSpriteSet(b)
	}
	return r
}

// view maps playfield coordinates to screen cells.
type view struct {
	dst    *core.Screen
	sx, sy float64
}

// cells returns the cell rectangle covering the playfield box (x, y, w, h).
func (v view) cells(x, y, w, h float64) core.Rect {
	x0 := int(math.Round(x * v.sx))
	y0 := int(math.Round(y * v.sy))
	x1 := int(math.Round((x + w) * v.sx))
	y1 := int(math.Round((y + h) * v.sy))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// visible clips r to the screen.
func (v view) visible(r core.Rect) core.Rect {
	x0 := core.Max(r.X, 0)
	y0 := core.Max(r.Y, 0)
	x1 := core.Min(r.Right(), v.dst.Width())
	y1 := core.Min(r.Bottom(), v.dst.Height())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render clears dst and draws f: background tiles, pipes, the bird while it
// is alive, and the score lines.
func (r *Renderer) Render(dst *core.Screen, f Frame) {
	dst.Clear()
	if f.Width <= 0 || f.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := view{
		dst: dst,
		sx:  float64(dst.Width()) / f.Width,
		sy:  float64(dst.Height()) / f.Height,
	}

	r.drawBackground(v, f)
	for _, p := range f.Pipes {
		r.drawPipe(v, p)
	}
	if f.Bird.Alive {
		r.drawBird(v, f.Bird)
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score : %d", f.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("High Score : %d", f.HighScore), core.ColorBrightWhite)
}

// drawBackground tiles the background image horizontally, shifted left by
// the scroll offset.
func (r *Renderer) drawBackground(v view, f Frame) {
	if r.sprites == nil {
		return
	}
	bgW, bgH := r.sprites.Size(assets.ImageBackground)
	if bgW == 0 || bgH == 0 {
		return
	}
	w := float64(bgW)
	offset := math.Round(math.Mod(f.BackgroundX, w))
	tiles := int(math.Ceil(f.Width/w)) + 1
	for i := 0; i < tiles; i++ {
		r.drawImage(v, assets.ImageBackground, float64(i)*w-offset, 0, w, float64(bgH), 0, core.ColorDefault)
	}
}

// drawPipe draws a segment. The top sprite hangs from the segment's bottom
// edge, the bottom sprite stands on the segment's top edge.
func (r *Renderer) drawPipe(v view, p Pipe) {
	name := assets.ImagePipeTop
	if p.Kind == PipeBottom {
		name = assets.ImagePipeBottom
	}

	imgH := p.Height
	if r.sprites != nil {
		if _, h := r.sprites.Size(name); h > 0 {
			imgH = float64(h)
		}
	}

	y := p.Y
	if p.Kind == PipeTop {
		y = p.Y + p.Height - imgH
	}
	r.drawImage(v, name, p.X, y, p.Width, imgH, PipeChar, core.ColorGreen)
}

// drawImage draws the named image scaled to the playfield box, or fills the
// box with the fallback glyph when the image is missing.
func (r *Renderer) drawImage(v view, name string, x, y, w, h float64, fallback rune, c core.Color) {
	area := v.cells(x, y, w, h)
	if area.W <= 0 || area.H <= 0 {
		return
	}

	var sp *assets.Sprite
	if r.sprites != nil {
		sp = r.sprites.Get(name, area.W, area.H)
	}
	if sp == nil {
		if fallback != 0 {
			v.dst.FillRect(v.visible(area), fallback, c)
		}
		return
	}

	vis := v.visible(area)
	for cy := vis.Y; cy < vis.Bottom(); cy++ {
		for cx := vis.X; cx < vis.Right(); cx++ {
			if cell, ok := sp.At(cx-area.X, cy-area.Y); ok {
				v.dst.SetCell(cx, cy, cell)
			}
		}
	}
}

// drawBird draws the bird sprite rotated about its center by the bird's
// angle, sampling the sprite for every cell the rotated box can cover.
func (r *Renderer) drawBird(v view, b Bird) {
	base := v.cells(b.X, b.Y, b.Width, b.Height)
	spW := core.Max(base.W, 1)
	spH := core.Max(base.H, 1)

	var sp *assets.Sprite
	if r.sprites != nil {
		sp = r.sprites.Get(assets.ImageBird, spW, spH)
	}

	cx, cy := b.Box().Center()
	radius := math.Hypot(b.Width, b.Height) / 2
	sin, cos := math.Sincos(b.Angle())

	bounds := v.visible(v.cells(cx-radius, cy-radius, 2*radius, 2*radius))
	for row := bounds.Y; row < bounds.Bottom(); row++ {
		for col := bounds.X; col < bounds.Right(); col++ {
			// Cell center in playfield units, rotated back into bird space
			dx := (float64(col)+0.5)/v.sx - cx
			dy := (float64(row)+0.5)/v.sy - cy
			ux := dx*cos + dy*sin + b.Width/2
			uy := -dx*sin + dy*cos + b.Height/2
			if ux < 0 || uy < 0 || ux >= b.Width || uy >= b.Height {
				continue
			}

			if sp == nil {
				v.dst.SetColored(col, row, BirdChar, core.ColorBrightYellow)
				continue
			}
			sx := int(ux / b.Width * float64(spW))
			sy := int(uy / b.Height * float64(spH))
			if cell, ok := sp.At(sx, sy); ok {
				v.dst.SetCell(col, row, cell)
			}
		}
	}
}
