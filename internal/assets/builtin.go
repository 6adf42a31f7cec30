package assets

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// BuiltinPrefix marks a locator naming a procedurally painted image.
const BuiltinPrefix = "builtin:"

// Builtin image sizes in pixels.
const (
	BirdImageW       = 34
	BirdImageH       = 24
	BackgroundImageW = 288
	BackgroundImageH = 512
	PipeImageW       = 52
	PipeImageH       = 480
	pipeCapH         = 24
)

var (
	colorSky        = color.RGBA{0x70, 0xC5, 0xCE, 0xFF}
	colorCloud      = color.RGBA{0xEA, 0xFC, 0xDB, 0xFF}
	colorCity       = color.RGBA{0xA3, 0xD9, 0xB1, 0xFF}
	colorWindow     = color.RGBA{0xD6, 0xF0, 0xDB, 0xFF}
	colorBush       = color.RGBA{0x5E, 0xE2, 0x70, 0xFF}
	colorGround     = color.RGBA{0xDE, 0xD8, 0x95, 0xFF}
	colorGrass      = color.RGBA{0x73, 0xBF, 0x2E, 0xFF}
	colorBirdBody   = color.RGBA{0xFF, 0xC6, 0x00, 0xFF}
	colorBirdStroke = color.RGBA{0xCE, 0x9E, 0x00, 0xFF}
	colorBirdWing   = color.RGBA{0xFF, 0xF0, 0xA0, 0xFF}
	colorBeak       = color.RGBA{0xF8, 0x6B, 0x1E, 0xFF}
	colorEyeWhite   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colorPupil      = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	colorPipe       = color.RGBA{0x73, 0xBF, 0x2E, 0xFF}
	colorPipeEdge   = color.RGBA{0x55, 0x80, 0x22, 0xFF}
	colorPipeShine  = color.RGBA{0x9C, 0xE6, 0x59, 0xFF}
)

// Builtin returns the procedurally painted image called name.
func Builtin(name string) (image.Image, error) {
	switch name {
	case ImageBird:
		return paintBird(), nil
	case ImageBackground:
		return paintBackground(), nil
	case ImagePipeTop:
		return paintPipe(true), nil
	case ImagePipeBottom:
		return paintPipe(false), nil
	default:
		return nil, fmt.Errorf("%w: %s%s", ErrUnknownLocator, BuiltinPrefix, name)
	}
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// fillEllipse paints the ellipse inscribed in r.
func fillEllipse(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

func paintBird() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BirdImageW, BirdImageH))

	fillEllipse(img, image.Rect(0, 0, 30, 24), colorBirdStroke)
	fillEllipse(img, image.Rect(2, 2, 28, 22), colorBirdBody)
	fillEllipse(img, image.Rect(2, 10, 16, 19), colorBirdWing)
	fillEllipse(img, image.Rect(17, 2, 28, 13), colorEyeWhite)
	fill(img, image.Rect(23, 5, 26, 9), colorPupil)
	fill(img, image.Rect(24, 13, 34, 17), colorBeak)
	fill(img, image.Rect(22, 17, 32, 20), colorBeak)

	return img
}

func paintBackground() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BackgroundImageW, BackgroundImageH))
	fill(img, img.Bounds(), colorSky)

	// Clouds
	for i, x := range []int{-20, 40, 110, 170, 230} {
		h := 40 + (i%2)*16
		fillEllipse(img, image.Rect(x, 360-h/2, x+90, 360+h), colorCloud)
	}
	fill(img, image.Rect(0, 372, BackgroundImageW, 400), colorCloud)

	// Skyline
	buildings := []struct{ x, w, h int }{
		{0, 30, 40}, {32, 22, 60}, {56, 36, 30}, {94, 24, 70}, {120, 40, 45},
		{162, 20, 55}, {184, 34, 35}, {220, 26, 65}, {248, 40, 42},
	}
	for _, b := range buildings {
		top := 440 - b.h
		fill(img, image.Rect(b.x, top, b.x+b.w, 440), colorCity)
		for wy := top + 6; wy < 432; wy += 10 {
			for wx := b.x + 4; wx < b.x+b.w-4; wx += 8 {
				fill(img, image.Rect(wx, wy, wx+3, wy+4), colorWindow)
			}
		}
	}

	// Bushes
	for x := -10; x < BackgroundImageW; x += 36 {
		fillEllipse(img, image.Rect(x, 424, x+48, 460), colorBush)
	}
	fill(img, image.Rect(0, 440, BackgroundImageW, 470), colorBush)

	// Ground
	fill(img, image.Rect(0, 470, BackgroundImageW, 476), colorGrass)
	fill(img, image.Rect(0, 476, BackgroundImageW, BackgroundImageH), colorGround)

	return img
}

// paintPipe paints a pipe segment. A top pipe has its cap at the bottom, a
// bottom pipe at the top.
func paintPipe(top bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PipeImageW, PipeImageH))

	// Body is inset by two pixels on each side
	fill(img, image.Rect(2, 0, PipeImageW-2, PipeImageH), colorPipeEdge)
	fill(img, image.Rect(4, 0, PipeImageW-4, PipeImageH), colorPipe)
	fill(img, image.Rect(8, 0, 14, PipeImageH), colorPipeShine)

	capY := 0
	if top {
		capY = PipeImageH - pipeCapH
	}
	fill(img, image.Rect(0, capY, PipeImageW, capY+pipeCapH), colorPipeEdge)
	fill(img, image.Rect(2, capY+2, PipeImageW-2, capY+pipeCapH-2), colorPipe)
	fill(img, image.Rect(6, capY+2, 12, capY+pipeCapH-2), colorPipeShine)

	return img
}
