// Package rendertest provides in-memory Renderer, Image and InputManager
// implementations for tests that exercise game code without a window.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/undertow/internal/render"
)

// Renderer records the text it is asked to draw and counts shape calls.
type Renderer struct {
	Texts  []string
	Shapes int
}

// NewImage returns a blank Image of the given size.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Shapes++
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.Shapes++
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Shapes++
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Shapes++
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.Shapes++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)*6) * scale), int(16 * scale)
}

// Reset forgets everything recorded so far.
func (r *Renderer) Reset() {
	r.Texts = nil
	r.Shapes = 0
}

// Image is a size-only surface that counts draw calls.
type Image struct {
	W, H      int
	Fills     int
	Draws     int
	Triangles int
}

// NewImage creates an Image.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) Fill(clr color.Color) { i.Fills++ }

func (i *Image) Clear() {}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) { i.Draws++ }

func (i *Image) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	i.Triangles += len(indices) / 3
}

func (i *Image) Dispose() {}

// Input is a scripted InputManager. Tests set the maps between frames;
// the "just" sets are cleared by EndFrame.
type Input struct {
	Down         map[render.Key]bool
	JustPressed  map[render.Key]bool
	JustReleased map[render.Key]bool
	Clicked      bool
	MouseDown    bool
	CursorX      int
	CursorY      int
}

// NewInput returns an Input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Down:         make(map[render.Key]bool),
		JustPressed:  make(map[render.Key]bool),
		JustReleased: make(map[render.Key]bool),
	}
}

// Press marks key as going down this frame.
func (in *Input) Press(key render.Key) {
	in.Down[key] = true
	in.JustPressed[key] = true
}

// Release marks key as going up this frame.
func (in *Input) Release(key render.Key) {
	delete(in.Down, key)
	in.JustReleased[key] = true
}

// Click presses the left button at (x, y) for one frame.
func (in *Input) Click(x, y int) {
	in.CursorX, in.CursorY = x, y
	in.Clicked = true
}

// EndFrame clears edge-triggered state.
func (in *Input) EndFrame() {
	in.JustPressed = make(map[render.Key]bool)
	in.JustReleased = make(map[render.Key]bool)
	in.Clicked = false
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Down[key] }

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }

func (in *Input) IsKeyJustReleased(key render.Key) bool { return in.JustReleased[key] }

func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }

func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && (in.MouseDown || in.Clicked)
}

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.Clicked
}
