// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

package sdlpresenter

import (
	"context"
	"sync"

	"github.com/jetsetilly/gopheradvance/assert"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/screenshot"
	"github.com/jetsetilly/gopheradvance/version"
	"github.com/veandco/go-sdl2/sdl"
)

// WrongGoroutine is returned by Service() if it is called by a goroutine other
// than the one that created the Presenter.
const WrongGoroutine = "sdl: service called from wrong goroutine"

// the number of milliseconds to wait for an event before checking for a new
// frame. roughly a quarter of a frame
const eventTimeout = 4

// Presenter implements the television.Presenter interface. It also implements
// the io.Closer interface.
type Presenter struct {
	// the goroutine that created the presenter. SDL functions must only be
	// called by this goroutine, which should be running on the main thread
	owner assert.Owner

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// staging buffer shared between Present() and Service()
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	// texture data is copied from pixels in the service loop
	upload []byte

	// screenshots are taken from this copy of the most recent frame
	shot *screenshot.Shot
}

// NewPresenter is the preferred method of initialisation for the Presenter
// type. Must be called from the main thread.
func NewPresenter(scale int) (*Presenter, error) {
	scale = max(1, scale)

	scr := &Presenter{
		owner:  assert.NewOwner(),
		pixels: make([]byte, specification.Width*specification.Height*frame.PixelDepth),
		upload: make([]byte, specification.Width*specification.Height*frame.PixelDepth),
		shot:   screenshot.NewShot(scale),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// nearest neighbour filtering
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	scr.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(specification.Width*scale), int32(specification.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// the logical size means the renderer scales the texture by an integer
	// amount regardless of the window size
	err = scr.renderer.SetLogicalSize(specification.Width, specification.Height)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf("sdl: %v", err)
	}
	err = scr.renderer.SetIntegerScale(true)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// ABGR8888 matches the byte order of frame.CopyRGBA() on little-endian
	// platforms
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		specification.Width, specification.Height)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf("sdl: %v", err)
	}

	return scr, nil
}

// Close implements the io.Closer interface. Must be called from the main
// thread.
func (scr *Presenter) Close() error {
	if scr.texture != nil {
		scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
	return nil
}

// Present implements the television.Presenter interface.
func (scr *Presenter) Present(f *frame.Frame) error {
	scr.crit.Lock()
	f.CopyRGBA(scr.pixels)
	scr.dirty = true
	scr.crit.Unlock()
	return scr.shot.Present(f)
}

// Service the SDL event queue and redraw the window if a new frame has been
// presented. The cancel function is called if the user closes the window.
// Must be called repeatedly from the main thread.
func (scr *Presenter) Service(cancel context.CancelFunc) error {
	if !scr.owner.IsOwner() {
		return curated.Errorf(WrongGoroutine)
	}
	ev := sdl.WaitEventTimeout(eventTimeout)
	for ; ev != nil; ev = sdl.PollEvent() {
		scr.event(ev, cancel)
	}
	return scr.redraw()
}

func (scr *Presenter) event(ev sdl.Event, cancel context.CancelFunc) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		cancel()

	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
			return
		}
		switch ev.Keysym.Sym {
		case sdl.K_ESCAPE:
			cancel()
		case sdl.K_F12:
			scr.screenshot()
		}
	}
}

func (scr *Presenter) screenshot() {
	base, err := paths.ResourcePath("shots", paths.UniqueFilename("shot", ""))
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "screenshot: %v", err)
		return
	}

	fn, err := scr.shot.Save(base)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "%v", err)
		return
	}

	logger.Logf(logger.Allow, "sdl", "screenshot saved to %s", fn)
}

// redraw the window if the staging buffer has changed since the last call.
func (scr *Presenter) redraw() error {
	scr.crit.Lock()
	if !scr.dirty {
		scr.crit.Unlock()
		return nil
	}
	copy(scr.upload, scr.pixels)
	scr.dirty = false
	scr.crit.Unlock()

	err := scr.texture.Update(nil, scr.upload, specification.Width*frame.PixelDepth)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	scr.renderer.Present()

	return nil
}
