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

package ebitenpresenter

import (
	"bytes"
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/screenshot"
	"github.com/jetsetilly/gopheradvance/version"
)

// Presenter implements the television.Presenter and the ebiten.Game
// interfaces.
type Presenter struct {
	scale int

	ctx    context.Context
	cancel context.CancelFunc

	crit   sync.Mutex
	pixels []byte
	last   frame.Frame
	dirty  bool

	img *ebiten.Image

	clipboardOnce sync.Once
	clipboardOK   bool
}

// NewPresenter is the preferred method of initialisation for the Presenter
// type.
func NewPresenter(scale int) *Presenter {
	return &Presenter{
		scale:  max(1, scale),
		pixels: make([]byte, specification.Width*specification.Height*frame.PixelDepth),
	}
}

// Present implements the television.Presenter interface.
func (p *Presenter) Present(f *frame.Frame) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	f.CopyRGBA(p.pixels)
	p.last = *f
	p.dirty = true
	return nil
}

// Run opens the window and blocks until the context is done or the window is
// closed. The cancel function is called in the case of the window being
// closed. Must be called from the main thread.
func (p *Presenter) Run(ctx context.Context, cancel context.CancelFunc) error {
	p.ctx = ctx
	p.cancel = cancel

	ebiten.SetWindowSize(specification.Width*p.scale, specification.Height*p.scale)
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	err := ebiten.RunGame(p)

	// the window may have been closed directly
	cancel()

	if err != nil {
		return curated.Errorf("ebiten: %v", err)
	}
	return nil
}

// Update implements the ebiten.Game interface.
func (p *Presenter) Update() error {
	if p.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.cancel()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		p.copyToClipboard()
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (p *Presenter) Draw(screen *ebiten.Image) {
	if p.img == nil {
		p.img = ebiten.NewImage(specification.Width, specification.Height)
	}

	p.crit.Lock()
	if p.dirty {
		p.img.WritePixels(p.pixels)
		p.dirty = false
	}
	p.crit.Unlock()

	screen.DrawImage(p.img, nil)
}

// Layout implements the ebiten.Game interface. The logical screen is always
// the size of the television. Ebitengine scales it to fit the window.
func (p *Presenter) Layout(_, _ int) (int, int) {
	return specification.Width, specification.Height
}

func (p *Presenter) copyToClipboard() {
	p.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Logf(logger.Allow, "ebiten", "clipboard unavailable: %v", err)
			return
		}
		p.clipboardOK = true
	})
	if !p.clipboardOK {
		return
	}

	var b bytes.Buffer

	p.crit.Lock()
	err := screenshot.Encode(&b, &p.last, p.scale)
	p.crit.Unlock()

	if err != nil {
		logger.Log(logger.Allow, "ebiten", err)
		return
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())
	logger.Log(logger.Allow, "ebiten", "frame copied to clipboard")
}
