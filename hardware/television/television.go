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

package television

import (
	"context"
	"sync"
	"time"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
	"github.com/jetsetilly/gopheradvance/hardware/television/limiter"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Ended is the error returned by WaitFrame() once the television has stopped
// running and no further frames will be produced.
const Ended = "television: ended"

// Memory is the view of memory required by the television.
type Memory interface {
	bus.Memory
	bus.Atomic
}

// Television is the timing engine.
type Television struct {
	mem      Memory
	renderer LineRenderer
	irq      interrupts.Sink
	dma      dma.Trigger

	lmtr *limiter.Limiter

	// the next scanline to be stepped and the number of completed frames.
	// only the timing goroutine writes to these fields
	line     int
	frameNum int

	// double buffered frames. the back buffer is only touched by the timing
	// goroutine. the front buffer and ready are guarded by crit
	back  *frame.Frame
	front *frame.Frame
	crit  sync.Mutex
	cond  *sync.Cond
	ready int
	ended bool

	// frame triggers are added before the television is running
	triggers []FrameTrigger
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision(mem Memory, renderer LineRenderer, irq interrupts.Sink, trigger dma.Trigger) *Television {
	tv := &Television{
		mem:      mem,
		renderer: renderer,
		irq:      irq,
		dma:      trigger,
		lmtr:     limiter.NewLimiter(),
		back:     &frame.Frame{},
		front:    &frame.Frame{},
	}
	tv.cond = sync.NewCond(&tv.crit)
	return tv
}

func (tv *Television) String() string {
	return "television"
}

// AllowLogging implements the logger.Permission interface.
func (tv *Television) AllowLogging() bool {
	return true
}

// Reset the television to the start of a frame. Should not be called while
// the television is running.
func (tv *Television) Reset() {
	tv.line = 0
	tv.frameNum = 0
	tv.back.Clear(0)

	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.front.Clear(0)
	tv.ready = 0
	tv.ended = false
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	tv.triggers = append(tv.triggers, f)
}

// AddSyncPresenter registers a Presenter that is called with every frame on
// the timing goroutine. Unlike Consume() no frame is ever skipped, at the cost
// of the Presenter delaying the next frame.
func (tv *Television) AddSyncPresenter(p Presenter) {
	tv.AddFrameTrigger(syncPresenter{tv: tv, p: p})
}

type syncPresenter struct {
	tv *Television
	p  Presenter
}

func (s syncPresenter) NewFrame(_ int) error {
	return s.tv.BorrowFrame(func(_ int, f *frame.Frame) error {
		return s.p.Present(f)
	})
}

// SetFPSCap sets whether the television waits for the real-time duration of
// each scanline. With the cap disabled the television runs as quickly as
// possible.
func (tv *Television) SetFPSCap(set bool) {
	tv.lmtr.SetActive(set)
}

// GetActualFPS returns the measured frame rate.
func (tv *Television) GetActualFPS() float32 {
	fps, _ := tv.lmtr.Measured.Load().(float32)
	return fps
}

// GetState returns the television attribute that is requested. Should only be
// called from the timing goroutine, for example by a FrameTrigger, or when the
// television is not running.
func (tv *Television) GetState(request StateReq) int {
	switch request {
	case ReqFrameNum:
		return tv.frameNum
	case ReqScanline:
		return tv.line
	}
	return 0
}

// Step the television through a single scanline. Returns once the real-time
// duration of the scanline has elapsed.
func (tv *Television) Step() {
	line := tv.line
	start := time.Now()

	stat := tv.updateStatus(line)
	if stat&statusVCounter != 0 && stat&statusVCounterIRQ != 0 {
		tv.irq.RequestInterrupt(interrupts.LCDVCounterMatch)
	}

	if line < specification.Height {
		tv.renderer.RenderLine(line, tv.back.Row(line))
	}

	if line == specification.ScanlineVBlank {
		tv.dma.SignalVBlank()
		if stat&statusVBlankIRQ != 0 {
			tv.irq.RequestInterrupt(interrupts.LCDVBlank)
		}
		tv.endOfFrame()
	}

	tv.lmtr.WaitUntil(start.Add(specification.VisiblePhase))

	stat = tv.setHBlank(true)
	tv.dma.SignalHBlank()
	if line < specification.Height && stat&statusHBlankIRQ != 0 {
		tv.irq.RequestInterrupt(interrupts.LCDHBlank)
	}

	tv.lmtr.WaitUntil(start.Add(specification.Scanline))
	tv.setHBlank(false)

	tv.line++
	if tv.line >= specification.ScanlinesTotal {
		tv.line = 0
	}
}

// swap the frame buffers and notify anything waiting for a new frame
func (tv *Television) endOfFrame() {
	tv.frameNum++

	tv.crit.Lock()
	tv.back, tv.front = tv.front, tv.back
	tv.ready = tv.frameNum
	tv.cond.Broadcast()
	tv.crit.Unlock()

	tv.renderer.EndOfFrame()

	for _, f := range tv.triggers {
		if err := f.NewFrame(tv.frameNum); err != nil {
			logger.Log(tv, "television", err)
		}
	}
}

// Run the television until the context is cancelled. Cancellation is checked
// at the start of every frame. Frames that have already started are always
// completed.
func (tv *Television) Run(ctx context.Context) error {
	logger.Logf(tv, "television", "running (fps cap %v)", tv.lmtr.Active())
	defer tv.end()

	for {
		select {
		case <-ctx.Done():
			logger.Logf(tv, "television", "stopped after %d frames", tv.frameNum)
			return nil
		default:
		}

		for range specification.ScanlinesTotal {
			tv.Step()
		}
		tv.lmtr.CheckFrame()
	}
}

// RunFrames runs the television for the specified number of complete frames
// or until the context is cancelled.
func (tv *Television) RunFrames(ctx context.Context, frames int) error {
	defer tv.end()

	for range frames {
		if err := ctx.Err(); err != nil {
			return curated.Errorf("television: %v", err)
		}
		for range specification.ScanlinesTotal {
			tv.Step()
		}
		tv.lmtr.CheckFrame()
	}
	return nil
}

// mark the television as ended and wake any waiting presenters
func (tv *Television) end() {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.ended = true
	tv.cond.Broadcast()
}

// WaitFrame blocks until a frame newer than last is available. Returns the
// number of the newest frame.
//
// Returns an error with the Ended pattern if the television has stopped, or
// the error of the context if it is cancelled.
func (tv *Television) WaitFrame(ctx context.Context, last int) (int, error) {
	stop := context.AfterFunc(ctx, func() {
		tv.crit.Lock()
		defer tv.crit.Unlock()
		tv.cond.Broadcast()
	})
	defer stop()

	tv.crit.Lock()
	defer tv.crit.Unlock()

	for tv.ready <= last {
		if tv.ended {
			return tv.ready, curated.Errorf(Ended)
		}
		if err := ctx.Err(); err != nil {
			return tv.ready, err
		}
		tv.cond.Wait()
	}

	return tv.ready, nil
}

// BorrowFrame calls the function with the most recently completed frame. The
// frame will not be swapped while the function is running.
func (tv *Television) BorrowFrame(fn func(frameNum int, f *frame.Frame) error) error {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	return fn(tv.ready, tv.front)
}

// Consume presents every frame until the television ends or the context is
// cancelled. Frames completed while the presenter is busy are skipped.
func (tv *Television) Consume(ctx context.Context, p Presenter) error {
	var last int
	for {
		n, err := tv.WaitFrame(ctx, last)
		if err != nil {
			if curated.Is(err, Ended) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		last = n

		err = tv.BorrowFrame(func(_ int, f *frame.Frame) error {
			return p.Present(f)
		})
		if err != nil {
			return curated.Errorf("television: %v", err)
		}
	}
}
