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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/digest"
	"github.com/jetsetilly/gopheradvance/gui/ebitenpresenter"
	"github.com/jetsetilly/gopheradvance/gui/sdlpresenter"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/video"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/hardware/television"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/scene"
	"github.com/jetsetilly/gopheradvance/screenshot"
	"github.com/jetsetilly/gopheradvance/statsview"
	"github.com/jetsetilly/gopheradvance/version"
)

// both SDL and ebiten require window handling to occur on the main thread
func init() {
	runtime.LockOSThread()
}

// how long the main thread sleeps when there is no gui to service
const idleWait = 10 * time.Millisecond

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() MUST ONLY by called as part of a larger loop from the main
	// thread. It should service all gui events that are not safe to do in
	// other goroutines
	Service()
}

// communication between the main() function and the launch() function
type mainSync struct {
	quit    chan int
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		quit:          make(chan int),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// #ctrlc cancels the context. the launch() function will quit as soon as
	// the current frame has completed
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(ctx, cancel, sync, os.Args[1:])

	exitVal := 0

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			cancel()

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				gui = g
				sync.creation <- gui
			}

		case exitVal = <-sync.quit:
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				time.Sleep(idleWait)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(ctx context.Context, cancel context.CancelFunc, sync *mainSync, args []string) {
	md := modalflag.NewModes(os.Stdout, args)
	md.AddModes("RUN", "HEADLESS", "SHOT", "STATE")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- 10
		return
	}

	if *showVersion {
		v, r := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, v)
		if r != "" {
			fmt.Println(r)
		}
		sync.quit <- 0
		return
	}

	if *stats {
		statsview.Launch(ctx, os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, cancel, md, sync)

	case "HEADLESS":
		err = headless(ctx, md, os.Stdout)

	case "SHOT":
		err = shot(ctx, md, os.Stdout)

	case "STATE":
		err = state(ctx, md, os.Stdout)
	}

	// make sure the gui stops running before quitting
	cancel()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.quit <- 20
		return
	}

	sync.quit <- 0
}

// flags common to every mode. must be added before the call to Parse()
type common struct {
	prefs *string
	echo  *bool
}

func addCommonFlags(md *modalflag.Modes) common {
	return common{
		prefs: md.AddString("prefs", "", "preferences to apply for this run only (eg. \"display.scale::2; television.fpscap::false\")"),
		echo:  md.AddBool("log", false, "echo log to stdout"),
	}
}

// prepares the console and loads the scene named in the first remaining
// argument
func newConsole(md *modalflag.Modes, cmn common) (*hardware.Console, *scene.Scene, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, curated.Errorf("scene script required")
	case 1:
	default:
		return nil, nil, curated.Errorf("too many arguments for %s mode", md)
	}

	if *cmn.prefs != "" {
		prefs.PushCommandLineStack(*cmn.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	if *cmn.echo || p.Echo.Get().(bool) {
		logger.SetEchoFile(os.Stdout)
	}

	con, err := hardware.NewConsole(p)
	if err != nil {
		return nil, nil, err
	}

	scn, err := scene.NewScene(con.Mem, md.GetArg(0))
	if err != nil {
		return nil, nil, err
	}

	err = scn.Setup()
	if err != nil {
		scn.Close()
		return nil, nil, err
	}

	con.TV.AddFrameTrigger(scn)

	return con, scn, nil
}

func run(ctx context.Context, cancel context.CancelFunc, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("The display can be changed with the display.presenter preference.\nPress F12 for a screenshot (SDL) or to copy the frame to the clipboard (ebiten).")
	cmn := addCommonFlags(md)

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	con, scn, err := newConsole(md, cmn)
	if err != nil {
		return err
	}
	defer scn.Close()

	var presenter television.Presenter
	scale := con.Prefs.Scale.Get().(int)

	sync.creator <- func() (GuiCreator, error) {
		switch con.Prefs.Presenter.Get().(string) {
		case preferences.PresenterEbiten:
			p := ebitenpresenter.NewPresenter(scale)
			presenter = p
			return &ebitenGui{ctx: ctx, cancel: cancel, p: p}, nil
		default:
			p, err := sdlpresenter.NewPresenter(scale)
			if err != nil {
				return nil, err
			}
			presenter = p
			return &sdlGui{cancel: cancel, p: p}, nil
		}
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return con.Run(ctx)
	})
	g.Go(func() error {
		return con.TV.Consume(ctx, presenter)
	})
	return g.Wait()
}

func headless(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	cmn := addCommonFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	con, scn, err := newConsole(md, cmn)
	if err != nil {
		return err
	}
	defer scn.Close()

	dig := digest.NewVideo()
	con.TV.AddSyncPresenter(dig)
	con.TV.SetFPSCap(false)

	err = con.RunForFrameCount(ctx, *frames)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s (%d frames)\n", dig.Hash(), dig.Frames())

	return nil
}

func shot(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	cmn := addCommonFlags(md)
	frames := md.AddInt("frames", 1, "number of frames to run before taking the screenshot")
	scale := md.AddInt("scale", 1, "integer scaling of screenshot")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	con, scn, err := newConsole(md, cmn)
	if err != nil {
		return err
	}
	defer scn.Close()

	sht := screenshot.NewShot(*scale)
	con.TV.AddSyncPresenter(sht)
	con.TV.SetFPSCap(false)

	err = con.RunForFrameCount(ctx, *frames)
	if err != nil {
		return err
	}

	fn, err := sht.Save(paths.UniqueFilename("shot", md.GetArg(0)))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "screenshot saved to %s\n", fn)

	return nil
}

// the information included in the STATE graph
type stateDump struct {
	FrameNum  int
	Registers registers.Registers
	Objects   []video.Attributes
}

func state(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Output is in the graphviz dot format.")
	cmn := addCommonFlags(md)
	frames := md.AddInt("frames", 1, "number of frames to run before dumping the state")
	all := md.AddBool("allobjects", false, "include disabled objects")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	con, scn, err := newConsole(md, cmn)
	if err != nil {
		return err
	}
	defer scn.Close()

	con.TV.SetFPSCap(false)

	err = con.RunForFrameCount(ctx, *frames)
	if err != nil {
		return err
	}

	dump := stateDump{
		FrameNum:  con.TV.GetState(television.ReqFrameNum),
		Registers: con.PPU.Snapshot(),
	}
	for _, o := range con.PPU.Objects() {
		if *all || !o.Disabled {
			dump.Objects = append(dump.Objects, o)
		}
	}

	memviz.Map(output, &dump)

	return nil
}

// sdlGui adapts sdlpresenter.Presenter to the GuiCreator interface
type sdlGui struct {
	cancel context.CancelFunc
	p      *sdlpresenter.Presenter
}

func (g *sdlGui) Destroy(output io.Writer) {
	if err := g.p.Close(); err != nil {
		fmt.Fprintln(output, err)
	}
}

func (g *sdlGui) Service() {
	if err := g.p.Service(g.cancel); err != nil {
		logger.Log(logger.Allow, "sdl", err)
		g.cancel()
	}
}

// ebitenGui adapts ebitenpresenter.Presenter to the GuiCreator interface.
// ebiten takes over the main thread until the window is closed so Service()
// only returns once the context has been cancelled
type ebitenGui struct {
	ctx    context.Context
	cancel context.CancelFunc
	p      *ebitenpresenter.Presenter
	done   bool
}

func (g *ebitenGui) Destroy(_ io.Writer) {
}

func (g *ebitenGui) Service() {
	if g.done {
		time.Sleep(idleWait)
		return
	}
	g.done = true
	if err := g.p.Run(g.ctx, g.cancel); err != nil {
		logger.Log(logger.Allow, "ebiten", err)
	}
}
