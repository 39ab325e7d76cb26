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

package scene

import (
	"fmt"
	"path/filepath"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "scene: %s: %v"
	Closed      = "scene: closed"
)

// Memory defines the memory operations required by a scene script.
type Memory interface {
	bus.Memory
	Fill16(address uint32, count int, value uint16)
}

// Scene is a loaded Lua script. The functions of the type are not safe to call
// concurrently. Setup() should be called before the television starts and
// NewFrame() is only ever called by the television.
type Scene struct {
	L    *lua.LState
	mem  Memory
	name string

	// the optional functions defined by the script. nil if the function
	// is not defined
	setup lua.LValue
	frame lua.LValue
}

// the libraries opened for every script
var libraries = []struct {
	name string
	fn   lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

func newScene(mem Memory, name string) (*Scene, error) {
	scn := &Scene{
		L:    lua.NewState(lua.Options{SkipOpenLibs: true}),
		mem:  mem,
		name: name,
	}

	for _, lib := range libraries {
		err := scn.L.CallByParam(lua.P{
			Fn:      scn.L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			scn.L.Close()
			return nil, curated.Errorf(ScriptError, name, err)
		}
	}

	scn.register()

	return scn, nil
}

// NewScene loads the Lua script in the named file. The top level of the
// script is run immediately.
func NewScene(mem Memory, filename string) (*Scene, error) {
	scn, err := newScene(mem, filepath.Base(filename))
	if err != nil {
		return nil, err
	}

	if err := scn.L.DoFile(filename); err != nil {
		scn.L.Close()
		return nil, curated.Errorf(ScriptError, scn.name, err)
	}

	scn.functions()

	return scn, nil
}

// NewSceneFromString is the same as NewScene but the script is provided as a
// string rather than as a file.
func NewSceneFromString(mem Memory, name string, script string) (*Scene, error) {
	scn, err := newScene(mem, name)
	if err != nil {
		return nil, err
	}

	if err := scn.L.DoString(script); err != nil {
		scn.L.Close()
		return nil, curated.Errorf(ScriptError, scn.name, err)
	}

	scn.functions()

	return scn, nil
}

// find optional global functions
func (scn *Scene) functions() {
	if fn := scn.L.GetGlobal("setup"); fn.Type() == lua.LTFunction {
		scn.setup = fn
	}
	if fn := scn.L.GetGlobal("frame"); fn.Type() == lua.LTFunction {
		scn.frame = fn
	}
}

func (scn *Scene) String() string {
	return scn.name
}

// AllowLogging implements the logger.Permission interface.
func (scn *Scene) AllowLogging() bool {
	return true
}

func (scn *Scene) logf(detail string, args ...any) {
	logger.Logf(scn, fmt.Sprintf("scene: %s", scn.name), detail, args...)
}

// Close the scene. The scene can not be used after it has been closed.
func (scn *Scene) Close() {
	if scn.L == nil {
		return
	}
	scn.L.Close()
	scn.L = nil
}

// Setup calls the setup() function of the script if it exists.
func (scn *Scene) Setup() error {
	if scn.L == nil {
		return curated.Errorf(Closed)
	}
	if scn.setup == nil {
		return nil
	}
	err := scn.L.CallByParam(lua.P{
		Fn:      scn.setup,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		return curated.Errorf(ScriptError, scn.name, err)
	}
	return nil
}

// NewFrame implements the television.FrameTrigger interface. It calls the
// frame() function of the script if it exists.
func (scn *Scene) NewFrame(frameNum int) error {
	if scn.L == nil {
		return curated.Errorf(Closed)
	}
	if scn.frame == nil {
		return nil
	}
	err := scn.L.CallByParam(lua.P{
		Fn:      scn.frame,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(frameNum))
	if err != nil {
		return curated.Errorf(ScriptError, scn.name, err)
	}
	return nil
}
