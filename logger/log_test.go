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

package logger_test

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", fmt.Errorf("this is an error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is an error\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is an error\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is an error\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "ppu", "line %d", 10)
	log.Logf(logger.Allow, "ppu", "line %d", 10)
	log.Logf(logger.Allow, "ppu", "line %d", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "ppu: line 10 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, w.String(), "echo: hello\n")

	c := &strings.Builder{}
	log.SetEcho(logger.NewColorizer(c))
	log.Log(logger.Allow, "echo", "again")
	test.ExpectSuccess(t, strings.Contains(c.String(), "echo"))
	test.ExpectSuccess(t, strings.HasSuffix(c.String(), ": again\n"))
}

// randomise whether logging is allowed. there's no need for the randomisation
// but it's as good a demonstration as any
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestEchoFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "echo")
	test.DemandSuccess(t, err)
	defer f.Close()

	// a regular file is not a terminal so the echo is not colorized
	logger.SetEchoFile(f)
	defer logger.SetEcho(nil)
	logger.Log(logger.Allow, "file", "plain")

	b, err := os.ReadFile(f.Name())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "file: plain\n")
}
