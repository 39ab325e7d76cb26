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

package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// Sentinal error patterns.
const (
	NoFrame    = "screenshot: no frame to save"
	FileExists = "screenshot: file already exists (%s)"
)

// Scale creates an image of the frame scaled by an integer amount.
func Scale(f *frame.Frame, scale int) *image.RGBA {
	scale = max(1, scale)

	src := image.NewRGBA(f.Bounds())
	f.CopyRGBA(src.Pix)
	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, specification.Width*scale, specification.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode the frame as a PNG image.
func Encode(w io.Writer, f *frame.Frame, scale int) error {
	if err := png.Encode(w, Scale(f, scale)); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}

// Shot keeps a copy of the last frame presented to it.
type Shot struct {
	scale int

	crit     sync.Mutex
	last     frame.Frame
	frameNum int
}

// NewShot is the preferred method of initialisation for the Shot type.
func NewShot(scale int) *Shot {
	return &Shot{scale: scale}
}

// Present implements the television.Presenter interface.
func (sht *Shot) Present(f *frame.Frame) error {
	sht.crit.Lock()
	defer sht.crit.Unlock()
	sht.last = *f
	sht.frameNum++
	return nil
}

// Save the most recent frame. The frame number and file extension are
// appended to fileNameBase. Existing files are never overwritten. Returns the
// name of the saved file.
func (sht *Shot) Save(fileNameBase string) (string, error) {
	sht.crit.Lock()
	defer sht.crit.Unlock()

	if sht.frameNum == 0 {
		return "", curated.Errorf(NoFrame)
	}

	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, sht.frameNum)

	f, err := os.OpenFile(imageName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", curated.Errorf(FileExists, imageName)
		}
		return "", curated.Errorf("screenshot: %v", err)
	}
	defer f.Close()

	if err := Encode(f, &sht.last, sht.scale); err != nil {
		return "", err
	}

	return imageName, nil
}
