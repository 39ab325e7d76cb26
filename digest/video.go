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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// Video is an implementation of the television.Presenter interface with an
// embedded SHA-1 hash of the frames. Very useful for regression testing where
// the speed of a cryptographic task is not important.
type Video struct {
	crit   sync.Mutex
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// two bytes per pixel
const pixelDepth = 2

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	// the pixels array contains enough room for the previous digest value
	// followed by the frame
	return &Video{
		pixels: make([]byte, sha1.Size+specification.Width*specification.Height*pixelDepth),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames presented since the last reset.
func (dig *Video) Frames() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frames
}

// Present implements the television.Presenter interface.
func (dig *Video) Present(f *frame.Frame) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: digest error while presenting frame")
	}

	for i, p := range f.Pixels {
		binary.LittleEndian.PutUint16(dig.pixels[n+i*pixelDepth:], p&frame.ColourMask)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
