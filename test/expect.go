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

package test

import (
	"fmt"
	"strings"
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, unexpectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition. Bool values must be
// true and error values must be nil.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("a success value is expected for type %T", v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition. Bool values must be
// false and error values must not be nil.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("a failure value is expected for type %T", v)
		return false
	}
	return true
}

// returns true if v represents success
func expect(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}
	return false
}

func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := strings.Builder{}
	for _, t := range tags {
		s.WriteString(fmt.Sprintf("%v: ", t))
	}
	return s.String()
}
