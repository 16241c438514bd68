package cue

import (
	"errors"
	"fmt"
)

// FramesPerSecond is the number of frames in one second of disc time.
// A frame is the smallest valid unit of position for a track, defined
// as 1/75th of a second. Cue sheet offsets are specified in MM:SS:FF.
//
// Note that this definition of frame is interchangable with sector.
// It is distinct from a 33-byte channel data frame, which this package does
// not concern itself with.
//
// For more information, see [Wikipedia].
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Compact_Disc_Digital_Audio#Frames_and_timecode_frames
const FramesPerSecond = 75

// ErrNegativeTime is returned by [Time.Sub] when the subtrahend is
// later than the minuend. Time never represents a negative offset.
var ErrNegativeTime = errors.New("cue: negative time")

// Time is a disc position or duration in the cue sheet MM:SS:FF format.
// Sec is in [0,60) and Frame is in [0,75) for any Time produced by this
// package. The zero value is position zero.
type Time struct {
	Min   int
	Sec   int
	Frame int
}

// ParseTime parses the strict 8-character `mm:ss:ff` form.
// Anything longer, shorter, or with non-digit components is rejected.
func ParseTime(s string) (Time, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return Time{}, fmt.Errorf("cue: invalid time %q", s)
	}
	components := [3]int{}
	for i, offset := range [3]int{0, 3, 6} {
		hi, lo := s[offset], s[offset+1]
		if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
			return Time{}, fmt.Errorf("cue: invalid time %q", s)
		}
		components[i] = int(hi-'0')*10 + int(lo-'0')
	}
	return Time{Min: components[0], Sec: components[1], Frame: components[2]}, nil
}

// TimeFromFrames converts a total frame count back into a normalized
// Time. n must be non-negative.
func TimeFromFrames(n int) Time {
	secs := n / FramesPerSecond
	return Time{
		Min:   secs / 60,
		Sec:   secs % 60,
		Frame: n % FramesPerSecond,
	}
}

// TotalFrames reports the position as a count of frames from zero.
func (t Time) TotalFrames() int {
	return (t.Min*60+t.Sec)*FramesPerSecond + t.Frame
}

// Sub returns the distance t-other. If other is later than t it
// returns [ErrNegativeTime] rather than wrapping around.
func (t Time) Sub(other Time) (Time, error) {
	diff := t.TotalFrames() - other.TotalFrames()
	if diff < 0 {
		return Time{}, fmt.Errorf("%w: %v - %v", ErrNegativeTime, t, other)
	}
	return TimeFromFrames(diff), nil
}

// Compare orders two times by total frame count. It returns -1 if t is
// earlier than other, 0 if equal, and 1 if later.
func (t Time) Compare(other Time) int {
	a, b := t.TotalFrames(), other.TotalFrames()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the canonical `mm:ss:ff` form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Min, t.Sec, t.Frame)
}

// MinSec renders the shortened `mm:ss` form, dropping the frame component.
func (t Time) MinSec() string {
	return fmt.Sprintf("%02d:%02d", t.Min, t.Sec)
}
