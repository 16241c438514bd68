package cue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("10:11:12")
	require.NoError(t, err)
	assert.Equal(t, Time{Min: 10, Sec: 11, Frame: 12}, tm)

	tm, err = ParseTime("00:00:00")
	require.NoError(t, err)
	assert.Equal(t, Time{}, tm)

	for _, bad := range []string{
		"",
		"10",
		"10:11",
		"10:11:12:13",
		"1:11:12",
		"10-11-12",
		"aa:bb:cc",
		"10:11:1f",
		" 10:11:12",
	} {
		_, err := ParseTime(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimeFrameRoundTrip(t *testing.T) {
	for _, min := range []int{0, 1, 59, 61, 120} {
		for _, sec := range []int{0, 1, 30, 59} {
			for _, frame := range []int{0, 1, 37, 74} {
				tm := Time{Min: min, Sec: sec, Frame: frame}
				assert.Equal(t, tm, TimeFromFrames(tm.TotalFrames()))
			}
		}
	}
}

func TestTimeStringRoundTrip(t *testing.T) {
	for _, tm := range []Time{
		{},
		{Min: 4, Sec: 17, Frame: 52},
		{Min: 61, Sec: 8, Frame: 8},
	} {
		parsed, err := ParseTime(tm.String())
		require.NoError(t, err)
		assert.Equal(t, tm, parsed)
	}
}

func TestTimeDisplay(t *testing.T) {
	tm := Time{Min: 4, Sec: 7, Frame: 52}
	assert.Equal(t, "04:07:52", tm.String())
	assert.Equal(t, "04:07", tm.MinSec())
}

func TestTimeTotalFrames(t *testing.T) {
	assert.Equal(t, 0, Time{}.TotalFrames())
	assert.Equal(t, 74, Time{Frame: 74}.TotalFrames())
	assert.Equal(t, 75, Time{Sec: 1}.TotalFrames())
	assert.Equal(t, 60*75, Time{Min: 1}.TotalFrames())
	assert.Equal(t, (4*60+17)*75+52, Time{Min: 4, Sec: 17, Frame: 52}.TotalFrames())
}

func TestTimeSub(t *testing.T) {
	a := Time{Min: 4, Sec: 17, Frame: 52}
	b := Time{Min: 1, Sec: 30, Frame: 60}

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, Time{Min: 2, Sec: 46, Frame: 67}, diff)

	// a track of zero length is fine
	diff, err = a.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, Time{}, diff)

	// but time never runs backwards
	_, err = b.Sub(a)
	assert.ErrorIs(t, err, ErrNegativeTime)
}

func TestTimeCompare(t *testing.T) {
	a := Time{Min: 1}
	b := Time{Sec: 59, Frame: 74}
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(Time{Min: 1}))
}
