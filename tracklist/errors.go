package tracklist

import (
	"fmt"

	"github.com/rabidaudio/cuesheet/cue"
)

// AssemblyErrorKind classifies the ways a syntactically valid command
// sequence can still fail to describe a coherent album.
type AssemblyErrorKind int

const (
	// ErrMissingAlbumTitle means no TITLE command appeared before the
	// first FILE. An album title is mandatory.
	ErrMissingAlbumTitle AssemblyErrorKind = 1

	// ErrMissingTrackTitle means a TRACK block carried no TITLE.
	ErrMissingTrackTitle AssemblyErrorKind = 2

	// ErrDanglingPregap means a PREGAP command was not immediately
	// followed by the INDEX it precedes.
	ErrDanglingPregap AssemblyErrorKind = 3

	// ErrUnexpectedCommand means a command remained where no block
	// could consume it (e.g. an INDEX outside any TRACK).
	ErrUnexpectedCommand AssemblyErrorKind = 4
)

// AssemblyError reports a structurally inconsistent command sequence.
type AssemblyError struct {
	Kind AssemblyErrorKind

	// TrackNumber identifies the offending track for track-level kinds.
	TrackNumber int

	// Command is the unconsumable command for ErrUnexpectedCommand.
	Command cue.Command
}

func (e *AssemblyError) Error() string {
	switch e.Kind {
	case ErrMissingAlbumTitle:
		return "tracklist: no album title"
	case ErrMissingTrackTitle:
		return fmt.Sprintf("tracklist: track %02d has no title", e.TrackNumber)
	case ErrDanglingPregap:
		return fmt.Sprintf("tracklist: PREGAP in track %02d is not followed by an INDEX", e.TrackNumber)
	case ErrUnexpectedCommand:
		return fmt.Sprintf("tracklist: unexpected %T command", e.Command)
	default:
		return fmt.Sprintf("tracklist: unknown assembly error code: %v", int(e.Kind))
	}
}
