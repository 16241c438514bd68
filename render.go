package main

import (
	"fmt"
	"io"

	"github.com/rabidaudio/cuesheet/tracklist"
)

// render writes the tracklist in the layout the MusicBrainz tracklist
// importer accepts, one line per track:
//
//	NN Title - Performer mm:ss
//
// A cue sheet alone cannot bound the last track of a file, so unknown
// durations render as `??:??`. Tracks without their own PERFORMER fall
// back to the album performer; a track with neither is an error since
// the importer requires one.
func render(w io.Writer, list *tracklist.Tracklist) error {
	for _, t := range list.Tracks() {
		performer := t.Performer
		if performer == "" {
			performer = list.Performer
		}
		if performer == "" {
			return fmt.Errorf("track %02d has no performer", t.Number)
		}

		duration := "??:??"
		if t.Duration != nil {
			duration = t.Duration.MinSec()
		}

		if _, err := fmt.Fprintf(w, "%02d %s - %s %s\n", t.Number, t.Title, performer, duration); err != nil {
			return err
		}
	}
	return nil
}
