// Package tracklist reconstructs the album structure implied by a cue
// sheet's command sequence: which tracks live in which files, their
// titles and performers, and the per-track timing the sheet only
// states indirectly.
package tracklist

import (
	"github.com/rabidaudio/cuesheet/cue"
)

// Index is one named time offset within a track. By convention index 0
// marks the pregap start and index 1 the track start.
type Index struct {
	Number int
	Time   cue.Time
}

// Track is one track carved out of a file.
type Track struct {
	// Number is the track number as declared in the sheet. Numbers
	// are usually but not necessarily contiguous.
	Number int

	Type  cue.TrackType
	Title string

	// Performer, Songwriter and Isrc are empty when the sheet does
	// not state them.
	Performer  string
	Songwriter string
	Isrc       string

	// Flags holds the subcode flags from a FLAGS command, if any.
	Flags []cue.TrackFlag

	// Indexes are the index points in encounter order. A PREGAP
	// command contributes a synthesized index 0.
	Indexes []Index

	// Postgap is the declared post-track silence, nil when absent.
	Postgap *cue.Time

	// Duration is inferred from the following track's first index
	// point. It is nil for the last track of a file (nothing bounds
	// it) and for tracks whose neighbors carry no index points.
	Duration *cue.Time
}

// TrackFile is one physical file and the tracks carved out of it.
type TrackFile struct {
	Name   string
	Format cue.FileFormat
	Tracks []Track
}

// Tracklist is the queryable representation of a whole cue sheet.
// It is immutable once assembled.
type Tracklist struct {
	// Title is the album title. It is mandatory in a well-formed
	// sheet; assembly fails when it is missing.
	Title string

	// Performer, Songwriter, Catalog and CdTextFile are empty when
	// the sheet does not state them.
	Performer  string
	Songwriter string
	Catalog    string
	CdTextFile string

	Files []TrackFile
}

// Parse runs the full pipeline over the contents of a cue sheet:
// tokenize, group into commands, assemble.
func Parse(source string) (*Tracklist, error) {
	tokens, err := cue.Tokenize(source)
	if err != nil {
		return nil, err
	}
	commands, err := cue.ParseCommands(tokens)
	if err != nil {
		return nil, err
	}
	return Assemble(commands)
}

// Tracks returns all tracks across all files in sheet order.
func (t *Tracklist) Tracks() []Track {
	var tracks []Track
	for _, f := range t.Files {
		tracks = append(tracks, f.Tracks...)
	}
	return tracks
}

// cmdCursor walks the command sequence. Assembly only ever looks at
// the head command to decide which block it opens or closes.
type cmdCursor struct {
	commands []cue.Command
	pos      int
}

func (c *cmdCursor) peek() (cue.Command, bool) {
	if c.pos >= len(c.commands) {
		return nil, false
	}
	return c.commands[c.pos], true
}

func (c *cmdCursor) advance() {
	c.pos++
}

// Assemble reconstructs the tracklist from an ordered command
// sequence. Commands are consumed in two phases: the album header
// (Title, Performer and friends before the first FILE), then one
// block per FILE command. Repeated Title/Performer commands follow
// last-write-wins. Any command left over after the file blocks makes
// the sequence structurally inconsistent and fails assembly.
func Assemble(commands []cue.Command) (*Tracklist, error) {
	cur := &cmdCursor{commands: commands}
	list := &Tracklist{}

	// Album header.
	titled := false
header:
	for {
		head, ok := cur.peek()
		if !ok {
			break
		}
		switch cmd := head.(type) {
		case cue.Title:
			list.Title = cmd.Name
			titled = true
		case cue.Performer:
			list.Performer = cmd.Name
		case cue.Songwriter:
			list.Songwriter = cmd.Name
		case cue.Catalog:
			list.Catalog = cmd.Code
		case cue.CdTextFile:
			list.CdTextFile = cmd.Path
		case cue.Rem:
			// remarks carry no album structure
		default:
			break header
		}
		cur.advance()
	}
	if !titled {
		return nil, &AssemblyError{Kind: ErrMissingAlbumTitle}
	}

	// File blocks.
	for {
		head, ok := cur.peek()
		if !ok {
			break
		}
		fileCmd, ok := head.(cue.File)
		if !ok {
			break
		}
		cur.advance()
		file, err := assembleFile(cur, fileCmd)
		if err != nil {
			return nil, err
		}
		list.Files = append(list.Files, *file)
	}

	if head, ok := cur.peek(); ok {
		return nil, &AssemblyError{Kind: ErrUnexpectedCommand, Command: head}
	}

	return list, nil
}

func assembleFile(cur *cmdCursor, cmd cue.File) (*TrackFile, error) {
	file := &TrackFile{Name: cmd.Path, Format: cmd.Format}

	for {
		head, ok := cur.peek()
		if !ok {
			break
		}
		trackCmd, ok := head.(cue.Track)
		if !ok {
			break
		}
		cur.advance()
		track, err := assembleTrack(cur, trackCmd)
		if err != nil {
			return nil, err
		}
		file.Tracks = append(file.Tracks, *track)
	}

	if err := inferDurations(file.Tracks); err != nil {
		return nil, err
	}
	return file, nil
}

// assembleTrack drains the commands belonging to one TRACK block.
func assembleTrack(cur *cmdCursor, cmd cue.Track) (*Track, error) {
	track := &Track{Number: cmd.Number, Type: cmd.Type}

	titled := false
drain:
	for {
		head, ok := cur.peek()
		if !ok {
			break
		}
		switch sub := head.(type) {
		case cue.Title:
			track.Title = sub.Name
			titled = true
		case cue.Performer:
			track.Performer = sub.Name
		case cue.Songwriter:
			track.Songwriter = sub.Name
		case cue.Isrc:
			track.Isrc = sub.Code
		case cue.Flags:
			track.Flags = append(track.Flags, sub.Flags...)
		case cue.Index:
			track.Indexes = append(track.Indexes, Index{Number: sub.Number, Time: sub.Time})
		case cue.Postgap:
			d := sub.Duration
			track.Postgap = &d
		case cue.Pregap:
			// The pregap is expressed as an index 0 offset: the
			// following INDEX's time minus the pregap duration.
			index, err := pregapIndex(cur, track.Number, sub)
			if err != nil {
				return nil, err
			}
			track.Indexes = append(track.Indexes, index)
		case cue.Rem:
			// remarks carry no track structure
		default:
			break drain
		}
		cur.advance()
	}

	if !titled {
		return nil, &AssemblyError{Kind: ErrMissingTrackTitle, TrackNumber: track.Number}
	}
	return track, nil
}

// pregapIndex synthesizes the index 0 entry a PREGAP command implies.
// The cursor still points at the Pregap command; its following command
// must be the INDEX the gap precedes.
func pregapIndex(cur *cmdCursor, trackNumber int, cmd cue.Pregap) (Index, error) {
	if cur.pos+1 >= len(cur.commands) {
		return Index{}, &AssemblyError{Kind: ErrDanglingPregap, TrackNumber: trackNumber}
	}
	index, ok := cur.commands[cur.pos+1].(cue.Index)
	if !ok {
		return Index{}, &AssemblyError{Kind: ErrDanglingPregap, TrackNumber: trackNumber}
	}
	start, err := index.Time.Sub(cmd.Duration)
	if err != nil {
		return Index{}, err
	}
	return Index{Number: 0, Time: start}, nil
}

// inferDurations fills in track durations from adjacent pairs: a
// track runs from its last index point to the next track's first.
// The last track is left open, and a track without index points
// breaks the chain on both sides.
func inferDurations(tracks []Track) error {
	for i := 1; i < len(tracks); i++ {
		prev, next := &tracks[i-1], &tracks[i]
		if len(prev.Indexes) == 0 || len(next.Indexes) == 0 {
			continue
		}
		start := prev.Indexes[len(prev.Indexes)-1].Time
		stop := next.Indexes[0].Time
		duration, err := stop.Sub(start)
		if err != nil {
			return err
		}
		prev.Duration = &duration
	}
	return nil
}
