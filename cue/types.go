package cue

import (
	"fmt"
	"strings"
)

// FileFormat describes the encoding of a file named by a FILE command.
type FileFormat int

const (
	// Wave also covers other lossless formats (FLAC images are
	// conventionally declared WAVE).
	Wave FileFormat = iota
	Mp3
	Aiff
	Binary
	Motorola
)

// ParseFileFormat matches the known format keywords case-insensitively.
func ParseFileFormat(s string) (FileFormat, error) {
	switch strings.ToUpper(s) {
	case "WAVE":
		return Wave, nil
	case "MP3":
		return Mp3, nil
	case "AIFF":
		return Aiff, nil
	case "BINARY":
		return Binary, nil
	case "MOTOROLA":
		return Motorola, nil
	default:
		return 0, fmt.Errorf("invalid file format %q", s)
	}
}

func (f FileFormat) String() string {
	switch f {
	case Wave:
		return "WAVE"
	case Mp3:
		return "MP3"
	case Aiff:
		return "AIFF"
	case Binary:
		return "BINARY"
	case Motorola:
		return "MOTOROLA"
	default:
		return fmt.Sprintf("FileFormat(%d)", int(f))
	}
}

// TrackType describes the data mode of a track. Audio and Cdg tracks
// have a fixed sector layout; data tracks additionally carry the
// sector mode and byte size from their keyword (e.g. MODE2/2336).
type TrackType struct {
	Kind TrackKind

	// Mode is the CD-ROM sector mode (1 or 2) for KindMode tracks.
	Mode int

	// SectorSize is the sector byte size for KindMode and KindCdi tracks.
	SectorSize int
}

// TrackKind discriminates the track type families.
type TrackKind int

const (
	// KindAudio is audio/music, 2352 bytes (588 samples) per sector.
	KindAudio TrackKind = iota

	// KindCdg is karaoke CD+G, 2448 bytes per sector.
	KindCdg

	// KindMode is CD-ROM data:
	//   - (1, 2048): Mode 1 data (cooked)
	//   - (1, 2352): Mode 1 data (raw)
	//   - (2, 2048): XA Mode 2 data (form 1)
	//   - (2, 2324): XA Mode 2 data (form 2)
	//   - (2, 2336): XA Mode 2 data (form mix)
	//   - (2, 2352): XA Mode 2 data (raw)
	KindMode

	// KindCdi is CDI Mode 2 data, 2336 or 2352 bytes per sector.
	KindCdi
)

// Audio and Cdg are the fixed-layout track types.
var (
	Audio = TrackType{Kind: KindAudio}
	Cdg   = TrackType{Kind: KindCdg}
)

// Mode returns the track type for a CD-ROM data keyword.
func Mode(mode, sectorSize int) TrackType {
	return TrackType{Kind: KindMode, Mode: mode, SectorSize: sectorSize}
}

// Cdi returns the track type for a CDI data keyword.
func Cdi(sectorSize int) TrackType {
	return TrackType{Kind: KindCdi, SectorSize: sectorSize}
}

// ParseTrackType matches the fixed track type keywords.
func ParseTrackType(s string) (TrackType, error) {
	switch strings.ToUpper(s) {
	case "AUDIO":
		return Audio, nil
	case "CDG":
		return Cdg, nil
	case "MODE1/2048":
		return Mode(1, 2048), nil
	case "MODE1/2352":
		return Mode(1, 2352), nil
	case "MODE2/2048":
		return Mode(2, 2048), nil
	case "MODE2/2324":
		return Mode(2, 2324), nil
	case "MODE2/2336":
		return Mode(2, 2336), nil
	case "MODE2/2352":
		return Mode(2, 2352), nil
	case "CDI/2336":
		return Cdi(2336), nil
	case "CDI/2352":
		return Cdi(2352), nil
	default:
		return TrackType{}, fmt.Errorf("unknown track type %q", s)
	}
}

func (t TrackType) String() string {
	switch t.Kind {
	case KindAudio:
		return "AUDIO"
	case KindCdg:
		return "CDG"
	case KindMode:
		return fmt.Sprintf("MODE%d/%d", t.Mode, t.SectorSize)
	case KindCdi:
		return fmt.Sprintf("CDI/%d", t.SectorSize)
	default:
		return fmt.Sprintf("TrackType(%d)", int(t.Kind))
	}
}

// TrackFlag is one subcode flag from a FLAGS command.
type TrackFlag int

const (
	// Dcp: digital copy permitted.
	Dcp TrackFlag = iota

	// FourChannel: four channel audio (keyword 4CH).
	FourChannel

	// Pre: pre-emphasis enabled (audio tracks only).
	Pre

	// Scms: serial copy management system.
	Scms
)

// ParseTrackFlag matches the fixed flag keywords.
func ParseTrackFlag(s string) (TrackFlag, error) {
	switch strings.ToUpper(s) {
	case "DCP":
		return Dcp, nil
	case "4CH":
		return FourChannel, nil
	case "PRE":
		return Pre, nil
	case "SCMS":
		return Scms, nil
	default:
		return 0, fmt.Errorf("invalid track flag %q", s)
	}
}

func (f TrackFlag) String() string {
	switch f {
	case Dcp:
		return "DCP"
	case FourChannel:
		return "4CH"
	case Pre:
		return "PRE"
	case Scms:
		return "SCMS"
	default:
		return fmt.Sprintf("TrackFlag(%d)", int(f))
	}
}
