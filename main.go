// Command cuesheet converts a .cue file into a tracklist that can be
// pasted into the MusicBrainz tracklist importer.
//
// Usage:
//
//	cuesheet [-encoding NAME] [-v] FILE.cue
//
// The fallback charset for non-UTF-8 sheets and the log level can also
// be set through the CUESHEET_ENCODING and CUESHEET_LOG_LEVEL
// environment variables (a .env file is honored).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rabidaudio/cuesheet/tracklist"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cuesheet: %v\n", err)
		os.Exit(1)
	}

	encoding := flag.String("encoding", cfg.Encoding, "fallback charset (IANA name) for non-UTF-8 sheets")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: cuesheet [flags] FILE.cue\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, flag.Arg(0), *encoding); err != nil {
		log.WithError(err).Error("conversion failed")
		os.Exit(1)
	}
}

func run(log *logrus.Logger, path, fallback string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	source, applied, err := decodeText(raw, fallback)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": path, "encoding": applied}).Debug("decoded cue sheet")

	list, err := tracklist.Parse(source)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"title": list.Title, "files": len(list.Files)}).Debug("assembled tracklist")

	return render(os.Stdout, list)
}
