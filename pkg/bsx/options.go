package bsx

import (
	"github.com/go-kit/log"

	"github.com/joshuapare/bsxkit/script/textfile"
)

// Options controls export and import behavior. A nil *Options uses the
// defaults.
type Options struct {
	// Logger receives progress at debug level and scan warnings at warn
	// level. Nil discards everything.
	Logger log.Logger

	// LineEnding terminates exported lines. Default: LF.
	LineEnding textfile.LineEnding

	// NoClobber refuses to replace an existing output file.
	NoClobber bool
}

func (o *Options) logger() log.Logger {
	if o == nil || o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

func (o *Options) lineEnding() textfile.LineEnding {
	if o == nil {
		return textfile.LF
	}
	return o.LineEnding
}

func (o *Options) noClobber() bool {
	return o != nil && o.NoClobber
}
