package mix

import (
	"encoding/binary"
	"io/fs"
	"os"
)

const (
	// Size of the NumFiles and DataSegmentSize fields.
	HeaderSize = 6

	// Size of a single Id, Offset, Length descriptor.
	EntrySize = 12

	// Only this many characters of a name contribute to its id.
	MaxNameLength = 12
)

var (
	order = binary.LittleEndian
)

// Returns the byte length of the header and entry table for n entries.
// Offsets in the table are relative to this position.
func TableSize(n int) int64 {
	return HeaderSize + EntrySize*int64(n)
}

// Anything that can print trace output. *log.Logger satisfies Logger.
type Logger interface {
	Printf(format string, v ...any)
}

func tracef(logger Logger, format string, v ...any) {
	if logger != nil {
		logger.Printf(format, v...)
	}
}

// Sources default to the current working directory.
func sourceOrWorkingDir(source fs.FS) fs.FS {
	if source == nil {
		return os.DirFS(".")
	}
	return source
}
