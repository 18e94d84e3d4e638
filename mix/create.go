package mix

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/snksoft/crc"
)

var (
	Crc = crc.NewTable(crc.CRC32)
)

// Describes an archive after it has been written.
type Summary struct {
	NumFiles int16
	DataSize uint32

	// Total byte length of the archive.
	Size int64

	// CRC-32 of the archive's bytes.
	Crc uint32
}

// Writes the archive to a new file at path.
//
// If the file cannot be created, a *DestinationError is returned and
// nothing is written. The file is flushed and closed on every return. When
// an error is returned after the file was created, the file is left on disk
// and is not a valid archive. Callers should remove it.
func Create(path string, archive *Archive) (summary Summary, err error) {
	file, err := os.Create(path)
	if err != nil {
		return Summary{}, &DestinationError{err, path}
	}
	defer func() {
		if e := file.Close(); err == nil && e != nil {
			err = fmt.Errorf("mix: create: %w", e)
		}
	}()

	buf := bufio.NewWriter(file)
	defer func() {
		if e := buf.Flush(); err == nil && e != nil {
			err = fmt.Errorf("mix: create: %w", e)
		}
	}()

	hash := crc.NewHashWithTable(Crc)

	n, err := archive.WriteTo(io.MultiWriter(buf, hash))
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		NumFiles: int16(archive.NumFiles()),
		DataSize: uint32(archive.DataSize()),
		Size:     n,
		Crc:      hash.CRC32(),
	}, nil
}
