package mix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
)

// An Archive is an ordered set of entries whose data is read from Source
// when the archive is written.
type Archive struct {
	Entries []*Entry
	Source  fs.FS
	Trace   Logger
}

// Creates an *Archive with entries sorted in table order. A nil source is
// the current working directory.
func New(source fs.FS, entries []*Entry) *Archive {
	Sort(entries)

	return &Archive{
		Entries: entries,
		Source:  source,
	}
}

func (archive *Archive) NumFiles() int {
	return len(archive.Entries)
}

// Returns the sum of all entry sizes.
func (archive *Archive) DataSize() uint64 {
	total := uint64(0)
	for _, entry := range archive.Entries {
		total += uint64(entry.Size)
	}
	return total
}

// Checks that the archive fits in the header fields.
func (archive *Archive) Validate() error {
	if n := archive.NumFiles(); n > math.MaxInt16 {
		return &LimitError{"number of files", uint64(n), math.MaxInt16}
	}

	if size := archive.DataSize(); size > math.MaxUint32 {
		return &LimitError{"data segment size", size, math.MaxUint32}
	}

	return nil
}

// Assigns each entry's data segment offset in table order.
func (archive *Archive) updateOffsets() {
	offset := uint32(0)
	for _, entry := range archive.Entries {
		entry.Offset = offset
		offset += entry.Size
	}
}

func (archive *Archive) writeHeader(w io.Writer) error {
	return errors.Join(
		binary.Write(w, order, int16(archive.NumFiles())),
		binary.Write(w, order, uint32(archive.DataSize())),
	)
}

func (archive *Archive) writeTable(w io.Writer) error {
	for _, entry := range archive.Entries {
		tracef(archive.Trace, "%v", entry)

		if err := errors.Join(
			binary.Write(w, order, entry.Id),
			binary.Write(w, order, entry.Offset),
			binary.Write(w, order, entry.Size),
		); err != nil {
			return fmt.Errorf("table: %s: %w", entry.Name, err)
		}
	}
	return nil
}

// Remembers the last error returned by the source so that it can be told
// apart from errors returned by the destination.
type sourceReader struct {
	io.Reader
	err error
}

func (r *sourceReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if err != nil && err != io.EOF {
		r.err = err
	}
	return n, err
}

// Copies exactly entry.Size bytes of the entry's source into w. A source
// that shrank or grew since it was collected is a *SourceError.
func (archive *Archive) writeData(w io.Writer, entry *Entry) (int64, error) {
	file, err := sourceOrWorkingDir(archive.Source).Open(entry.Name)
	if err != nil {
		return 0, &SourceError{err, entry.Name}
	}
	defer file.Close()

	src := &sourceReader{Reader: file}

	n, err := io.CopyN(w, src, int64(entry.Size))
	if src.err != nil {
		return n, &SourceError{src.err, entry.Name}
	}

	if err == io.EOF {
		return n, &SourceError{fmt.Errorf("expected %d bytes but read %d: %w", entry.Size, n, io.ErrUnexpectedEOF), entry.Name}
	}

	if err != nil {
		return n, fmt.Errorf("data: %s: %w", entry.Name, err)
	}

	extra := [1]byte{}
	if _, err := io.ReadFull(src, extra[:]); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("size changed after collection: expected %d bytes", entry.Size)
		}
		return n, &SourceError{err, entry.Name}
	}

	return n, nil
}

// Writes the header, the entry table, and the data segment to w.
//
// Nothing is written if the archive exceeds the format's limits. If a
// source cannot be read, writing stops and the *SourceError is returned.
// Whatever was already written to w is not a valid archive.
func (archive *Archive) WriteTo(w io.Writer) (n int64, err error) {
	if err := archive.Validate(); err != nil {
		return 0, err
	}

	archive.updateOffsets()

	if err := archive.writeHeader(w); err != nil {
		return 0, fmt.Errorf("mix: write to: header: %w", err)
	}
	n += HeaderSize

	if err := archive.writeTable(w); err != nil {
		return n, fmt.Errorf("mix: write to: %w", err)
	}
	n += EntrySize * int64(archive.NumFiles())

	for _, entry := range archive.Entries {
		written, err := archive.writeData(w, entry)
		n += written

		if err != nil {
			return n, fmt.Errorf("mix: write to: %w", err)
		}
	}

	return n, nil
}
