package mix

import (
	"cmp"
	"fmt"
	"slices"
)

type Entry struct {
	Id uint32

	// The file name used for hashing and for reading the entry's data.
	// It is not stored in the archive.
	Name string
	Size uint32

	// Offset within the data segment, assigned when the archive is written.
	Offset uint32
}

func NewEntry(name string, size uint32) *Entry {
	return &Entry{
		Id:   Id(name),
		Name: name,
		Size: size,
	}
}

func (entry *Entry) String() string {
	return fmt.Sprintf("%08X: %s : %08X", entry.Id, entry.Name, entry.Size)
}

// Orders entries by their id reinterpreted as a signed 32-bit integer.
// The engine binary searches the table in this order, so ids with the high
// bit set come before all others.
func Compare(a, b *Entry) int {
	return cmp.Compare(int32(a.Id), int32(b.Id))
}

// Sorts entries in table order. Entries with equal ids keep their relative order.
func Sort(entries []*Entry) {
	slices.SortStableFunc(entries, Compare)
}
