package mix

import (
	"math/bits"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Returns the 32-bit lookup id of the file name.
//
// The name is upper-cased and encoded as single byte code points before
// being folded, so ids are case-insensitive and only the first
// MaxNameLength characters are significant. Ids are not unique.
func Id(name string) uint32 {
	upper := strings.ToUpper(name)

	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

	data, err := encoder.Bytes([]byte(upper))
	if err != nil {
		// Only reachable for invalid utf-8, which is folded as is.
		data = []byte(upper)
	}

	return Fold(data)
}

// Folds the first MaxNameLength bytes of an upper-cased name into an id.
//
// Every group of 4 bytes is read least significant byte first. Missing
// bytes in the last group are zero.
func Fold(upper []byte) uint32 {
	n := min(len(upper), MaxNameLength)

	id := uint32(0)
	for i := 0; i < n; {
		group := uint32(0)
		for j := 0; j < 4; j++ {
			group >>= 8
			if i < n {
				group |= uint32(upper[i]) << 24
				i++
			}
		}

		id = bits.RotateLeft32(id, 1) + group
	}

	return id
}
