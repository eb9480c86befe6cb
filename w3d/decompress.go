package w3d

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorrupt is returned for map data that does not decompress cleanly.
var ErrCorrupt = errors.New("w3d: corrupt data")

const (
	carmackNear = 0xA7
	carmackFar  = 0xA8
)

// DecodeCarmack expands Carmack-compressed bytes. The first word of src is
// the expanded length in bytes. A word whose high byte is 0xA7 copies count
// words from a backwards offset in words, 0xA8 copies from an absolute word
// offset, and a zero count with either marker escapes a literal word.
func DecodeCarmack(src []byte) ([]byte, error) {
	if len(src) < 2 {
		return nil, fmt.Errorf("%w: carmack stream of %d bytes", ErrCorrupt, len(src))
	}
	want := int(binary.LittleEndian.Uint16(src))
	out := make([]byte, 0, want)

	for i := 2; i < len(src); {
		if i+1 >= len(src) {
			return nil, fmt.Errorf("%w: carmack stream ends mid word at %d", ErrCorrupt, i)
		}
		count, marker := int(src[i]), src[i+1]

		switch {
		case (marker == carmackNear || marker == carmackFar) && count == 0:
			if i+2 >= len(src) {
				return nil, fmt.Errorf("%w: carmack escape truncated at %d", ErrCorrupt, i)
			}
			out = append(out, src[i+2], marker)
			i += 3

		case marker == carmackNear:
			if i+2 >= len(src) {
				return nil, fmt.Errorf("%w: near pointer truncated at %d", ErrCorrupt, i)
			}
			start := len(out) - int(src[i+2])*2
			end := start + count*2
			if start < 0 || end > len(out) {
				return nil, fmt.Errorf("%w: near pointer [%d,%d) outside %d decoded bytes", ErrCorrupt, start, end, len(out))
			}
			out = append(out, out[start:end]...)
			i += 3

		case marker == carmackFar:
			if i+3 >= len(src) {
				return nil, fmt.Errorf("%w: far pointer truncated at %d", ErrCorrupt, i)
			}
			start := int(binary.LittleEndian.Uint16(src[i+2:])) * 2
			end := start + count*2
			if end > len(out) {
				return nil, fmt.Errorf("%w: far pointer [%d,%d) outside %d decoded bytes", ErrCorrupt, start, end, len(out))
			}
			out = append(out, out[start:end]...)
			i += 4

		default:
			out = append(out, src[i], marker)
			i += 2
		}

		if len(out) > want {
			return nil, fmt.Errorf("%w: carmack output exceeds %d bytes", ErrCorrupt, want)
		}
	}

	if len(out) != want {
		return nil, fmt.Errorf("%w: carmack expanded to %d bytes, want %d", ErrCorrupt, len(out), want)
	}
	return out, nil
}

// DecodeRLEW expands RLEW-compressed words. The first word is the expanded
// length in bytes; tag introduces a (count, value) run.
func DecodeRLEW(src []byte, tag uint16) ([]uint16, error) {
	if len(src) < 2 || len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: rlew stream of %d bytes", ErrCorrupt, len(src))
	}
	words := make([]uint16, len(src)/2)
	if err := binary.Read(bytes.NewReader(src), binary.LittleEndian, words); err != nil {
		return nil, err
	}

	wantBytes := int(words[0])
	if wantBytes%2 != 0 {
		return nil, fmt.Errorf("%w: rlew length %d is not whole words", ErrCorrupt, wantBytes)
	}
	want := wantBytes / 2
	out := make([]uint16, 0, want)

	for i := 1; i < len(words); {
		if words[i] != tag {
			out = append(out, words[i])
			i++
		} else {
			if i+2 >= len(words) {
				return nil, fmt.Errorf("%w: rlew run truncated at word %d", ErrCorrupt, i)
			}
			count, value := int(words[i+1]), words[i+2]
			if len(out)+count > want {
				return nil, fmt.Errorf("%w: rlew run of %d overflows %d words", ErrCorrupt, count, want)
			}
			for j := 0; j < count; j++ {
				out = append(out, value)
			}
			i += 3
		}
		if len(out) > want {
			return nil, fmt.Errorf("%w: rlew output exceeds %d words", ErrCorrupt, want)
		}
	}

	if len(out) != want {
		return nil, fmt.Errorf("%w: rlew expanded to %d words, want %d", ErrCorrupt, len(out), want)
	}
	return out, nil
}
