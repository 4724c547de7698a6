package dpx

import (
	"bufio"
	"errors"
	"io"
)

// IsDPX performs a streaming check of the file magic without seeking.
// A source shorter than the magic is reported as not DPX.
func IsDPX(r io.Reader) (bool, error) {
	br := bufio.NewReaderSize(r, 16)
	magic, err := br.Peek(magicSize)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch string(magic) {
	case magicBig, magicLittle:
		return true, nil
	default:
		return false, nil
	}
}
