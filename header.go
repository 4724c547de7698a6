package dpx

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Parse reads the DPX header from r. It returns the decoded fields together with the raw
// header bytes [0, payload offset), which Encode replays when writing a new payload.
// A file whose image element is outside the supported profile still parses; use CheckProfile.
func Parse(r io.ReadSeeker) (*Metadata, *RawHeader, error) {
	magic, err := readAt(r, 0, magicSize)
	if err != nil {
		return nil, nil, fmt.Errorf("read magic: %w", err)
	}

	meta := &Metadata{values: make(map[string]Value, len(fieldTable))}
	switch string(magic) {
	case magicBig:
		meta.Endianness = BigEndian
	case magicLittle:
		meta.Endianness = LittleEndian
	default:
		return nil, nil, ErrBadMagic
	}
	order := meta.Endianness.ByteOrder()

	for _, f := range fieldTable {
		b, err := readAt(r, int64(f.Offset), int64(f.Length))
		if err != nil {
			return nil, nil, fmt.Errorf("read field %q: %w", f.Name, err)
		}
		v := Value{Kind: f.Kind}
		switch f.Kind {
		case KindMagic, KindText:
			v.Text = string(b)
		case KindUint8:
			v.Uint = uint32(b[0])
		case KindUint16:
			v.Uint = uint32(order.Uint16(b))
		case KindUint32:
			v.Uint = order.Uint32(b)
		case KindFloat32:
			v.Float = math.Float32frombits(order.Uint32(b))
		case KindRawBytes:
			v.Raw = b
		}
		meta.values[f.Name] = v
	}

	meta.PayloadOffset = meta.Uint("offset")
	if meta.PayloadOffset < magicSize {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadOffset, meta.PayloadOffset)
	}

	data, err := readAt(r, 0, int64(meta.PayloadOffset))
	if err != nil {
		return nil, nil, fmt.Errorf("read raw header: %w", err)
	}

	raw := &RawHeader{
		Endianness:    meta.Endianness,
		PayloadOffset: meta.PayloadOffset,
		Width:         meta.Width(),
		Height:        meta.Height(),
		data:          data,
	}
	return meta, raw, nil
}

// readAt reads n bytes at offset. The source length is checked before the buffer is
// allocated, so header values cannot request more memory than the source holds.
func readAt(r io.ReadSeeker, offset, n int64) ([]byte, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if offset < 0 || n < 0 || offset > end || n > end-offset {
		return nil, io.ErrUnexpectedEOF
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
