package dpx

import "math"

const metadataBundleFormat = "dpx-meta-1"

// MetadataBundle is a JSON-friendly snapshot of a parsed header.
// Raw fields are base64-encoded in JSON.
type MetadataBundle struct {
	Format        string                  `json:"format"`
	Endianness    string                  `json:"endianness"`
	PayloadOffset uint32                  `json:"payload_offset"`
	Supported     bool                    `json:"supported"`
	Fields        map[string]BundledValue `json:"fields"`
}

// BundledValue is one header field of a MetadataBundle.
type BundledValue struct {
	Kind  string   `json:"kind"`
	Uint  *uint32  `json:"uint,omitempty"`
	Float *float32 `json:"float,omitempty"`
	Text  *string  `json:"text,omitempty"`
	Raw   []byte   `json:"raw,omitempty"`

	// Undefined is set for float fields holding NaN or infinity, which JSON cannot carry.
	Undefined bool `json:"undefined,omitempty"`
}

// NewMetadataBundle builds a metadata bundle from a parsed header.
func NewMetadataBundle(m *Metadata) *MetadataBundle {
	b := &MetadataBundle{
		Format:        metadataBundleFormat,
		Endianness:    m.Endianness.String(),
		PayloadOffset: m.PayloadOffset,
		Supported:     CheckProfile(m) == nil,
		Fields:        make(map[string]BundledValue, len(fieldTable)),
	}
	for _, f := range fieldTable {
		v, ok := m.Lookup(f.Name)
		if !ok {
			continue
		}
		bv := BundledValue{Kind: f.Kind.String()}
		switch f.Kind {
		case KindMagic, KindText:
			s := m.TrimmedText(f.Name)
			bv.Text = &s
		case KindUint8, KindUint16, KindUint32:
			bv.Uint = &v.Uint
		case KindFloat32:
			if fv := float64(v.Float); math.IsNaN(fv) || math.IsInf(fv, 0) {
				bv.Undefined = true
			} else {
				bv.Float = &v.Float
			}
		case KindRawBytes:
			bv.Raw = v.Raw
		}
		b.Fields[f.Name] = bv
	}
	return b
}
