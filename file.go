package dpx

import (
	"os"
	"path/filepath"
)

// ReadFile parses and decodes the DPX file at path.
// When the profile is unsupported, the metadata and raw header are still returned with the error.
func ReadFile(path string) (*Metadata, *RawHeader, *Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	meta, raw, err := Parse(f)
	if err != nil {
		return nil, nil, nil, err
	}
	img, err := Decode(f, meta)
	if err != nil {
		return meta, raw, nil, err
	}
	return meta, raw, img, nil
}

// WriteFile encodes img with raw into a new file at path.
func WriteFile(path string, raw *RawHeader, img *Image) error {
	if err := checkShape(raw, img); err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := Encode(f, raw, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
