package dpx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTIFFRoundTrip(t *testing.T) {
	_, raw, img := decodeBytes(t, testFile(BigEndian, testHeader(BigEndian, 6, 3), gradientWords(6, 3)))

	var buf bytes.Buffer
	require.NoError(t, EncodeTIFF(&buf, img))

	got, err := DecodeTIFF(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Width, got.Width)
	require.Equal(t, img.Height, got.Height)
	for i := range img.Pix {
		assert.InDelta(t, img.Pix[i], got.Pix[i], 1e-4, "sample %d", i)
	}

	// 16-bit precision survives re-encoding to the original words.
	var sink WriteSeekBuffer
	require.NoError(t, Encode(&sink, raw, got))
	_, _, again := decodeBytes(t, sink.Bytes())
	assert.Equal(t, img.Pix, again.Pix)
}

func TestTIFFInvalid(t *testing.T) {
	assert.Error(t, EncodeTIFF(&bytes.Buffer{}, nil))

	_, err := DecodeTIFF(bytes.NewReader([]byte("SDPX not a tiff")))
	assert.Error(t, err)
}
