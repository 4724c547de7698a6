package dpx

import (
	"math"
	"runtime"
)

// testHeader builds a supported-profile header of headerSize bytes with recognizable
// contents in the text, float and reserved fields.
func testHeader(e Endianness, w, h uint32) []byte {
	hdr := make([]byte, headerSize)
	order := e.ByteOrder()
	if e == BigEndian {
		copy(hdr, magicBig)
	} else {
		copy(hdr, magicLittle)
	}
	order.PutUint32(hdr[4:], headerSize)
	copy(hdr[8:], "V2.0")
	order.PutUint32(hdr[16:], headerSize+w*h*wordSize)
	order.PutUint32(hdr[20:], 1)
	order.PutUint32(hdr[24:], 1664)
	order.PutUint32(hdr[28:], 384)
	copy(hdr[36:], "frame.0001.dpx")
	copy(hdr[136:], "2017:09:04:12:00:00")
	copy(hdr[160:], "dpx test")
	order.PutUint32(hdr[660:], unencrypted)
	for i := 664; i < 768; i++ {
		hdr[i] = byte(i)
	}

	order.PutUint16(hdr[770:], 1)
	order.PutUint32(hdr[772:], w)
	order.PutUint32(hdr[776:], h)
	order.PutUint32(hdr[792:], 1023)
	order.PutUint32(hdr[796:], math.Float32bits(2.047))
	hdr[800] = ProfileDescriptor
	hdr[801] = 2
	hdr[802] = 4
	hdr[803] = ProfileDepth
	order.PutUint16(hdr[804:], ProfilePacking)
	order.PutUint16(hdr[806:], ProfileEncoding)
	copy(hdr[820:], "RGB 10-bit")
	for i := 852; i < 1408; i++ {
		hdr[i] = byte(i * 7)
	}

	order.PutUint32(hdr[1416:], math.Float32bits(959.5))
	copy(hdr[1556:], "scanner")
	for i := 1636; i < 1920; i++ {
		hdr[i] = byte(i * 3)
	}

	order.PutUint32(hdr[1920:], 0x01020304)
	order.PutUint32(hdr[1940:], math.Float32bits(24))
	order.PutUint32(hdr[1948:], 0xFFFFFFFF)
	for i := 1972; i < headerSize; i++ {
		hdr[i] = byte(i * 5)
	}
	return hdr
}

// testFile appends words to hdr using the header byte order.
func testFile(e Endianness, hdr []byte, words []uint32) []byte {
	out := append([]byte(nil), hdr...)
	buf := make([]byte, wordSize)
	for _, w := range words {
		e.ByteOrder().PutUint32(buf, w)
		out = append(out, buf...)
	}
	return out
}

func packTest(r, g, b uint32) uint32 {
	return r<<shiftRed | g<<shiftGreen | b<<shiftBlue
}

// gradientWords returns w*h words with distinct channel values.
func gradientWords(w, h int) []uint32 {
	words := make([]uint32, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := uint32(y*w + x)
			words = append(words, packTest((i*37)%1024, (i*101+5)%1024, 1023-(i*13)%1024))
		}
	}
	return words
}

// allocBytes returns the bytes allocated on the heap while fn runs.
func allocBytes(fn func()) uint64 {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}
