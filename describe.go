package dpx

import (
	"fmt"
	"strconv"
)

var orientations = map[uint32]string{
	0: "Left to Right, Top to Bottom",
	1: "Right to Left, Top to Bottom",
	2: "Left to Right, Bottom to Top",
	3: "Right to Left, Bottom to Top",
	4: "Top to Bottom, Left to Right",
	5: "Top to Bottom, Right to Left",
	6: "Bottom to Top, Left to Right",
	7: "Bottom to Top, Right to Left",
}

var descriptors = map[uint32]string{
	1:   "Red",
	2:   "Green",
	3:   "Blue",
	4:   "Alpha",
	6:   "Luma (Y)",
	7:   "Color Difference",
	8:   "Depth (Z)",
	9:   "Composite Video",
	50:  "RGB",
	51:  "RGBA",
	52:  "ABGR",
	100: "Cb, Y, Cr, Y (4:2:2)",
	102: "Cb, Y, Cr (4:4:4)",
	103: "Cb, Y, Cr, A (4:4:4:4)",
}

var packings = map[uint32]string{
	0: "Packed into 32-bit words",
	1: "Filled to 32-bit words, Padding First",
	2: "Filled to 32-bit words, Padding Last",
}

var encodings = map[uint32]string{
	0: "No encoding",
	1: "Run Length Encoding",
}

var transfers = map[uint32]string{
	1:  "Printing Density",
	2:  "Linear",
	3:  "Logarithmic",
	4:  "Unspecified Video",
	5:  "SMPTE 274M",
	6:  "ITU-R 709-4",
	7:  "ITU-R 601-5 system B or G",
	8:  "ITU-R 601-5 system M",
	9:  "Composite Video (NTSC)",
	10: "Composite Video (PAL)",
	11: "Z (Linear Depth)",
	12: "Z (Homogenous Depth)",
}

var colorimetries = map[uint32]string{
	1:  "Printing Density",
	4:  "Unspecified Video",
	5:  "SMPTE 274M",
	6:  "ITU-R 709-4",
	7:  "ITU-R 601-5 system B or G",
	8:  "ITU-R 601-5 system M",
	9:  "Composite Video (NTSC)",
	10: "Composite Video (PAL)",
}

// Description sections, in display order.
const (
	SectionFile        = "File Information"
	SectionImage       = "Image Information"
	SectionElement     = "Image Element 1"
	SectionImageSource = "Image Source Information"
)

// Entry is one labelled line of a human-readable header description.
type Entry struct {
	Section string
	Label   string
	Value   string
}

// Describe renders the interesting header fields with English names for coded values.
// It is presentation only and plays no part in decoding.
func Describe(m *Metadata) []Entry {
	var out []Entry
	add := func(section, label, value string) {
		out = append(out, Entry{Section: section, Label: label, Value: value})
	}
	u := func(name string) string { return strconv.FormatUint(uint64(m.Uint(name)), 10) }

	endian := "Big Endian"
	if m.Endianness == LittleEndian {
		endian = "Little Endian"
	}
	add(SectionFile, "Endianness", endian)
	add(SectionFile, "Image Offset (Bytes)", u("offset"))
	add(SectionFile, "DPX Version", m.TrimmedText("dpx_version"))
	add(SectionFile, "File Size (Bytes)", u("file_size"))
	ditto := "Same as Previous Frame"
	if m.Uint("ditto") != 0 {
		ditto = "New Frame"
	}
	add(SectionFile, "Ditto Flag", ditto)
	add(SectionFile, "Image Filename", m.TrimmedText("filename"))
	add(SectionFile, "Creation Timestamp", m.TrimmedText("timestamp"))
	add(SectionFile, "Creator", m.TrimmedText("creator"))
	add(SectionFile, "Project Name", m.TrimmedText("project_name"))
	add(SectionFile, "Copyright", m.TrimmedText("copyright"))
	key := "Unencrypted"
	if k := m.Uint("encryption_key"); k != unencrypted {
		key = fmt.Sprintf("%08x", k)
	}
	add(SectionFile, "Encryption Key", key)

	add(SectionImage, "Orientation", lookupName(orientations, m.Orientation()))
	add(SectionImage, "Image Element Count", u("image_element_count"))
	add(SectionImage, "Width", u("width"))
	add(SectionImage, "Height", u("height"))

	sign := "unsigned"
	if m.Uint("data_sign") == 1 {
		sign = "signed"
	}
	add(SectionElement, "Data Sign", sign)
	add(SectionElement, "Descriptor", lookupName(descriptors, m.Descriptor()))
	add(SectionElement, "Transfer", lookupName(transfers, m.Uint("transfer_characteristic")))
	add(SectionElement, "Colorimetry", lookupName(colorimetries, m.Uint("colorimetry")))
	add(SectionElement, "Bit Depth", u("depth"))
	add(SectionElement, "Packing", lookupName(packings, m.Packing()))
	add(SectionElement, "Encoding", lookupName(encodings, m.Encoding()))
	add(SectionElement, "End of Line Padding", u("line_padding"))
	add(SectionElement, "End of Image Padding", u("image_padding"))
	add(SectionElement, "Image Element Description", m.TrimmedText("image_element_description"))

	add(SectionImageSource, "Input Device Name", m.TrimmedText("input_device_name"))
	add(SectionImageSource, "Input Device Serial Number", m.TrimmedText("input_device_sn"))

	return out
}

func lookupName(names map[uint32]string, code uint32) string {
	if s, ok := names[code]; ok {
		return s
	}
	return "unknown"
}
