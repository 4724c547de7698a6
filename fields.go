package dpx

// Field describes one header field: its name, byte position and decoding.
type Field struct {
	Name   string
	Offset uint32
	Length uint32
	Kind   FieldKind
}

// fieldTable is the DPX v1/v2 header layout. Only the first image element is described.
var fieldTable = [...]Field{
	// Generic file information.
	{"magic", 0, 4, KindMagic},
	{"offset", 4, 4, KindUint32},
	{"dpx_version", 8, 8, KindText},
	{"file_size", 16, 4, KindUint32},
	{"ditto", 20, 4, KindUint32},
	{"generic_size", 24, 4, KindUint32},
	{"industry_size", 28, 4, KindUint32},
	{"user_size", 32, 4, KindUint32},
	{"filename", 36, 100, KindText},
	{"timestamp", 136, 24, KindText},
	{"creator", 160, 100, KindText},
	{"project_name", 260, 200, KindText},
	{"copyright", 460, 200, KindText},
	{"encryption_key", 660, 4, KindUint32},
	{"generic_reserved", 664, 104, KindRawBytes},

	// Image information.
	{"orientation", 768, 2, KindUint16},
	{"image_element_count", 770, 2, KindUint16},
	{"width", 772, 4, KindUint32},
	{"height", 776, 4, KindUint32},

	// Image element 1.
	{"data_sign", 780, 4, KindUint32},
	{"low_data", 784, 4, KindUint32},
	{"low_quantity", 788, 4, KindFloat32},
	{"high_data", 792, 4, KindUint32},
	{"high_quantity", 796, 4, KindFloat32},
	{"descriptor", 800, 1, KindUint8},
	{"transfer_characteristic", 801, 1, KindUint8},
	{"colorimetry", 802, 1, KindUint8},
	{"depth", 803, 1, KindUint8},
	{"packing", 804, 2, KindUint16},
	{"encoding", 806, 2, KindUint16},
	{"line_padding", 812, 4, KindUint32},
	{"image_padding", 816, 4, KindUint32},
	{"image_element_description", 820, 32, KindText},
	{"image_reserved", 852, 556, KindRawBytes},

	// Image source information.
	{"x_offset", 1408, 4, KindUint32},
	{"y_offset", 1412, 4, KindUint32},
	{"x_center", 1416, 4, KindFloat32},
	{"y_center", 1420, 4, KindFloat32},
	{"x_originalsize", 1424, 4, KindUint32},
	{"y_originalsize", 1428, 4, KindUint32},
	{"source_filename", 1432, 100, KindText},
	{"source_timestamp", 1532, 24, KindText},
	{"input_device_name", 1556, 32, KindText},
	{"input_device_sn", 1588, 32, KindText},
	{"border_xl", 1620, 2, KindUint16},
	{"border_xr", 1622, 2, KindUint16},
	{"border_yt", 1624, 2, KindUint16},
	{"border_yb", 1626, 2, KindUint16},
	{"aspect_h", 1628, 4, KindUint32},
	{"aspect_v", 1632, 4, KindUint32},
	{"orientation_reserved", 1636, 28, KindRawBytes},

	// Film industry information.
	{"film_industry_header", 1664, 256, KindRawBytes},

	// Television industry information.
	{"timecode", 1920, 4, KindUint32},
	{"user_bits", 1924, 4, KindUint32},
	{"interlace", 1928, 1, KindUint8},
	{"field_number", 1929, 1, KindUint8},
	{"video_signal", 1930, 1, KindUint8},
	{"tv_padding", 1931, 1, KindUint8},
	{"h_sample_rate", 1932, 4, KindFloat32},
	{"v_sample_rate", 1936, 4, KindFloat32},
	{"frame_rate", 1940, 4, KindFloat32},
	{"time_offset", 1944, 4, KindFloat32},
	{"gamma", 1948, 4, KindFloat32},
	{"black_level", 1952, 4, KindFloat32},
	{"black_gain", 1956, 4, KindFloat32},
	{"break_point", 1960, 4, KindFloat32},
	{"white_level", 1964, 4, KindFloat32},
	{"integration_times", 1968, 4, KindFloat32},
	{"tv_reserved", 1972, 76, KindRawBytes},
}

func init() {
	seen := make(map[string]struct{}, len(fieldTable))
	for _, f := range fieldTable {
		if _, ok := seen[f.Name]; ok {
			panic("dpx: duplicate header field " + f.Name)
		}
		seen[f.Name] = struct{}{}
	}
}

// Fields returns a copy of the header field table in file order.
func Fields() []Field {
	return append([]Field(nil), fieldTable[:]...)
}
