package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/dpx"
)

func writeDPX(t *testing.T, dir, name string, w, h uint32) string {
	t.Helper()

	file := make([]byte, 2048+int(w*h)*4)
	copy(file, "XPDS")
	binary.LittleEndian.PutUint32(file[4:], 2048)
	binary.LittleEndian.PutUint32(file[772:], w)
	binary.LittleEndian.PutUint32(file[776:], h)
	file[800] = dpx.ProfileDescriptor
	file[803] = dpx.ProfileDepth
	binary.LittleEndian.PutUint16(file[804:], dpx.ProfilePacking)
	for i := 0; i < int(w*h); i++ {
		binary.LittleEndian.PutUint32(file[2048+i*4:], uint32(i%1024)<<22|0x3FF<<12)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, file, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	path := writeDPX(t, t.TempDir(), "a.dpx", 4, 2)

	out, err := run(t, "info", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Little Endian")
	assert.Contains(t, out, "RGB")

	out, err = run(t, "info", "--in", path, "--fields")
	require.NoError(t, err)
	assert.Contains(t, out, "film_industry_header")

	out, err = run(t, "info", "--in", path, "--json")
	require.NoError(t, err)
	var bundle dpx.MetadataBundle
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	assert.True(t, bundle.Supported)
	assert.Equal(t, "le", bundle.Endianness)

	_, err = run(t, "info")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	path := writeDPX(t, dir, "a.dpx", 1, 1)

	out, err := run(t, "detect", "--in", path)
	require.NoError(t, err)
	assert.Equal(t, "dpx\n", out)

	other := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0o600))
	out, err = run(t, "detect", "--in", other)
	require.NoError(t, err)
	assert.Equal(t, "not dpx\n", out)
}

func TestDerez(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	in := writeDPX(t, inDir, "a.dpx", 8, 4)
	writeDPX(t, inDir, "b.dpx", 8, 4)

	_, err := run(t, "derez", "--in", in, "--out", filepath.Join(outDir, "single.dpx"), "--width", "4", "--height", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "single.dpx"))

	_, err = run(t, "derez", "--in", inDir, "--out", outDir, "--width", "4", "--height", "2", "--interp", "nearest", "--workers", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "a.dpx"))
	assert.FileExists(t, filepath.Join(outDir, "b.dpx"))

	_, err = run(t, "derez", "--in", in, "--out", outDir, "--interp", "sinc")
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	in := writeDPX(t, dir, "a.dpx", 4, 2)
	tiffPath := filepath.Join(dir, "a.tiff")
	out := filepath.Join(dir, "b.dpx")

	_, err := run(t, "export", "--in", in, "--out", tiffPath)
	require.NoError(t, err)

	_, err = run(t, "import", "--template", in, "--tiff", tiffPath, "--out", out)
	require.NoError(t, err)

	want, err := os.ReadFile(in)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	small := writeDPX(t, dir, "small.dpx", 2, 2)
	_, err = run(t, "import", "--template", small, "--tiff", tiffPath, "--out", filepath.Join(dir, "c.dpx"))
	assert.ErrorIs(t, err, dpx.ErrShape)
}
