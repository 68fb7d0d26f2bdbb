// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes data into a temp dir owned by the test and returns the
// full path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// FrameCompressed wraps XML bytes in the mmpz framing: a 4-byte big-endian
// uncompressed size followed by a zlib stream.
func FrameCompressed(t *testing.T, xmlData []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(len(xmlData)))
	buf.Write(size)
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(xmlData)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
