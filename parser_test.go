package s1ap_go

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dump = `# S1SetupResponse
20110025000003003d400a03807372736d6d6530310069000b000000f11000000100001a00574001ff

00:0d:40:01:00
  2009 0022 0000
`

func TestParseReader(t *testing.T) {
	pdus, err := ParseReader(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, pdus, 3)
	assert.Len(t, pdus[0], 41)
	assert.Equal(t, []byte{0x00, 0x0d, 0x40, 0x01, 0x00}, pdus[1])
	assert.Equal(t, []byte{0x20, 0x09, 0x00, 0x22, 0x00, 0x00}, pdus[2])
}

func TestParseReaderInvalid(t *testing.T) {
	_, err := ParseReader(strings.NewReader("00\n0g\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdus.txt")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o600))
	pdus, err := Parse(path)
	require.NoError(t, err)
	assert.Len(t, pdus, 3)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
