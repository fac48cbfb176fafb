package bitbuffer

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitBuffer(t *testing.T) {
	w := CreateWriter()
	assert.Equal(t, uint64(0), w.NumWritten())
	assert.Nil(t, w.Bytes())

	for range 16 {
		require.NoError(t, w.Write(1, 0))
	}
	assert.Equal(t, uint64(16), w.NumWritten())
	assert.True(t, w.IsAligned())

	require.NoError(t, w.WriteBytes([]byte{0x00}))
	assert.Equal(t, uint64(24), w.NumWritten())

	// Align on a boundary does nothing
	require.NoError(t, w.Align())
	assert.Equal(t, uint64(24), w.NumWritten())

	require.NoError(t, w.Write(1, 1))
	assert.Equal(t, uint64(25), w.NumWritten())
	assert.False(t, w.IsAligned())
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x80}, w.Bytes())

	require.NoError(t, w.Align())
	assert.Equal(t, uint64(32), w.NumWritten())
	require.NoError(t, w.Write(4, 0xF))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x80, 0xF0}, w.Bytes())
}

func TestWriteReadBits(t *testing.T) {
	bits := make([]uint8, 64)
	for i := range bits {
		bits[i] = uint8(i + 1)
	}

	test := func(description string, value func(bit uint8) uint64, interleave bool) {
		t.Run(description, func(t *testing.T) {
			w := CreateWriter()
			for _, bit := range bits {
				require.NoError(t, w.Write(bit, value(bit)), "write %d bits", bit)
				if interleave {
					data := fmt.Sprintf("%0*x", (bit+3)/4, value(bit))
					require.NoError(t, w.WriteBytes([]byte(data)))
				}
			}

			r := CreateReader(w.Bytes())
			for _, bit := range bits {
				actual, err := r.Read(bit)
				require.NoError(t, err, "read %d bits", bit)
				assert.Equal(t, value(bit), actual, "read %d bits", bit)
				if interleave {
					expected := fmt.Appendf(nil, "%0*x", (bit+3)/4, value(bit))
					content, err := r.ReadBytes(len(expected))
					require.NoError(t, err)
					assert.Equal(t, expected, content)
				}
			}
			assert.Equal(t, w.NumWritten(), r.NumRead())
			assert.Less(t, r.Remaining(), uint64(8))
		})
	}

	test("values 1 to 64", func(bit uint8) uint64 { return uint64(bit) }, false)
	test("zero values", func(bit uint8) uint64 { return 0 }, false)
	test("max values", func(bit uint8) uint64 { return uint64(1<<bit) - 1 }, false)
	test("values 1 to 64 with hex octets", func(bit uint8) uint64 { return uint64(bit) }, true)
	test("zero values with hex octets", func(bit uint8) uint64 { return 0 }, true)
	test("max values with hex octets", func(bit uint8) uint64 { return uint64(1<<bit) - 1 }, true)
}

func TestWriteMasksHighBits(t *testing.T) {
	w := CreateWriter()
	require.NoError(t, w.Write(3, 0xFF))
	require.NoError(t, w.Write(5, 0))
	assert.Equal(t, []byte{0xE0}, w.Bytes())
}

func TestBitCount(t *testing.T) {
	w := CreateWriter()
	assert.ErrorIs(t, w.Write(0, 1), ErrBitCount)
	assert.ErrorIs(t, w.Write(65, 1), ErrBitCount)

	r := CreateReader([]byte{0xAA})
	value, err := r.Read(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), value)
	_, err = r.Read(65)
	assert.ErrorIs(t, err, ErrBitCount)
}

func TestInsufficientData(t *testing.T) {
	r := CreateReader([]byte{0xA5, 0x0F})
	value, err := r.Read(12)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xA50), value)
	assert.Equal(t, uint64(4), r.Remaining())

	_, err = r.Read(5)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	// A failed read leaves the cursor alone
	assert.Equal(t, uint64(12), r.NumRead())

	_, err = r.ReadBytes(1)
	assert.ErrorIs(t, err, ErrInsufficientData)

	value, err = r.Read(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xF), value)

	_, err = CreateReader(nil).Read(1)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = r.ReadBytes(-1)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestAdvance(t *testing.T) {
	r := CreateReader([]byte{0x80, 0x7F})
	bit, err := r.Read(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bit)

	require.NoError(t, r.Advance())
	assert.Equal(t, uint64(8), r.NumRead())
	// Advance on a boundary does nothing
	require.NoError(t, r.Advance())
	assert.Equal(t, uint64(8), r.NumRead())

	octets, err := r.ReadBytes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7F}, octets)
	assert.Equal(t, uint64(0), r.Remaining())
}

func TestUnalignedBytes(t *testing.T) {
	w := CreateWriter()
	require.NoError(t, w.Write(4, 0xA))
	require.NoError(t, w.WriteBytes([]byte{0x12, 0x34}))
	assert.Equal(t, []byte{0xA1, 0x23, 0x40}, w.Bytes())
	assert.Equal(t, uint64(20), w.NumWritten())

	r := CreateReader(w.Bytes())
	nibble, err := r.Read(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xA), nibble)
	octets, err := r.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34}, octets)
}

func TestGrowKeepsPadding(t *testing.T) {
	InitialBufferSize = 1
	defer func() { InitialBufferSize = 64 }()

	w := CreateWriter()
	for i := range 100 {
		require.NoError(t, w.Write(3, uint64(i)))
	}
	assert.Equal(t, uint64(300), w.NumWritten())
	assert.Equal(t, 38, w.Len())

	r := CreateReader(w.Bytes())
	for i := range 100 {
		value, err := r.Read(3)
		require.NoError(t, err)
		assert.Equal(t, uint64(i&7), value)
	}
}
