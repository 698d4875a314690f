package graphdesc

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vxgo/registry"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, comp := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(comp.String(), func(t *testing.T) {
			g := edgePipeline()

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, g, func(o *EncodeOptions) {
				o.Compression = comp
			}))

			decoded, err := Decode(&buf)
			require.NoError(t, err)

			assert.Equal(t, g.Nodes, decoded.Nodes)
			assert.Equal(t, g.Data, decoded.Data)
			assert.Equal(t, "edge-pipeline", decoded.Attrs["name"])

			// A decoded description is still a valid one.
			require.NoError(t, decoded.Validate(registry.New()))
		})
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, edgePipeline()))

	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[0:4], 0xDEADBEEF)

	_, err := Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, edgePipeline()))

	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[4:8], 0x00990000)

	_, err := Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestDecodeDetectsCorruption(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, edgePipeline()))

	raw := buf.Bytes()
	// Flip a bit in the payload, past the header and codec name.
	raw[len(raw)-8] ^= 0x01

	_, err := Decode(bytes.NewReader(raw))
	var mismatch *ChecksumMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestDecodeRejectsTruncation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, edgePipeline()))

	raw := buf.Bytes()
	_, err := Decode(bytes.NewReader(raw[:12]))
	assert.Error(t, err)
}

func TestDecodeRejectsOversizedAttrsLength(t *testing.T) {
	g := edgePipeline()
	g.Attrs = nil // attrs section encodes as the 4 bytes "null"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g))

	raw := buf.Bytes()

	// The attrs length field sits before the 4 attrs bytes and the CRC
	// trailer. Claim far more attrs bytes than the file holds, then fix
	// up the checksum so decoding gets past it.
	binary.LittleEndian.PutUint32(raw[len(raw)-12:], 0xFFFFFFF0)
	payload := raw[24 : len(raw)-4] // 20-byte header + "json"
	binary.LittleEndian.PutUint32(raw[len(raw)-4:], crc32.ChecksumIEEE(payload))

	_, err := Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestEncodeEmptyAttrs(t *testing.T) {
	g := edgePipeline()
	g.Attrs = nil

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, decoded.Attrs)
}

func TestCompressionNames(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "unknown", Compression(9).String())
}

func TestUnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, edgePipeline(), func(o *EncodeOptions) {
		o.Compression = Compression(42)
	})
	var unknown *ErrUnknownCompression
	assert.ErrorAs(t, err, &unknown)
}
