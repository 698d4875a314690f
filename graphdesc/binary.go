package graphdesc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/vxgo/codec"
	"github.com/hupe1980/vxgo/kernel"
)

const (
	// MagicNumber identifies graph description files (ASCII: "VXG0").
	MagicNumber = 0x56584730
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	maxCodecNameLen = 255
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrTruncated      = errors.New("truncated graph description")
)

// ChecksumMismatchError is returned when the stored CRC32 does not match
// the payload.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// fileHeader is the fixed-size header at the start of every graph
// description file.
type fileHeader struct {
	Magic        uint32
	Version      uint32
	Compression  Compression
	CodecNameLen uint8
	Reserved     [2]byte
	NodeCount    uint32
	DataCount    uint32
}

// EncodeOptions control how a graph description is written.
type EncodeOptions struct {
	// Compression applied to the record payload. Recorded in the header.
	Compression Compression

	// Codec for the attribute section. Defaults to codec.Default; its name
	// is recorded in the header.
	Codec codec.Codec
}

// Encode writes the graph description to w.
//
// Layout: fixed header, codec name, payload (optionally compressed), then
// a CRC32 (IEEE) of the payload bytes as written. The header is covered by
// its magic/version fields rather than the checksum, so a reader can
// reject foreign files before reading further.
func Encode(w io.Writer, g *Graph, optFns ...func(*EncodeOptions)) error {
	opts := EncodeOptions{
		Compression: CompressionNone,
		Codec:       codec.Default,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	name := opts.Codec.Name()
	if len(name) > maxCodecNameLen {
		return fmt.Errorf("codec name too long: %q", name)
	}

	payload, err := encodePayload(g, opts.Codec)
	if err != nil {
		return err
	}
	payload, err = compress(opts.Compression, payload)
	if err != nil {
		return err
	}

	header := fileHeader{
		Magic:        MagicNumber,
		Version:      Version,
		Compression:  opts.Compression,
		CodecNameLen: uint8(len(name)),
		NodeCount:    uint32(len(g.Nodes)),
		DataCount:    uint32(len(g.Data)),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, crc32.ChecksumIEEE(payload))
}

// Decode reads a graph description from r, verifying magic, version,
// checksum and codec before reconstructing the graph.
func Decode(r io.Reader) (*Graph, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	nameBuf := make([]byte, header.CodecNameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, string(nameBuf))
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(rest) < 4 {
		return nil, ErrTruncated
	}
	payload, sumBytes := rest[:len(rest)-4], rest[len(rest)-4:]

	expected := binary.LittleEndian.Uint32(sumBytes)
	if actual := crc32.ChecksumIEEE(payload); actual != expected {
		return nil, &ChecksumMismatchError{Expected: expected, Actual: actual}
	}

	payload, err = decompress(header.Compression, payload)
	if err != nil {
		return nil, err
	}

	return decodePayload(payload, header, c)
}

// encodePayload writes the fixed-width data and node records followed by
// the codec-encoded attribute section.
func encodePayload(g *Graph, c codec.Codec) ([]byte, error) {
	var buf bytes.Buffer

	for _, d := range g.Data {
		if err := binary.Write(&buf, binary.LittleEndian, d.ID); err != nil {
			return nil, err
		}
		virtual := uint8(0)
		if d.Virtual {
			virtual = 1
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint8(d.Kind)); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, virtual); err != nil {
			return nil, err
		}
	}

	for _, n := range g.Nodes {
		if err := binary.Write(&buf, binary.LittleEndian, n.ID); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint32(n.Kernel)); err != nil {
			return nil, err
		}
		if len(n.Refs) > 0xFFFF {
			return nil, fmt.Errorf("node %d: too many port bindings", n.ID)
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint16(len(n.Refs))); err != nil {
			return nil, err
		}
		for _, ref := range n.Refs {
			if ref.Param < 0 || ref.Param > 0xFFFF {
				return nil, fmt.Errorf("node %d: parameter index %d out of range", n.ID, ref.Param)
			}
			if err := binary.Write(&buf, binary.LittleEndian, uint16(ref.Param)); err != nil {
				return nil, err
			}
			if err := binary.Write(&buf, binary.LittleEndian, ref.Data); err != nil {
				return nil, err
			}
		}
	}

	attrs, err := c.Marshal(g.Attrs)
	if err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(attrs))); err != nil {
		return nil, err
	}
	buf.Write(attrs)

	return buf.Bytes(), nil
}

func decodePayload(payload []byte, header fileHeader, c codec.Codec) (*Graph, error) {
	buf := bytes.NewReader(payload)
	g := &Graph{}

	for i := uint32(0); i < header.DataCount; i++ {
		var (
			id            uint32
			kind, virtual uint8
		)
		if err := binary.Read(buf, binary.LittleEndian, &id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if err := binary.Read(buf, binary.LittleEndian, &kind); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if err := binary.Read(buf, binary.LittleEndian, &virtual); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		g.Data = append(g.Data, DataObject{
			ID:      id,
			Kind:    kernel.ParamType(kind),
			Virtual: virtual != 0,
		})
	}

	for i := uint32(0); i < header.NodeCount; i++ {
		var (
			id, kid  uint32
			refCount uint16
		)
		if err := binary.Read(buf, binary.LittleEndian, &id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if err := binary.Read(buf, binary.LittleEndian, &kid); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if err := binary.Read(buf, binary.LittleEndian, &refCount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}

		n := Node{ID: id, Kernel: kernel.ID(kid)}
		for j := uint16(0); j < refCount; j++ {
			var (
				param uint16
				data  uint32
			)
			if err := binary.Read(buf, binary.LittleEndian, &param); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
			}
			if err := binary.Read(buf, binary.LittleEndian, &data); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
			}
			n.Refs = append(n.Refs, PortRef{Param: int(param), Data: data})
		}
		g.Nodes = append(g.Nodes, n)
	}

	var attrsLen uint32
	if err := binary.Read(buf, binary.LittleEndian, &attrsLen); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	if attrsLen > 0 {
		// The declared length is untrusted; bound it by what is actually
		// left so a corrupt header cannot force a huge allocation.
		if int64(attrsLen) > int64(buf.Len()) {
			return nil, fmt.Errorf("%w: attrs length %d exceeds remaining %d", ErrTruncated, attrsLen, buf.Len())
		}
		attrs := make([]byte, attrsLen)
		if _, err := io.ReadFull(buf, attrs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if err := c.Unmarshal(attrs, &g.Attrs); err != nil {
			return nil, err
		}
	}

	return g, nil
}
