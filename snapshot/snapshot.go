package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/varbvs/varbvs"
)

// Version is the format version written by Encode.
const Version = 1

// maxElements caps 2p+n on Decode. Payload vectors are read in chunkBytes
// pieces, so allocation tracks the bytes present, not the header's claim.
const maxElements = 1 << 31

// chunkBytes is the read granularity of Decode.
const chunkBytes = 64 << 10

var magic = [4]byte{'V', 'B', 'V', 'S'}

const headerSize = len(magic) + 1

// Encode writes s to w as a snapshot stream.
//
// Errors: ErrNilState, ErrInconsistentState, or the first write error of w.
func Encode(w io.Writer, s *varbvs.State, opts ...Option) error {
	if s == nil {
		return ErrNilState
	}
	if len(s.Mu) != len(s.Alpha) {
		return fmt.Errorf("%w: len(Mu)=%d, len(Alpha)=%d", ErrInconsistentState, len(s.Mu), len(s.Alpha))
	}
	o := gatherOptions(opts...)

	var hdr [headerSize]byte
	copy(hdr[:], magic[:])
	hdr[len(magic)] = Version
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(o.level))
	if err != nil {
		return fmt.Errorf("snapshot: create encoder: %w", err)
	}
	if err = writeBody(enc, s); err != nil {
		_ = enc.Close()
		return fmt.Errorf("snapshot: write body: %w", err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("snapshot: flush: %w", err)
	}

	return nil
}

func writeBody(w io.Writer, s *varbvs.State) error {
	dims := [2]uint64{uint64(len(s.Xr)), uint64(len(s.Alpha))}
	for _, v := range []any{dims, s.Alpha, s.Mu, s.Xr} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads one snapshot from r.
//
// Errors: ErrBadMagic, ErrUnsupportedVersion, ErrCorrupt (wrapping the
// underlying read or checksum failure when there is one).
func Decode(r io.Reader) (*varbvs.State, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, corruptf("header", err)
	}
	if !bytes.Equal(hdr[:len(magic)], magic[:]) {
		return nil, ErrBadMagic
	}
	if v := hdr[len(magic)]; v != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("snapshot: create decoder: %w", err)
	}
	defer dec.Close()

	return readBody(dec)
}

func readBody(r io.Reader) (*varbvs.State, error) {
	var dims [2]uint64
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, corruptf("dimensions", err)
	}
	n, p := dims[0], dims[1]
	if n > maxElements || p > maxElements || 2*p+n > maxElements {
		return nil, corruptf(fmt.Sprintf("dimensions n=%d p=%d", n, p), nil)
	}

	s := &varbvs.State{}
	parts := []struct {
		name  string
		count uint64
		dst   *[]float64
	}{{"alpha", p, &s.Alpha}, {"mu", p, &s.Mu}, {"Xr", n, &s.Xr}}
	buf := make([]byte, chunkBytes)
	for _, part := range parts {
		v, err := readFloats(r, part.count, buf)
		if err != nil {
			return nil, corruptf(part.name, err)
		}
		if err = checkFinite(part.name, v); err != nil {
			return nil, err
		}
		*part.dst = v
	}
	for j, a := range s.Alpha {
		if a < 0 || a > 1 {
			return nil, corruptf(fmt.Sprintf("alpha[%d]=%g", j, a), nil)
		}
	}

	var extra [1]byte
	if k, err := r.Read(extra[:]); k != 0 {
		return nil, corruptf("trailing data", nil)
	} else if err != nil && err != io.EOF {
		return nil, corruptf("trailer", err)
	}

	return s, nil
}

// readFloats reads count little-endian float64 values through buf, one chunk
// at a time. The result grows with the bytes actually delivered, so a header
// that claims more than the payload holds fails with io.EOF or
// io.ErrUnexpectedEOF having allocated in proportion to the real data only.
func readFloats(r io.Reader, count uint64, buf []byte) ([]float64, error) {
	out := make([]float64, 0, min(count, uint64(len(buf)/8)))
	for remaining := count; remaining > 0; {
		k := min(remaining, uint64(len(buf)/8))
		chunk := buf[:8*k]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, err
		}
		for i := 0; i < len(chunk); i += 8 {
			out = append(out, math.Float64frombits(binary.LittleEndian.Uint64(chunk[i:])))
		}
		remaining -= k
	}

	return out, nil
}

func checkFinite(name string, v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return corruptf(fmt.Sprintf("%s[%d]=%g", name, i, x), nil)
		}
	}

	return nil
}

// Marshal is Encode into a fresh byte slice.
func Marshal(s *varbvs.State, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte) (*varbvs.State, error) {
	return Decode(bytes.NewReader(data))
}
