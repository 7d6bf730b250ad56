package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeEmbedding encodes a slice of float32 values into a BLOB representation
// suitable for storage in SQLite. The encoding is a little-endian sequence of
// IEEE 754 float32 values without a length prefix; the length is derived from
// the BLOB size on decode.
func EncodeEmbedding(vec []float32) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeEmbedding decodes a BLOB produced by EncodeEmbedding back into a
// slice of float32 values.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	vec := make([]float32, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}

// PackFeatures encodes a binary feature vector as a uint32 dimension followed
// by one bit per feature, least significant bit first. Any non-zero value is
// a set bit.
func PackFeatures(vec []float32) []byte {
	if len(vec) == 0 {
		return nil
	}
	b := make([]byte, 4+(len(vec)+7)/8)
	binary.LittleEndian.PutUint32(b, uint32(len(vec)))
	for i, v := range vec {
		if v != 0 {
			b[4+i/8] |= 1 << (uint(i) % 8)
		}
	}
	return b
}

// UnpackFeatures decodes a BLOB produced by PackFeatures into 0/1 values.
func UnpackFeatures(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) < 4 {
		return nil, fmt.Errorf("vector: feature blob too short: %d", len(b))
	}
	dim := int(binary.LittleEndian.Uint32(b))
	if want := 4 + (dim+7)/8; len(b) != want {
		return nil, fmt.Errorf("vector: feature blob length %d, want %d for dim %d", len(b), want, dim)
	}
	vec := make([]float32, dim)
	for i := range vec {
		if b[4+i/8]&(1<<(uint(i)%8)) != 0 {
			vec[i] = 1
		}
	}
	return vec, nil
}
