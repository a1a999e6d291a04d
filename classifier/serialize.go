package classifier

import (
	"encoding/binary"
	"errors"
	"math"
)

const flagStrictK = 1

// MarshalBinary serializes the fitted classifier. Layout: dim(uint32),
// n(uint32), k(uint32), flags(uint32), then for each training sample:
// labelLen(uint32), label bytes, vec(float32[dim]).
func (m *KNN) MarshalBinary() ([]byte, error) {
	var flags uint32
	if m.strictK {
		flags |= flagStrictK
	}
	size := 16
	for i, label := range m.labels {
		size += 4 + len(label) + 4*len(m.features[i])
	}
	out := make([]byte, 0, size)
	putU32 := func(v uint32) { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); out = append(out, b...) }
	putF32 := func(v float32) {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
		out = append(out, b...)
	}
	putU32(uint32(m.dim))
	putU32(uint32(len(m.features)))
	putU32(uint32(m.k))
	putU32(flags)
	for i, label := range m.labels {
		putU32(uint32(len(label)))
		out = append(out, []byte(label)...)
		vec := m.features[i]
		for j := 0; j < m.dim; j++ {
			putF32(vec[j])
		}
	}
	return out, nil
}

// UnmarshalBinary restores a classifier serialized by MarshalBinary.
func (m *KNN) UnmarshalBinary(data []byte) error {
	if len(data) < 16 {
		return errors.New("classifier: invalid model data")
	}
	off := 0
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	getF32 := func() float32 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
		return v
	}
	dim := int(getU32())
	n := int(getU32())
	k := int(getU32())
	flags := getU32()
	labels := make([]string, n)
	features := make([][]float32, n)
	for i := 0; i < n; i++ {
		if off+4 > len(data) {
			return errors.New("classifier: truncated model")
		}
		labelLen := int(getU32())
		if off+labelLen > len(data) {
			return errors.New("classifier: truncated label")
		}
		labels[i] = string(data[off : off+labelLen])
		off += labelLen
		vec := make([]float32, dim)
		for j := 0; j < dim; j++ {
			if off+4 > len(data) {
				return errors.New("classifier: truncated vec")
			}
			vec[j] = getF32()
		}
		features[i] = vec
	}
	m.k = k
	m.strictK = flags&flagStrictK != 0
	return m.Fit(features, labels)
}
