package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ScalarKind identifies one of the 14 scalar value kinds a chunk can carry.
type ScalarKind uint8

const (
	KindInvalid ScalarKind = iota
	KindBool
	KindChar
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

// TypeTag is the single on-disk byte identifying a ScalarKind.
// Valid tags are 1 through 14.
type TypeTag uint8

// tagOfKind and kindOfTag are the two halves of the kind<->tag bijection.
// Tag values are part of the wire format and must never be reassigned.
var tagOfKind = map[ScalarKind]TypeTag{
	KindBool:       1,
	KindChar:       2,
	KindUint8:      3,
	KindUint16:     4,
	KindUint32:     5,
	KindUint64:     6,
	KindInt8:       7,
	KindInt16:      8,
	KindInt32:      9,
	KindInt64:      10,
	KindFloat32:    11,
	KindFloat64:    12,
	KindComplex64:  13,
	KindComplex128: 14,
}

var kindOfTag = map[TypeTag]ScalarKind{
	1:  KindBool,
	2:  KindChar,
	3:  KindUint8,
	4:  KindUint16,
	5:  KindUint32,
	6:  KindUint64,
	7:  KindInt8,
	8:  KindInt16,
	9:  KindInt32,
	10: KindInt64,
	11: KindFloat32,
	12: KindFloat64,
	13: KindComplex64,
	14: KindComplex128,
}

// widthOfKind pins each kind's on-disk byte width. Widths are part of the
// wire format and are never derived from Go's in-memory representation.
var widthOfKind = map[ScalarKind]int{
	KindBool:       1,
	KindChar:       1,
	KindUint8:      1,
	KindUint16:     2,
	KindUint32:     4,
	KindUint64:     8,
	KindInt8:       1,
	KindInt16:      2,
	KindInt32:      4,
	KindInt64:      8,
	KindFloat32:    4,
	KindFloat64:    8,
	KindComplex64:  8,
	KindComplex128: 16,
}

var kindNames = map[ScalarKind]string{
	KindBool:       "bool",
	KindChar:       "char",
	KindUint8:      "uint8",
	KindUint16:     "uint16",
	KindUint32:     "uint32",
	KindUint64:     "uint64",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

// TagOf returns the on-disk tag for a scalar kind.
func TagOf(k ScalarKind) (TypeTag, error) {
	tag, ok := tagOfKind[k]
	if !ok {
		return 0, fmt.Errorf("%w: kind %d", ErrUnsupportedKind, k)
	}
	return tag, nil
}

// KindOf returns the scalar kind for an on-disk tag.
func KindOf(g TypeTag) (ScalarKind, error) {
	k, ok := kindOfTag[g]
	if !ok {
		return KindInvalid, fmt.Errorf("%w: tag %d", ErrUnknownTag, g)
	}
	return k, nil
}

// Width returns the on-disk byte width of a scalar kind, or 0 for an
// unsupported kind.
func (k ScalarKind) Width() int {
	return widthOfKind[k]
}

// Valid reports whether k is one of the 14 supported kinds.
func (k ScalarKind) Valid() bool {
	_, ok := tagOfKind[k]
	return ok
}

func (k ScalarKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ScalarKind(%d)", uint8(k))
}

// Scalar is one typed scalar value. It carries its kind and the value's
// fixed-width little-endian byte image, which is exactly what goes on disk.
// Scalars are comparable with ==; the unused tail of the byte image is
// always zero.
type Scalar struct {
	kind ScalarKind
	raw  [16]byte
}

// Bool returns a boolean scalar.
func Bool(v bool) Scalar {
	s := Scalar{kind: KindBool}
	if v {
		s.raw[0] = 1
	}
	return s
}

// Char returns a character scalar. Characters are single bytes on disk.
func Char(v byte) Scalar {
	s := Scalar{kind: KindChar}
	s.raw[0] = v
	return s
}

// Uint8 returns an unsigned 8-bit scalar.
func Uint8(v uint8) Scalar {
	s := Scalar{kind: KindUint8}
	s.raw[0] = v
	return s
}

// Uint16 returns an unsigned 16-bit scalar.
func Uint16(v uint16) Scalar {
	s := Scalar{kind: KindUint16}
	binary.LittleEndian.PutUint16(s.raw[:2], v)
	return s
}

// Uint32 returns an unsigned 32-bit scalar.
func Uint32(v uint32) Scalar {
	s := Scalar{kind: KindUint32}
	binary.LittleEndian.PutUint32(s.raw[:4], v)
	return s
}

// Uint64 returns an unsigned 64-bit scalar.
func Uint64(v uint64) Scalar {
	s := Scalar{kind: KindUint64}
	binary.LittleEndian.PutUint64(s.raw[:8], v)
	return s
}

// Int8 returns a signed 8-bit scalar.
func Int8(v int8) Scalar {
	s := Scalar{kind: KindInt8}
	s.raw[0] = byte(v)
	return s
}

// Int16 returns a signed 16-bit scalar.
func Int16(v int16) Scalar {
	s := Scalar{kind: KindInt16}
	binary.LittleEndian.PutUint16(s.raw[:2], uint16(v))
	return s
}

// Int32 returns a signed 32-bit scalar.
func Int32(v int32) Scalar {
	s := Scalar{kind: KindInt32}
	binary.LittleEndian.PutUint32(s.raw[:4], uint32(v))
	return s
}

// Int64 returns a signed 64-bit scalar.
func Int64(v int64) Scalar {
	s := Scalar{kind: KindInt64}
	binary.LittleEndian.PutUint64(s.raw[:8], uint64(v))
	return s
}

// Float32 returns a 32-bit floating point scalar.
func Float32(v float32) Scalar {
	s := Scalar{kind: KindFloat32}
	binary.LittleEndian.PutUint32(s.raw[:4], math.Float32bits(v))
	return s
}

// Float64 returns a 64-bit floating point scalar.
func Float64(v float64) Scalar {
	s := Scalar{kind: KindFloat64}
	binary.LittleEndian.PutUint64(s.raw[:8], math.Float64bits(v))
	return s
}

// Complex64 returns a complex scalar stored as two packed 32-bit floats,
// real part first.
func Complex64(v complex64) Scalar {
	s := Scalar{kind: KindComplex64}
	binary.LittleEndian.PutUint32(s.raw[:4], math.Float32bits(real(v)))
	binary.LittleEndian.PutUint32(s.raw[4:8], math.Float32bits(imag(v)))
	return s
}

// Complex128 returns a complex scalar stored as two packed 64-bit floats,
// real part first.
func Complex128(v complex128) Scalar {
	s := Scalar{kind: KindComplex128}
	binary.LittleEndian.PutUint64(s.raw[:8], math.Float64bits(real(v)))
	binary.LittleEndian.PutUint64(s.raw[8:16], math.Float64bits(imag(v)))
	return s
}

// Kind returns the scalar's kind.
func (s Scalar) Kind() ScalarKind {
	return s.kind
}

// Bytes returns the scalar's on-disk byte image, Width(kind) bytes long.
// The returned slice aliases the scalar and must not be modified.
func (s Scalar) Bytes() []byte {
	return s.raw[:s.kind.Width()]
}

func (s Scalar) mustKind(k ScalarKind) {
	if s.kind != k {
		panic(fmt.Sprintf("codec: %s accessor called on %s scalar", k, s.kind))
	}
}

// AsBool returns the boolean value. It panics if the kind is not KindBool.
func (s Scalar) AsBool() bool {
	s.mustKind(KindBool)
	return s.raw[0] != 0
}

// AsChar returns the character value. It panics if the kind is not KindChar.
func (s Scalar) AsChar() byte {
	s.mustKind(KindChar)
	return s.raw[0]
}

// AsUint8 returns the uint8 value. It panics if the kind is not KindUint8.
func (s Scalar) AsUint8() uint8 {
	s.mustKind(KindUint8)
	return s.raw[0]
}

// AsUint16 returns the uint16 value. It panics if the kind is not KindUint16.
func (s Scalar) AsUint16() uint16 {
	s.mustKind(KindUint16)
	return binary.LittleEndian.Uint16(s.raw[:2])
}

// AsUint32 returns the uint32 value. It panics if the kind is not KindUint32.
func (s Scalar) AsUint32() uint32 {
	s.mustKind(KindUint32)
	return binary.LittleEndian.Uint32(s.raw[:4])
}

// AsUint64 returns the uint64 value. It panics if the kind is not KindUint64.
func (s Scalar) AsUint64() uint64 {
	s.mustKind(KindUint64)
	return binary.LittleEndian.Uint64(s.raw[:8])
}

// AsInt8 returns the int8 value. It panics if the kind is not KindInt8.
func (s Scalar) AsInt8() int8 {
	s.mustKind(KindInt8)
	return int8(s.raw[0])
}

// AsInt16 returns the int16 value. It panics if the kind is not KindInt16.
func (s Scalar) AsInt16() int16 {
	s.mustKind(KindInt16)
	return int16(binary.LittleEndian.Uint16(s.raw[:2]))
}

// AsInt32 returns the int32 value. It panics if the kind is not KindInt32.
func (s Scalar) AsInt32() int32 {
	s.mustKind(KindInt32)
	return int32(binary.LittleEndian.Uint32(s.raw[:4]))
}

// AsInt64 returns the int64 value. It panics if the kind is not KindInt64.
func (s Scalar) AsInt64() int64 {
	s.mustKind(KindInt64)
	return int64(binary.LittleEndian.Uint64(s.raw[:8]))
}

// AsFloat32 returns the float32 value. It panics if the kind is not KindFloat32.
func (s Scalar) AsFloat32() float32 {
	s.mustKind(KindFloat32)
	return math.Float32frombits(binary.LittleEndian.Uint32(s.raw[:4]))
}

// AsFloat64 returns the float64 value. It panics if the kind is not KindFloat64.
func (s Scalar) AsFloat64() float64 {
	s.mustKind(KindFloat64)
	return math.Float64frombits(binary.LittleEndian.Uint64(s.raw[:8]))
}

// AsComplex64 returns the complex64 value. It panics if the kind is not KindComplex64.
func (s Scalar) AsComplex64() complex64 {
	s.mustKind(KindComplex64)
	re := math.Float32frombits(binary.LittleEndian.Uint32(s.raw[:4]))
	im := math.Float32frombits(binary.LittleEndian.Uint32(s.raw[4:8]))
	return complex(re, im)
}

// AsComplex128 returns the complex128 value. It panics if the kind is not KindComplex128.
func (s Scalar) AsComplex128() complex128 {
	s.mustKind(KindComplex128)
	re := math.Float64frombits(binary.LittleEndian.Uint64(s.raw[:8]))
	im := math.Float64frombits(binary.LittleEndian.Uint64(s.raw[8:16]))
	return complex(re, im)
}

// Interface returns the scalar boxed as its native Go value, for display
// and serialization surfaces that do not care about the exact kind.
func (s Scalar) Interface() interface{} {
	switch s.kind {
	case KindBool:
		return s.AsBool()
	case KindChar:
		return s.AsChar()
	case KindUint8:
		return s.AsUint8()
	case KindUint16:
		return s.AsUint16()
	case KindUint32:
		return s.AsUint32()
	case KindUint64:
		return s.AsUint64()
	case KindInt8:
		return s.AsInt8()
	case KindInt16:
		return s.AsInt16()
	case KindInt32:
		return s.AsInt32()
	case KindInt64:
		return s.AsInt64()
	case KindFloat32:
		return s.AsFloat32()
	case KindFloat64:
		return s.AsFloat64()
	case KindComplex64:
		return s.AsComplex64()
	case KindComplex128:
		return s.AsComplex128()
	default:
		return nil
	}
}

func (s Scalar) String() string {
	return fmt.Sprintf("%s(%v)", s.kind, s.Interface())
}

// decodeScalar builds a Scalar from its on-disk byte image. The buffer
// must be exactly Width(kind) bytes.
func decodeScalar(kind ScalarKind, buf []byte) Scalar {
	s := Scalar{kind: kind}
	copy(s.raw[:], buf)
	return s
}
