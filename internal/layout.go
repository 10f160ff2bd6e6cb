package internal

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// FromUUID splits u into the two halves the codec encodes.
//
// The halves are the GUID field layout of u (time_low, time_mid and
// time_hi_and_version stored little-endian, followed by the eight node bytes)
// read as two little-endian words. Identifiers encoded by earlier releases
// depend on this layout, so it is fixed here rather than taken from the host.
func FromUUID(u uuid.UUID) (hi, lo uint64) {
	var b [8]byte
	b[0], b[1], b[2], b[3] = u[3], u[2], u[1], u[0]
	b[4], b[5] = u[5], u[4]
	b[6], b[7] = u[7], u[6]

	hi = binary.LittleEndian.Uint64(b[:])
	lo = binary.LittleEndian.Uint64(u[8:16])
	return hi, lo
}

// ToUUID is the inverse of FromUUID.
func ToUUID(hi, lo uint64) uuid.UUID {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], hi)

	var u uuid.UUID
	u[0], u[1], u[2], u[3] = b[3], b[2], b[1], b[0]
	u[4], u[5] = b[5], b[4]
	u[6], u[7] = b[7], b[6]
	binary.LittleEndian.PutUint64(u[8:16], lo)
	return u
}
