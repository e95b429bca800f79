// Package btuuid provides the 128-bit UUID value type used to identify
// services and attributes in a Bluetooth stack, with conversions to and
// from the 16-bit and 32-bit short forms defined by the SDP base UUID
// and the canonical 8-4-4-4-12 textual representation.
package btuuid // import "tinygo.org/x/btuuid"

// This file implements 16-bit, 32-bit and 128-bit UUIDs as defined in
// the Bluetooth specification.

import "errors"

// UUID is a single UUID as used in the Bluetooth stack. It is 16 bytes
// in big-endian order, the same order the canonical string form renders
// them in. The zero value is the reserved empty UUID.
type UUID [16]byte

// baseUUID is the base UUID defined in the SDP specification,
// 00000000-0000-1000-8000-00805f9b34fb. 16-bit and 32-bit UUIDs are
// embedded in bytes 0-3 of this base.
var baseUUID = UUID{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0x80, 0x5f, 0x9b, 0x34, 0xfb,
}

var errInvalidUUID = errors.New("btuuid: failed to parse UUID")

// NewUUID returns a new UUID from its raw big-endian bytes.
func NewUUID(uuid [16]byte) UUID {
	return UUID(uuid)
}

// New16BitUUID returns a new 128-bit UUID based on a 16-bit UUID.
//
// Note: only use registered UUIDs. See
// https://www.bluetooth.com/specifications/gatt/services/ for a list.
func New16BitUUID(shortUUID uint16) UUID {
	return New32BitUUID(uint32(shortUUID))
}

// New32BitUUID returns a new 128-bit UUID based on a 32-bit UUID, by
// embedding it in bytes 0-3 of the base UUID.
func New32BitUUID(shortUUID uint32) UUID {
	uuid := baseUUID
	uuid[0] = byte(shortUUID >> 24)
	uuid[1] = byte(shortUUID >> 16)
	uuid[2] = byte(shortUUID >> 8)
	uuid[3] = byte(shortUUID)
	return uuid
}

// ParseUUID parses the given UUID, which must be in
// 00001234-0000-1000-8000-00805f9b34fb format: at least 36 characters
// long, hyphens at offsets 8, 13, 18 and 23, and two hex digits per
// byte elsewhere. Characters past offset 35 are ignored. Hex digits may
// be upper or lower case; anything else is rejected with an error. See
// ParseUUIDPermissive for the lenient variant.
func ParseUUID(s string) (uuid UUID, err error) {
	if !wellFormed(s) {
		return UUID{}, errInvalidUUID
	}
	si := 0
	for i := 0; i < len(uuid); i++ {
		hi, ok1 := hexNibble(s[si])
		lo, ok2 := hexNibble(s[si+1])
		if !ok1 || !ok2 {
			return UUID{}, errInvalidUUID
		}
		uuid[i] = hi<<4 | lo
		si += 2
		// Adjust by skipping the hyphens.
		switch i {
		case 3, 5, 7, 9:
			si++
		}
	}
	return uuid, nil
}

// ParseUUIDPermissive is a lenient ParseUUID: the length and hyphen
// checks are the same, but each 2-character window is read like a
// base-16 strtoul, so a window with a bad character contributes its
// longest valid prefix (possibly no digits at all) instead of failing.
// Only a too-short string or misplaced hyphens return an error.
func ParseUUIDPermissive(s string) (uuid UUID, err error) {
	if !wellFormed(s) {
		return UUID{}, errInvalidUUID
	}
	si := 0
	for i := 0; i < len(uuid); i++ {
		if hi, ok := hexNibble(s[si]); ok {
			if lo, ok := hexNibble(s[si+1]); ok {
				hi = hi<<4 | lo
			}
			uuid[i] = hi
		}
		si += 2
		switch i {
		case 3, 5, 7, 9:
			si++
		}
	}
	return uuid, nil
}

// MustParseUUID parses the given UUID and panics if it is invalid. It
// is intended for package-level declarations of registered UUIDs.
func MustParseUUID(s string) UUID {
	uuid, err := ParseUUID(s)
	if err != nil {
		panic("btuuid: MustParseUUID: invalid UUID " + s)
	}
	return uuid
}

// wellFormed reports whether s is long enough to hold a canonical UUID
// and has hyphens at the four fixed offsets.
func wellFormed(s string) bool {
	if len(s) < uuidStringLen {
		return false
	}
	return s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsEmpty reports whether uuid is the reserved all-zero empty UUID. A
// nil pointer is also considered empty.
func (uuid *UUID) IsEmpty() bool {
	return uuid == nil || *uuid == UUID{}
}

// Equal reports whether both UUIDs match in all 16 bytes. UUIDs are
// plain comparable values, so this is the same as ==.
func (uuid UUID) Equal(other UUID) bool {
	return uuid == other
}

// CopyFrom overwrites uuid with all 16 bytes of src and returns uuid.
// Both pointers must be non-nil.
func (uuid *UUID) CopyFrom(src *UUID) *UUID {
	if uuid == nil || src == nil {
		panic("btuuid: CopyFrom with nil UUID")
	}
	*uuid = *src
	return uuid
}

// Is16Bit returns whether this UUID is a 16-bit Bluetooth UUID, that
// is, a base UUID whose embedded value fits in 16 bits.
func (uuid UUID) Is16Bit() bool {
	return uuid.Is32Bit() && uuid[0] == 0 && uuid[1] == 0
}

// Is32Bit returns whether this UUID is a 32-bit Bluetooth UUID.
func (uuid UUID) Is32Bit() bool {
	return uuid.isBase()
}

// Uint16 returns the 16-bit short form carried in bytes 2-3, big
// endian. It reports false if the UUID is not built on the base UUID.
func (uuid UUID) Uint16() (UUID16, bool) {
	if !uuid.isBase() {
		return 0, false
	}
	return UUID16(uuid[2])<<8 | UUID16(uuid[3]), true
}

// Uint32 returns the 32-bit short form carried in bytes 0-3, big
// endian. It reports false if the UUID is not built on the base UUID.
func (uuid UUID) Uint32() (UUID32, bool) {
	if !uuid.isBase() {
		return 0, false
	}
	return UUID32(uuid[0])<<24 | UUID32(uuid[1])<<16 |
		UUID32(uuid[2])<<8 | UUID32(uuid[3]), true
}

// isBase reports whether bytes 4-15 equal the base UUID, the condition
// for reducing to a short form.
func (uuid UUID) isBase() bool {
	for i := 4; i < len(uuid); i++ {
		if uuid[i] != baseUUID[i] {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the raw big-endian bytes.
func (uuid UUID) Bytes() [16]byte {
	return [16]byte(uuid)
}

const hexDigit = "0123456789abcdef"

// String returns the canonical 36-character form of this UUID, such as
// 00001234-0000-1000-8000-00805f9b34fb.
func (uuid UUID) String() string {
	var s [uuidStringLen]byte
	uuid.render(s[:])
	return string(s[:])
}

// render writes the canonical form into buf, which must hold at least
// uuidStringLen bytes.
func (uuid UUID) render(buf []byte) {
	si := 0
	for i := 0; i < len(uuid); i++ {
		buf[si] = hexDigit[uuid[i]>>4]
		buf[si+1] = hexDigit[uuid[i]&0xf]
		si += 2
		switch i {
		case 3, 5, 7, 9:
			buf[si] = '-'
			si++
		}
	}
}
