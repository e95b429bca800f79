package btuuid

// uuidStringLen is the length of the canonical textual form,
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX.
const uuidStringLen = 36

// UUIDString is an owned, fixed-size buffer dedicated to holding one
// canonical textual UUID representation. It is created zero-filled by
// NewUUIDString, written by UUID.Render and read through Data; callers
// never index the buffer directly. Index 36 holds a NUL terminator so
// the layout matches the 37-byte C string it descends from.
type UUIDString struct {
	buf [uuidStringLen + 1]byte
}

// NewUUIDString returns a new, zero-filled string holder.
func NewUUIDString() *UUIDString {
	return &UUIDString{}
}

// Data returns a read-only view of the characters currently held, up
// to the first NUL. It is empty until the first Render. The holder must
// be non-nil.
func (s *UUIDString) Data() string {
	if s == nil {
		panic("btuuid: Data on nil UUIDString")
	}
	n := 0
	for n < uuidStringLen && s.buf[n] != 0 {
		n++
	}
	return string(s.buf[:n])
}

// Render writes the canonical 36-character form of uuid into s,
// followed by a NUL terminator. The holder is contractually sized to
// fit, so Render cannot truncate; it panics on a nil holder.
func (uuid UUID) Render(s *UUIDString) {
	if s == nil {
		panic("btuuid: Render to nil UUIDString")
	}
	uuid.render(s.buf[:uuidStringLen])
	s.buf[uuidStringLen] = 0
}
