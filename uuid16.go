package btuuid

// UUID16 is a 16-bit short-form Bluetooth UUID, such as 0x180F for the
// Battery Service.
type UUID16 uint16

// UUID returns the full length UUID for this short UUID.
func (s UUID16) UUID() UUID {
	return New16BitUUID(uint16(s))
}

// String returns the canonical form of the full length UUID for this
// short UUID.
func (s UUID16) String() string {
	return s.UUID().String()
}

// UUID32 is a 32-bit short-form Bluetooth UUID.
type UUID32 uint32

// UUID returns the full length UUID for this short UUID.
func (s UUID32) UUID() UUID {
	return New32BitUUID(uint32(s))
}

// String returns the canonical form of the full length UUID for this
// short UUID.
func (s UUID32) String() string {
	return s.UUID().String()
}
