package btuuid

import "testing"

func TestNewUUIDStringZeroFilled(t *testing.T) {
	s := NewUUIDString()
	if s.Data() != "" {
		t.Errorf("expected a fresh holder to be empty but got %q", s.Data())
	}
}

func TestUUIDStringRender(t *testing.T) {
	uuid := MustParseUUID("00001101-0000-1000-8000-00805f9b34fb")
	s := NewUUIDString()
	uuid.Render(s)
	if s.Data() != uuid.String() {
		t.Errorf("expected %s but got %s", uuid.String(), s.Data())
	}
	if len(s.Data()) != uuidStringLen {
		t.Errorf("expected %d characters but got %d", uuidStringLen, len(s.Data()))
	}
}

func TestUUIDStringRenderOverwrite(t *testing.T) {
	s := NewUUIDString()
	New16BitUUID(0x1800).Render(s)
	uuid := New16BitUUID(0x180F)
	uuid.Render(s)
	if s.Data() != uuid.String() {
		t.Errorf("expected %s but got %s", uuid.String(), s.Data())
	}
}

func TestUUIDStringDataNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Data on a nil holder to panic")
		}
	}()
	var s *UUIDString
	s.Data()
}

func TestUUIDStringRenderNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Render to a nil holder to panic")
		}
	}()
	New16BitUUID(0x1800).Render(nil)
}
