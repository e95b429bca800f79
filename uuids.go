package btuuid

// This file includes well-known UUIDs from the Bluetooth assigned
// numbers, as used by the GAP and GATT layers.

const (
	ServiceUUIDGenericAccess     UUID16 = 0x1800
	ServiceUUIDGenericAttribute  UUID16 = 0x1801
	ServiceUUIDDeviceInformation UUID16 = 0x180A
	ServiceUUIDBattery           UUID16 = 0x180F

	DeclarationUUIDPrimaryService   UUID16 = 0x2800
	DeclarationUUIDSecondaryService UUID16 = 0x2801
	DeclarationUUIDInclude          UUID16 = 0x2802
	DeclarationUUIDCharacteristic   UUID16 = 0x2803

	DescriptorUUIDClientCharacteristicConfig UUID16 = 0x2902
	DescriptorUUIDServerCharacteristicConfig UUID16 = 0x2903

	CharacteristicUUIDDeviceName UUID16 = 0x2A00
	CharacteristicUUIDAppearance UUID16 = 0x2A01
)
