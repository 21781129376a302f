package mapper

import (
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

// AddressToEntity builds a new address from the DTO.
func AddressToEntity(d *dto.AddressDto) *model.Address {
	if d == nil {
		return nil
	}
	addr := &model.Address{}
	UpdateAddressFromDto(d, addr)
	return addr
}

// AddressToDto maps an address back to its transfer object.
func AddressToDto(a *model.Address) *dto.AddressDto {
	if a == nil {
		return nil
	}
	return &dto.AddressDto{
		Street:  &a.Street,
		ZipCode: &a.ZipCode,
		City:    &a.City,
	}
}

// UpdateAddressFromDto applies full-update semantics.
func UpdateAddressFromDto(d *dto.AddressDto, addr *model.Address) {
	addr.Street = deref(d.Street)
	addr.ZipCode = deref(d.ZipCode)
	addr.City = deref(d.City)
}

// PatchAddressFromDto applies partial-patch semantics.
func PatchAddressFromDto(d *dto.AddressDto, addr *model.Address) {
	if d.Street != nil {
		addr.Street = *d.Street
	}
	if d.ZipCode != nil {
		addr.ZipCode = *d.ZipCode
	}
	if d.City != nil {
		addr.City = *d.City
	}
}
