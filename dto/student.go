package dto

// StudentDto carries student fields over the wire. Fields are pointers so a
// JSON null (or absent field) is distinguishable from a zero value — the same
// type serves create, full update and partial patch.
type StudentDto struct {
	Name    *string     `json:"name" validate:"omitempty,max=255"`
	Email   *string     `json:"email" validate:"omitempty,email,max=254"`
	Address *AddressDto `json:"address" validate:"omitempty"`
}

// AddressDto is the nested owned address, mapped one level deep.
type AddressDto struct {
	Street  *string `json:"street" validate:"omitempty,max=255"`
	ZipCode *string `json:"zip_code" validate:"omitempty,max=20"`
	City    *string `json:"city" validate:"omitempty,max=100"`
}
