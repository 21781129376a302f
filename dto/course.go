package dto

// CourseDto carries course fields over the wire.
type CourseDto struct {
	Code *string `json:"code" validate:"omitempty,min=2,max=50"`
	Name *string `json:"name" validate:"omitempty,max=255"`
}
