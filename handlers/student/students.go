package student

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/handlers"
	"github.com/marinescu97/classroom-api/services"
	"github.com/marinescu97/classroom-api/utils/response"
	"github.com/marinescu97/classroom-api/utils/validation"
)

// StudentHandler handles student-related requests, including the enrollment
// operations exposed on the student side.
type StudentHandler struct {
	service    *services.StudentService
	enrollment *services.EnrollmentService
	validator  *validation.Validator
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(service *services.StudentService, enrollment *services.EnrollmentService) *StudentHandler {
	return &StudentHandler{
		service:    service,
		enrollment: enrollment,
		validator:  validation.NewValidator(),
	}
}

// CreateStudent handles POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req dto.StudentDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	sanitizeStudent(&req)

	student, err := h.service.Save(c.UserContext(), &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Created(c, student)
}

// ListStudents handles GET /api/v1/students
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, students)
}

// GetStudent handles GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	student, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, student)
}

// UpdateStudent handles PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	var req dto.StudentDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	sanitizeStudent(&req)

	student, err := h.service.UpdateByID(c.UserContext(), id, &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Student updated successfully", student)
}

// PatchStudent handles PATCH /api/v1/students/:id
func (h *StudentHandler) PatchStudent(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	var req dto.StudentDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	sanitizeStudent(&req)

	student, err := h.service.PatchByID(c.UserContext(), id, &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Student patched successfully", student)
}

// DeleteStudent handles DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	if err := h.service.DeleteByID(c.UserContext(), id); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.NoContent(c)
}

// ListCourses handles GET /api/v1/students/:studentId/courses
func (h *StudentHandler) ListCourses(c *fiber.Ctx) error {
	studentID, err := handlers.ParseIDParam(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	courses, err := h.service.FindAllCourses(c.UserContext(), studentID)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, courses)
}

// Enroll handles POST /api/v1/students/:studentId/courses?courseId=N
func (h *StudentHandler) Enroll(c *fiber.Ctx) error {
	studentID, err := handlers.ParseIDParam(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}
	courseID, err := handlers.ParseIDQuery(c, "courseId")
	if err != nil {
		return response.BadRequest(c, "Invalid or missing courseId")
	}

	if err := h.enrollment.Enroll(c.UserContext(), studentID, courseID); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Course was successfully added", nil)
}

// Unenroll handles DELETE /api/v1/students/:studentId/courses?courseId=N
func (h *StudentHandler) Unenroll(c *fiber.Ctx) error {
	studentID, err := handlers.ParseIDParam(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}
	courseID, err := handlers.ParseIDQuery(c, "courseId")
	if err != nil {
		return response.BadRequest(c, "Invalid or missing courseId")
	}

	if err := h.enrollment.Unenroll(c.UserContext(), studentID, courseID); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.NoContent(c)
}

func sanitizeStudent(d *dto.StudentDto) {
	validation.SanitizePtr(d.Name)
	validation.SanitizePtr(d.Email)
	if d.Address != nil {
		validation.SanitizePtr(d.Address.Street)
		validation.SanitizePtr(d.Address.ZipCode)
		validation.SanitizePtr(d.Address.City)
	}
}
