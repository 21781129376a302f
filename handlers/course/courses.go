package course

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/handlers"
	"github.com/marinescu97/classroom-api/services"
	"github.com/marinescu97/classroom-api/utils/response"
	"github.com/marinescu97/classroom-api/utils/validation"
)

// CourseHandler handles course-related requests, including the enrollment
// operations exposed on the course side.
type CourseHandler struct {
	service    *services.CourseService
	enrollment *services.EnrollmentService
	validator  *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service *services.CourseService, enrollment *services.EnrollmentService) *CourseHandler {
	return &CourseHandler{
		service:    service,
		enrollment: enrollment,
		validator:  validation.NewValidator(),
	}
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, courses)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	course, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, course)
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CourseDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	sanitizeCourse(&req)

	course, err := h.service.Save(c.UserContext(), &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	var req dto.CourseDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	sanitizeCourse(&req)

	course, err := h.service.UpdateByID(c.UserContext(), id, &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Course updated successfully", course)
}

// PatchCourse handles PATCH /api/v1/courses/:id
func (h *CourseHandler) PatchCourse(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	var req dto.CourseDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	sanitizeCourse(&req)

	course, err := h.service.PatchByID(c.UserContext(), id, &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Course patched successfully", course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	if err := h.service.DeleteByID(c.UserContext(), id); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.NoContent(c)
}

// ListStudents handles GET /api/v1/courses/:courseId/students
func (h *CourseHandler) ListStudents(c *fiber.Ctx) error {
	courseID, err := handlers.ParseIDParam(c, "courseId")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	students, err := h.service.FindAllStudents(c.UserContext(), courseID)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, students)
}

// EnrollStudent handles POST /api/v1/courses/:courseId/students?studentId=N
func (h *CourseHandler) EnrollStudent(c *fiber.Ctx) error {
	courseID, err := handlers.ParseIDParam(c, "courseId")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}
	studentID, err := handlers.ParseIDQuery(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid or missing studentId")
	}

	if err := h.enrollment.Enroll(c.UserContext(), studentID, courseID); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Student was added successfully", nil)
}

// UnenrollStudent handles DELETE /api/v1/courses/:courseId/students?studentId=N
func (h *CourseHandler) UnenrollStudent(c *fiber.Ctx) error {
	courseID, err := handlers.ParseIDParam(c, "courseId")
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}
	studentID, err := handlers.ParseIDQuery(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid or missing studentId")
	}

	if err := h.enrollment.Unenroll(c.UserContext(), studentID, courseID); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.NoContent(c)
}

func sanitizeCourse(d *dto.CourseDto) {
	validation.SanitizePtr(d.Code)
	validation.SanitizePtr(d.Name)
}
