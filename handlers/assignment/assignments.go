package assignment

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/handlers"
	"github.com/marinescu97/classroom-api/services"
	"github.com/marinescu97/classroom-api/utils/response"
	"github.com/marinescu97/classroom-api/utils/validation"
)

// AssignmentHandler handles assignment-related requests
type AssignmentHandler struct {
	service   *services.AssignmentService
	validator *validation.Validator
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListAssignments handles GET /api/v1/assignments
func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	assignments, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, assignments)
}

// ListByStudent handles GET /api/v1/students/:studentId/assignments
func (h *AssignmentHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := handlers.ParseIDParam(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	assignments, err := h.service.FindAllByStudentID(c.UserContext(), studentID)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Success(c, assignments)
}

// CreateBatch handles POST /api/v1/students/:studentId/assignments with a
// JSON array body; every assignment is created for that student.
func (h *AssignmentHandler) CreateBatch(c *fiber.Ctx) error {
	studentID, err := handlers.ParseIDParam(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	var reqs []dto.AssignmentDto
	if err := c.BodyParser(&reqs); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	for i := range reqs {
		if err := h.validator.ValidateStruct(reqs[i]); err != nil {
			return response.ValidationError(c, err)
		}
		validation.SanitizePtr(reqs[i].Title)
	}

	assignments, err := h.service.SaveAll(c.UserContext(), studentID, reqs)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.Created(c, assignments)
}

// DeleteByStudent handles DELETE /api/v1/students/:studentId/assignments
func (h *AssignmentHandler) DeleteByStudent(c *fiber.Ctx) error {
	studentID, err := handlers.ParseIDParam(c, "studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	if err := h.service.DeleteAllByStudentID(c.UserContext(), studentID); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.NoContent(c)
}

// UpdateAssignment handles PUT /api/v1/assignments/:assignmentId
func (h *AssignmentHandler) UpdateAssignment(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "assignmentId")
	if err != nil {
		return response.BadRequest(c, "Invalid assignment id")
	}

	var req dto.AssignmentDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	validation.SanitizePtr(req.Title)

	assignment, err := h.service.UpdateAssignment(c.UserContext(), id, &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Assignment updated successfully", assignment)
}

// PatchAssignment handles PATCH /api/v1/assignments/:assignmentId
func (h *AssignmentHandler) PatchAssignment(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "assignmentId")
	if err != nil {
		return response.BadRequest(c, "Invalid assignment id")
	}

	var req dto.AssignmentDto
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	validation.SanitizePtr(req.Title)

	assignment, err := h.service.PatchAssignment(c.UserContext(), id, &req)
	if err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.SuccessWithMessage(c, "Assignment patched successfully", assignment)
}

// DeleteAssignment handles DELETE /api/v1/assignments/:assignmentId
func (h *AssignmentHandler) DeleteAssignment(c *fiber.Ctx) error {
	id, err := handlers.ParseIDParam(c, "assignmentId")
	if err != nil {
		return response.BadRequest(c, "Invalid assignment id")
	}

	if err := h.service.DeleteByID(c.UserContext(), id); err != nil {
		return handlers.ServiceError(c, err)
	}
	return response.NoContent(c)
}
