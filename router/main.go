package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marinescu97/classroom-api/database"
	"github.com/marinescu97/classroom-api/handlers"
	assignment_handlers "github.com/marinescu97/classroom-api/handlers/assignment"
	course_handlers "github.com/marinescu97/classroom-api/handlers/course"
	student_handlers "github.com/marinescu97/classroom-api/handlers/student"
	"github.com/marinescu97/classroom-api/services"
	"github.com/marinescu97/classroom-api/utils"
	"github.com/marinescu97/classroom-api/utils/cache"
	"github.com/marinescu97/classroom-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis cache for the course catalog; the API degrades to direct DB
	// reads when Redis is unavailable.
	var redisCache *cache.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Course catalog caching disabled.", err)
			redisCache = nil
		}
	}

	// Initialize services
	studentService := services.NewStudentService(db)
	courseService := services.NewCourseService(db, redisCache)
	assignmentService := services.NewAssignmentService(db)
	enrollmentService := services.NewEnrollmentService(db)

	// Initialize handlers
	studentHandler := student_handlers.NewStudentHandler(studentService, enrollmentService)
	courseHandler := course_handlers.NewCourseHandler(courseService, enrollmentService)
	assignmentHandler := assignment_handlers.NewAssignmentHandler(assignmentService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Students
	students := api.Group("/students")
	students.Get("/", studentHandler.ListStudents)
	students.Post("/", studentHandler.CreateStudent)
	students.Get("/:id<int>", studentHandler.GetStudent)
	students.Put("/:id<int>", studentHandler.UpdateStudent)
	students.Patch("/:id<int>", studentHandler.PatchStudent)
	students.Delete("/:id<int>", studentHandler.DeleteStudent)

	// Enrollment, student side
	students.Get("/:studentId<int>/courses", studentHandler.ListCourses)
	students.Post("/:studentId<int>/courses", studentHandler.Enroll)
	students.Delete("/:studentId<int>/courses", studentHandler.Unenroll)

	// Assignments owned by a student
	students.Get("/:studentId<int>/assignments", assignmentHandler.ListByStudent)
	students.Post("/:studentId<int>/assignments", assignmentHandler.CreateBatch)
	students.Delete("/:studentId<int>/assignments", assignmentHandler.DeleteByStudent)

	// Courses
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Post("/", courseHandler.CreateCourse)
	courses.Get("/:id<int>", courseHandler.GetCourse)
	courses.Put("/:id<int>", courseHandler.UpdateCourse)
	courses.Patch("/:id<int>", courseHandler.PatchCourse)
	courses.Delete("/:id<int>", courseHandler.DeleteCourse)

	// Enrollment, course side
	courses.Get("/:courseId<int>/students", courseHandler.ListStudents)
	courses.Post("/:courseId<int>/students", courseHandler.EnrollStudent)
	courses.Delete("/:courseId<int>/students", courseHandler.UnenrollStudent)

	// Assignments
	assignments := api.Group("/assignments")
	assignments.Get("/", assignmentHandler.ListAssignments)
	assignments.Put("/:assignmentId<int>", assignmentHandler.UpdateAssignment)
	assignments.Patch("/:assignmentId<int>", assignmentHandler.PatchAssignment)
	assignments.Delete("/:assignmentId<int>", assignmentHandler.DeleteAssignment)
}
