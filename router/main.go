package router

import (
	"log"
	"time"

	"github.com/autoassign/api/config"
	"github.com/autoassign/api/database"
	"github.com/autoassign/api/handlers"
	adminhandler "github.com/autoassign/api/handlers/admin"
	authhandler "github.com/autoassign/api/handlers/auth"
	facultyhandler "github.com/autoassign/api/handlers/faculty"
	studenthandler "github.com/autoassign/api/handlers/student"
	"github.com/autoassign/api/services"
	"github.com/autoassign/api/services/groq"
	"github.com/autoassign/api/services/storage"
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dependencies carries the shared infrastructure the routes are built on
type Dependencies struct {
	Env      *config.EnviornmentVariable
	Sessions session.Store
	Uploads  storage.Storage
}

// SetupRoutes registers every route with its middleware chain
func SetupRoutes(app *fiber.App, store database.Storage, deps Dependencies) {
	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	groqClient := groq.NewClient(groq.Config{
		APIKey: deps.Env.GROQ_API_KEY,
		Model:  deps.Env.GROQ_MODEL,
	})

	questionService := services.NewQuestionService(db, groqClient)
	assignmentService := services.NewAssignmentService(db)
	dashboardService := services.NewDashboardService(db)

	sessionTTL := time.Duration(deps.Env.SESSION_TTL_MINUTES) * time.Minute
	authHandler := authhandler.NewAuthHandler(db, deps.Sessions, sessionTTL, authhandler.AdminCredentials{
		Email:    deps.Env.ADMIN_EMAIL,
		Password: deps.Env.ADMIN_PASSWORD,
	})
	adminHandler := adminhandler.NewAdminHandler(db)
	facultyHandler := facultyhandler.NewFacultyHandler(db, questionService, assignmentService, dashboardService)
	studentHandler := studenthandler.NewStudentHandler(db, dashboardService, assignmentService, deps.Uploads)

	authMW := middleware.NewAuthMiddleware(deps.Sessions)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store, deps.Env.GROQ_API_KEY != "")
	})

	api := app.Group("/api")

	// Authentication
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authMW.Required(), authHandler.Logout)
	api.Get("/me", authMW.Required(), authHandler.Me)
	api.Post("/change-password", authMW.Required(), authHandler.ChangePassword)

	// Master data (admin only)
	adminGroup := api.Group("/admin", authMW.Required(), authMW.RequireAdmin())
	adminGroup.Post("/add-department", adminHandler.AddDepartment)
	adminGroup.Post("/add-batch", adminHandler.AddBatch)

	api.Post("/add-course", authMW.Required(), authMW.RequireAdmin(), adminHandler.AddCourse)
	api.Post("/add-faculty", authMW.Required(), authMW.RequireAdmin(), adminHandler.AddFaculty)
	api.Post("/add-student", authMW.Required(), authMW.RequireAdmin(), adminHandler.AddStudent)
	api.Post("/add-teaches", authMW.Required(), authMW.RequireAdmin(), adminHandler.AddTeaches)

	// Reference reads (any authenticated role)
	api.Get("/departments", authMW.Required(), adminHandler.ListDepartments)
	api.Get("/courses", authMW.Required(), adminHandler.ListCourses)
	api.Get("/faculties", authMW.Required(), adminHandler.ListFaculties)
	api.Get("/batches", authMW.Required(), adminHandler.ListBatches)
	api.Get("/batches/:deptId", authMW.Required(), adminHandler.ListBatchesByDepartment)

	// Question generation (faculty only)
	app.Post("/generate-questions", authMW.Required(), authMW.RequireRole(session.RoleFaculty), facultyHandler.GenerateQuestions)
	app.Post("/upload-pdf", authMW.Required(), authMW.RequireRole(session.RoleFaculty), facultyHandler.UploadPDF)

	facultyGroup := api.Group("/faculty", authMW.Required(), authMW.RequireRole(session.RoleFaculty))
	facultyGroup.Post("/save-questions", facultyHandler.SaveQuestions)
	facultyGroup.Post("/create-assignment", facultyHandler.CreateAssignment)
	facultyGroup.Post("/assign-assignment", facultyHandler.AssignAssignment)
	facultyGroup.Get("/subjects/:facultyId", facultyHandler.Subjects)
	facultyGroup.Get("/batches", facultyHandler.Batches)
	facultyGroup.Get("/questions/:subjectCode", facultyHandler.QuestionsBySubject)
	facultyGroup.Get("/students/:facultyId/:subjectCode/:assignmentId", facultyHandler.AllocationStatus)

	api.Get("/assignments/:subjectCode", authMW.Required(), authMW.RequireRole(session.RoleFaculty), facultyHandler.AssignmentsBySubject)
	api.Get("/students/:batchId", authMW.Required(), authMW.RequireRole(session.RoleFaculty), facultyHandler.StudentsInBatch)

	// Student dashboard and submissions
	studentGroup := api.Group("/student", authMW.Required())
	studentGroup.Get("/courses/:studentId", studentHandler.Courses)
	studentGroup.Get("/assignments/:studentId/:courseId", studentHandler.Assignments)

	api.Post("/upload-assignment", authMW.Required(), authMW.RequireRole(session.RoleStudent), studentHandler.UploadAssignment)
	app.Get("/uploads/:filename", authMW.Required(), studentHandler.Download)
}
