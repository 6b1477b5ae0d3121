package routes

import (
	"net/http"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/controllers"
	"github.com/edunexus/schoolrecords/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	Auth       *controllers.AuthController
	Profile    *controllers.ProfileController
	Department *controllers.DepartmentController
	Instructor *controllers.InstructorController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Enrollment *controllers.EnrollmentController
}

// resource is the handler set of one CRUD collection
type resource struct {
	path   string
	list   gin.HandlerFunc
	create gin.HandlerFunc
	get    gin.HandlerFunc
	update gin.HandlerFunc
	patch  gin.HandlerFunc
	remove gin.HandlerFunc
}

// SetupRouter configures all application routes. Every path answers with and without a trailing slash.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	tokenLimiter *middleware.IPRateLimiter,
) {
	router.RedirectTrailingSlash = false

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	handle(api, http.MethodPost, "/register", ctrl.Auth.Register)
	handle(api, http.MethodPost, "/token", tokenLimiter.Middleware(), ctrl.Auth.ObtainToken)
	handle(api, http.MethodPost, "/token/refresh", tokenLimiter.Middleware(), ctrl.Auth.RefreshToken)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	handle(authenticated, http.MethodGet, "/profile", ctrl.Profile.GetProfile)
	handle(authenticated, http.MethodPut, "/profile", ctrl.Profile.UpdateProfile)
	handle(authenticated, http.MethodPatch, "/profile", ctrl.Profile.UpdateProfile)

	resources := []resource{
		{"/departments", ctrl.Department.ListDepartments, ctrl.Department.CreateDepartment, ctrl.Department.GetDepartment,
			ctrl.Department.UpdateDepartment, ctrl.Department.PatchDepartment, ctrl.Department.DeleteDepartment},
		{"/instructors", ctrl.Instructor.ListInstructors, ctrl.Instructor.CreateInstructor, ctrl.Instructor.GetInstructor,
			ctrl.Instructor.UpdateInstructor, ctrl.Instructor.PatchInstructor, ctrl.Instructor.DeleteInstructor},
		{"/students", ctrl.Student.ListStudents, ctrl.Student.CreateStudent, ctrl.Student.GetStudent,
			ctrl.Student.UpdateStudent, ctrl.Student.PatchStudent, ctrl.Student.DeleteStudent},
		{"/courses", ctrl.Course.ListCourses, ctrl.Course.CreateCourse, ctrl.Course.GetCourse,
			ctrl.Course.UpdateCourse, ctrl.Course.PatchCourse, ctrl.Course.DeleteCourse},
		{"/enrollments", ctrl.Enrollment.ListEnrollments, ctrl.Enrollment.CreateEnrollment, ctrl.Enrollment.GetEnrollment,
			ctrl.Enrollment.UpdateEnrollment, ctrl.Enrollment.PatchEnrollment, ctrl.Enrollment.DeleteEnrollment},
	}
	for _, r := range resources {
		item := r.path + "/:id"
		handle(authenticated, http.MethodGet, r.path, r.list)
		handle(authenticated, http.MethodPost, r.path, r.create)
		handle(authenticated, http.MethodGet, item, r.get)
		handle(authenticated, http.MethodPut, item, r.update)
		handle(authenticated, http.MethodPatch, item, r.patch)
		handle(authenticated, http.MethodDelete, item, r.remove)
	}
}

// handle registers path both bare and with a trailing slash
func handle(group *gin.RouterGroup, method, path string, handlers ...gin.HandlerFunc) {
	path = strings.TrimSuffix(path, "/")
	group.Handle(method, path, handlers...)
	group.Handle(method, path+"/", handlers...)
}
