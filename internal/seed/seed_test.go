package seed

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories/inmem"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder(t *testing.T, seed int64) (*Seeder, *services.Services) {
	t.Helper()
	store := inmem.NewStore()
	svc := services.NewServices(store.Repositories(), services.Dependencies{})
	return NewSeeder(svc, rand.New(rand.NewSource(seed)), zerolog.Nop()), svc
}

func TestRun_CreatesTenOfEach(t *testing.T) {
	seeder, svc := newSeeder(t, 42)
	ctx := context.Background()

	summary, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Departments: 10, Instructors: 10, Students: 10, Courses: 10, Enrollments: 10}, summary)

	departments, err := svc.DepartmentService.ListDepartments(ctx, models.DepartmentFilter{})
	require.NoError(t, err)
	require.Len(t, departments, 10)
	assert.Equal(t, "Information Technology - Sec A", departments[0].Name)
	assert.Equal(t, "IT101", departments[0].Code)
	assert.Equal(t, "0917-555-000", departments[0].PhoneContact)
	assert.Equal(t, "Public Administration - Sec B", departments[9].Name)
	assert.Equal(t, "PUB1010", departments[9].Code)

	instructors, err := svc.InstructorService.ListInstructors(ctx, models.InstructorFilter{})
	require.NoError(t, err)
	for i, in := range instructors {
		assert.True(t, strings.HasSuffix(in.Email, "@edunexus.ph"), in.Email)
		assert.NotContains(t, in.Email, " ")
		assert.Contains(t, in.Email, string(rune('0'+i))+"@")
	}

	students, err := svc.StudentService.ListStudents(ctx, models.StudentFilter{})
	require.NoError(t, err)
	for _, st := range students {
		assert.Equal(t, 2003, st.DateOfBirth.Year())
		assert.LessOrEqual(t, st.DateOfBirth.Day(), 28)
	}

	courses, err := svc.CourseService.ListCourses(ctx, models.CourseFilter{})
	require.NoError(t, err)
	for i, c := range courses {
		assert.Equal(t, Semester, c.Semester)
		assert.Equal(t, 3, c.Credits)
		assert.Equal(t, courseConfigs[i].title, c.Title)
		assert.NotNil(t, c.InstructorID)
	}

	enrollments, err := svc.EnrollmentService.ListEnrollments(ctx, models.EnrollmentFilter{})
	require.NoError(t, err)
	for _, e := range enrollments {
		assert.Contains(t, []models.EnrollmentStatus{models.EnrollmentEnrolled, models.EnrollmentCompleted}, e.Status)
		if e.Grade != nil {
			assert.Contains(t, grades, *e.Grade)
		}
	}
}

func TestMatchInstructor(t *testing.T) {
	names := map[int64]string{1: "Linguistics - Sec A", 2: "Education - Sec B"}
	instructors := []*models.Instructor{{ID: 10, DepartmentID: 1}, {ID: 11, DepartmentID: 2}, {ID: 12, DepartmentID: 2}}

	assert.Equal(t, int64(11), matchInstructor(instructors, names, "Education").ID)
	assert.Nil(t, matchInstructor(instructors, names, "Entrepreneurship"))
}

func TestEmailPart(t *testing.T) {
	assert.Equal(t, "delrosario", emailPart("Del Rosario"))
	assert.Equal(t, "juan", emailPart("Juan"))
}
