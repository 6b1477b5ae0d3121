package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

func TestDeleteDepartment_Cascades(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	cs := env.department(t, "CS")
	math := env.department(t, "MATH")

	csInstructor := env.instructor(t, cs.ID, "maria@edunexus.ph")
	mathInstructor := env.instructor(t, math.ID, "pedro@edunexus.ph")
	csStudent := env.student(t, cs.ID, "jose@student.edunexus.ph")
	mathStudent := env.student(t, math.ID, "ana@student.edunexus.ph")

	csCourse := env.course(t, &csInstructor.ID)
	mathCourse := env.course(t, &mathInstructor.ID)
	env.enrollment(t, csStudent.ID, mathCourse.ID)
	kept := env.enrollment(t, mathStudent.ID, csCourse.ID)

	require.NoError(t, env.svc.DepartmentService.DeleteDepartment(ctx, cs.ID))

	_, err := env.svc.InstructorService.GetInstructor(ctx, csInstructor.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	_, err = env.svc.StudentService.GetStudent(ctx, csStudent.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	enrollments, err := env.svc.EnrollmentService.ListEnrollments(ctx, models.EnrollmentFilter{})
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, kept.ID, enrollments[0].ID)

	course, err := env.svc.CourseService.GetCourse(ctx, csCourse.ID)
	require.NoError(t, err)
	assert.Nil(t, course.InstructorID)

	counts := env.store.Counts()
	assert.Equal(t, 1, counts["departments"])
	assert.Equal(t, 1, counts["instructors"])
	assert.Equal(t, 1, counts["students"])
	assert.Equal(t, 2, counts["courses"])
}

func TestDeleteInstructor_KeepsCourses(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	dept := env.department(t, "CS")
	in := env.instructor(t, dept.ID, "maria@edunexus.ph")
	course := env.course(t, &in.ID)

	require.NoError(t, env.svc.InstructorService.DeleteInstructor(ctx, in.ID))

	got, err := env.svc.CourseService.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InstructorID)
	assert.Equal(t, course.Title, got.Title)
}

func TestDeleteStudentAndCourse_CascadeEnrollments(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	dept := env.department(t, "CS")
	jose := env.student(t, dept.ID, "jose@student.edunexus.ph")
	ana := env.student(t, dept.ID, "ana@student.edunexus.ph")
	first := env.course(t, nil)
	second := env.course(t, nil)

	env.enrollment(t, jose.ID, first.ID)
	env.enrollment(t, jose.ID, second.ID)
	kept := env.enrollment(t, ana.ID, second.ID)
	require.Equal(t, 3, env.store.Counts()["enrollments"])

	require.NoError(t, env.svc.StudentService.DeleteStudent(ctx, jose.ID))
	assert.Equal(t, 1, env.store.Counts()["enrollments"])

	require.NoError(t, env.svc.CourseService.DeleteCourse(ctx, first.ID))
	enrollments, err := env.svc.EnrollmentService.ListEnrollments(ctx, models.EnrollmentFilter{})
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, kept.ID, enrollments[0].ID)

	require.NoError(t, env.svc.CourseService.DeleteCourse(ctx, second.ID))
	assert.Zero(t, env.store.Counts()["enrollments"])
	assert.Equal(t, 1, env.store.Counts()["students"])
}

func TestDeleteMissing_ReturnsNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, env.svc.DepartmentService.DeleteDepartment(ctx, 99), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, env.svc.InstructorService.DeleteInstructor(ctx, 99), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, env.svc.StudentService.DeleteStudent(ctx, 99), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, env.svc.CourseService.DeleteCourse(ctx, 99), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, env.svc.EnrollmentService.DeleteEnrollment(ctx, 99), apperrors.ErrResourceNotFound)
}

func TestDuplicateEmails_Conflict(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	dept := env.department(t, "CS")
	env.instructor(t, dept.ID, "maria@edunexus.ph")
	env.student(t, dept.ID, "jose@student.edunexus.ph")

	err := env.svc.InstructorService.CreateInstructor(ctx, &models.Instructor{
		FirstName: "Other", LastName: "Person", Email: "maria@edunexus.ph",
		HireDate: date(2020, time.January, 1), DepartmentID: dept.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = env.svc.StudentService.CreateStudent(ctx, &models.Student{
		FirstName: "Other", LastName: "Person", Email: "jose@student.edunexus.ph",
		DateOfBirth: date(2004, time.May, 5), DepartmentID: dept.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// the same address may be used by an instructor and a student
	env.student(t, dept.ID, "maria@edunexus.ph")
}

func TestCreate_MissingReferences(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	err := env.svc.InstructorService.CreateInstructor(ctx, &models.Instructor{
		FirstName: "A", LastName: "B", Email: "a@b.ph", HireDate: date(2020, 1, 1), DepartmentID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	err = env.svc.CourseService.CreateCourse(ctx, &models.Course{
		Title: "T", CourseCode: "C", Semester: "S", Credits: 3, InstructorID: ptr(int64(7)),
	})
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	err = env.svc.EnrollmentService.CreateEnrollment(ctx, &models.Enrollment{StudentID: 1, CourseID: 1})
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestCourse_Validation(t *testing.T) {
	env := newTestEnv(t, nil)

	err := env.svc.CourseService.CreateCourse(context.Background(), &models.Course{
		Title: "T", CourseCode: "C", Semester: "S", Credits: -1,
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	ce, ok := apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "credits", ce.Field)

	// a course without an instructor is valid
	env.course(t, nil)
}

func TestEnrollment_DefaultsAndDate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	dept := env.department(t, "CS")
	st := env.student(t, dept.ID, "jose@student.edunexus.ph")
	c := env.course(t, nil)

	en := env.enrollment(t, st.ID, c.ID)
	assert.Equal(t, models.EnrollmentEnrolled, en.Status)
	assert.Equal(t, date(2025, time.August, 1), en.EnrollmentDate)

	env.clock.Advance(72 * time.Hour)
	patched, err := env.svc.EnrollmentService.PatchEnrollment(ctx, en.ID, func(e *models.Enrollment) error {
		e.Status = models.EnrollmentCompleted
		e.Grade = ptr("1.25")
		e.EnrollmentDate = date(2030, time.January, 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, patched.Status)
	assert.Equal(t, "1.25", *patched.Grade)
	assert.Equal(t, date(2025, time.August, 1), patched.EnrollmentDate)

	_, err = env.svc.EnrollmentService.PatchEnrollment(ctx, en.ID, func(e *models.Enrollment) error {
		e.Status = "Graduated"
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = env.svc.EnrollmentService.PatchEnrollment(ctx, en.ID, func(e *models.Enrollment) error {
		e.Grade = ptr("excellent")
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestList_Filters(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	cs := env.department(t, "CS")
	math := env.department(t, "MATH")
	env.student(t, cs.ID, "a@student.edunexus.ph")
	env.student(t, math.ID, "b@student.edunexus.ph")
	env.student(t, math.ID, "c@student.edunexus.ph")

	all, err := env.svc.StudentService.ListStudents(ctx, models.StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)

	inMath, err := env.svc.StudentService.ListStudents(ctx, models.StudentFilter{DepartmentID: &math.ID})
	require.NoError(t, err)
	assert.Len(t, inMath, 2)

	depts, err := env.svc.DepartmentService.ListDepartments(ctx, models.DepartmentFilter{Search: "math"})
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, "MATH", depts[0].Code)
}

func TestPatchDepartment(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	dept := env.department(t, "CS")

	got, err := env.svc.DepartmentService.PatchDepartment(ctx, dept.ID, func(d *models.Department) error {
		d.OfficeLocation = "Annex 2"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Annex 2", got.OfficeLocation)
	assert.Equal(t, "CS", got.Code)

	_, err = env.svc.DepartmentService.PatchDepartment(ctx, dept.ID+10, func(d *models.Department) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
