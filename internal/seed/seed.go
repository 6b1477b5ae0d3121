// Package seed fills an empty database with demo school records
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/rs/zerolog"
)

// Semester assigned to every seeded course
const Semester = "1st Sem 2025-2026"

// Count of records created per entity
const Count = 10

var firstNames = []string{
	"Juan", "Maria", "Jose", "Andres", "Gabriela",
	"Bayani", "Tala", "Isagani", "Amihan", "Lakan",
	"Francisco", "Clara", "Diego", "Luz", "Emilio",
}

var lastNames = []string{
	"Santos", "Reyes", "Cruz", "Bautista", "Del Rosario",
	"Mendoza", "Garcia", "Torres", "Ramos", "Flores",
	"Dimaculangan", "Macapagal", "Batungbakal", "Dalisay", "Catapang",
}

type departmentConfig struct {
	name     string
	code     string
	location string
}

var departmentConfigs = []departmentConfig{
	{"Information Technology", "IT", "Tech Hub, 3rd Floor"},
	{"Entrepreneurship", "ENT", "Business Center, Rm 101"},
	{"Linguistics", "LIN", "Humanities Hall, Rm 205"},
	{"Education", "EDU", "Teachers Pavilion, Rm 102"},
	{"Public Administration", "PUB", "Governance Bldg, Rm 404"},
}

type courseConfig struct {
	title      string
	department string
}

var courseConfigs = []courseConfig{
	{"Intro to Python", "Information Technology"},
	{"Web Development", "Information Technology"},
	{"Business Planning", "Entrepreneurship"},
	{"Accounting 101", "Entrepreneurship"},
	{"Filipino 1", "Linguistics"},
	{"English Phonetics", "Linguistics"},
	{"Child Psychology", "Education"},
	{"Curriculum Dev", "Education"},
	{"Public Policy", "Public Administration"},
	{"Governance 101", "Public Administration"},
}

// enrollment statuses are drawn from this list, so Enrolled is twice as likely
var weightedStatuses = []models.EnrollmentStatus{
	models.EnrollmentEnrolled, models.EnrollmentEnrolled, models.EnrollmentCompleted,
}

var grades = []string{"1.0", "1.25", "1.5", "1.75", "2.0", ""}

// Summary reports what a run created
type Summary struct {
	Departments int
	Instructors int
	Students    int
	Courses     int
	Enrollments int
}

// Seeder creates demo records through the services. It is not idempotent.
type Seeder struct {
	svc    *services.Services
	rnd    *rand.Rand
	logger zerolog.Logger
}

// NewSeeder creates a Seeder. A nil rnd is seeded from the clock.
func NewSeeder(svc *services.Services, rnd *rand.Rand, logger zerolog.Logger) *Seeder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Seeder{svc: svc, rnd: rnd, logger: logger}
}

// Run creates departments, instructors, students, courses and enrollments in that order
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	s.logger.Info().Msg("Seeding data...")
	summary := &Summary{}

	departments, err := s.seedDepartments(ctx)
	if err != nil {
		return summary, err
	}
	summary.Departments = len(departments)
	s.logger.Info().Int("count", summary.Departments).Msg("Created departments")

	instructors, err := s.seedInstructors(ctx, departments)
	if err != nil {
		return summary, err
	}
	summary.Instructors = len(instructors)
	s.logger.Info().Int("count", summary.Instructors).Msg("Created instructors")

	students, err := s.seedStudents(ctx, departments)
	if err != nil {
		return summary, err
	}
	summary.Students = len(students)
	s.logger.Info().Int("count", summary.Students).Msg("Created students")

	courses, err := s.seedCourses(ctx, instructors, departments)
	if err != nil {
		return summary, err
	}
	summary.Courses = len(courses)
	s.logger.Info().Int("count", summary.Courses).Msg("Created courses")

	summary.Enrollments, err = s.seedEnrollments(ctx, students, courses)
	if err != nil {
		return summary, err
	}
	s.logger.Info().Int("count", summary.Enrollments).Msg("Created enrollments")

	s.logger.Info().Msg("Successfully seeded database")
	return summary, nil
}

func (s *Seeder) seedDepartments(ctx context.Context) ([]*models.Department, error) {
	departments := make([]*models.Department, 0, Count)
	for i := 0; i < Count; i++ {
		cfg := departmentConfigs[i%len(departmentConfigs)]
		section := "A"
		if i >= len(departmentConfigs) {
			section = "B"
		}

		d := &models.Department{
			Name:            fmt.Sprintf("%s - Sec %s", cfg.name, section),
			Code:            fmt.Sprintf("%s10%d", cfg.code, i+1),
			OfficeLocation:  cfg.location,
			PhoneContact:    fmt.Sprintf("0917-555-00%d", i),
			EstablishedDate: time.Date(2005, time.June, 15, 0, 0, 0, 0, time.UTC),
		}
		if err := s.svc.DepartmentService.CreateDepartment(ctx, d); err != nil {
			return nil, fmt.Errorf("seeding department %s: %w", d.Code, err)
		}
		departments = append(departments, d)
	}
	return departments, nil
}

func (s *Seeder) seedInstructors(ctx context.Context, departments []*models.Department) ([]*models.Instructor, error) {
	instructors := make([]*models.Instructor, 0, Count)
	for i := 0; i < Count; i++ {
		first, last := s.pick(firstNames), s.pick(lastNames)

		in := &models.Instructor{
			FirstName:    first,
			LastName:     last,
			Email:        fmt.Sprintf("%s.%s%d@edunexus.ph", emailPart(first), emailPart(last), i),
			HireDate:     time.Date(2018, time.August, 1, 0, 0, 0, 0, time.UTC),
			DepartmentID: departments[s.rnd.Intn(len(departments))].ID,
		}
		if err := s.svc.InstructorService.CreateInstructor(ctx, in); err != nil {
			return nil, fmt.Errorf("seeding instructor %s: %w", in.Email, err)
		}
		instructors = append(instructors, in)
	}
	return instructors, nil
}

func (s *Seeder) seedStudents(ctx context.Context, departments []*models.Department) ([]*models.Student, error) {
	students := make([]*models.Student, 0, Count)
	for i := 0; i < Count; i++ {
		first, last := s.pick(firstNames), s.pick(lastNames)
		month := time.Month(s.rnd.Intn(12) + 1)
		day := s.rnd.Intn(28) + 1

		st := &models.Student{
			FirstName:    first,
			LastName:     last,
			Email:        fmt.Sprintf("%s%d@student.edunexus.ph", emailPart(first), i),
			DateOfBirth:  time.Date(2003, month, day, 0, 0, 0, 0, time.UTC),
			DepartmentID: departments[s.rnd.Intn(len(departments))].ID,
		}
		if err := s.svc.StudentService.CreateStudent(ctx, st); err != nil {
			return nil, fmt.Errorf("seeding student %s: %w", st.Email, err)
		}
		students = append(students, st)
	}
	return students, nil
}

func (s *Seeder) seedCourses(ctx context.Context, instructors []*models.Instructor, departments []*models.Department) ([]*models.Course, error) {
	departmentNames := make(map[int64]string, len(departments))
	for _, d := range departments {
		departmentNames[d.ID] = d.Name
	}

	courses := make([]*models.Course, 0, Count)
	for i := 0; i < Count; i++ {
		cfg := courseConfigs[i%len(courseConfigs)]
		instructor := matchInstructor(instructors, departmentNames, cfg.department)
		if instructor == nil {
			instructor = instructors[s.rnd.Intn(len(instructors))]
		}
		instructorID := instructor.ID

		c := &models.Course{
			Title:        cfg.title,
			CourseCode:   fmt.Sprintf("SUBJ-%d", 100+i),
			Credits:      3,
			Semester:     Semester,
			InstructorID: &instructorID,
		}
		if err := s.svc.CourseService.CreateCourse(ctx, c); err != nil {
			return nil, fmt.Errorf("seeding course %s: %w", c.CourseCode, err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (s *Seeder) seedEnrollments(ctx context.Context, students []*models.Student, courses []*models.Course) (int, error) {
	created := 0
	for i := 0; i < Count; i++ {
		e := &models.Enrollment{
			StudentID: students[s.rnd.Intn(len(students))].ID,
			CourseID:  courses[s.rnd.Intn(len(courses))].ID,
			Status:    weightedStatuses[s.rnd.Intn(len(weightedStatuses))],
		}
		if grade := s.pick(grades); grade != "" {
			e.Grade = &grade
		}
		if err := s.svc.EnrollmentService.CreateEnrollment(ctx, e); err != nil {
			return created, fmt.Errorf("seeding enrollment %d: %w", i, err)
		}
		created++
	}
	return created, nil
}

// matchInstructor returns the first instructor whose department name contains departmentName
func matchInstructor(instructors []*models.Instructor, departmentNames map[int64]string, departmentName string) *models.Instructor {
	for _, in := range instructors {
		if strings.Contains(departmentNames[in.DepartmentID], departmentName) {
			return in
		}
	}
	return nil
}

func (s *Seeder) pick(values []string) string {
	return values[s.rnd.Intn(len(values))]
}

// emailPart lowercases a name and drops spaces so it fits an email local part
func emailPart(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
