package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories/inmem"
	"github.com/edunexus/schoolrecords/internal/pkg/auth"
	"github.com/edunexus/schoolrecords/internal/pkg/filestorage"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeBlacklist struct {
	mu   sync.Mutex
	seen map[string]time.Duration
}

func (b *fakeBlacklist) Blacklist(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seen == nil {
		b.seen = make(map[string]time.Duration)
	}
	if _, ok := b.seen[jti]; ok {
		return false, nil
	}
	b.seen[jti] = ttl
	return true, nil
}

type testEnv struct {
	svc   *Services
	store *inmem.Store
	clock *fakeClock
	jwt   *auth.JWTService
	media string
}

func newTestEnv(t *testing.T, blacklist TokenBlacklist) *testEnv {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  60 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "schoolrecords-test",
		Now:             clock.Now,
	})

	media := t.TempDir()
	storage, err := filestorage.NewLocalStorage(media, "http://localhost:8000/media")
	require.NoError(t, err)

	store := inmem.NewStore()
	svc := NewServices(store.Repositories(), Dependencies{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Storage:    storage,
	})
	svc.AuthService.WithPasswordCost(bcrypt.MinCost)
	svc.EnrollmentService.WithClock(clock.Now)

	return &testEnv{svc: svc, store: store, clock: clock, jwt: jwtService, media: media}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (e *testEnv) department(t *testing.T, code string) *models.Department {
	t.Helper()
	d := &models.Department{
		Name:            "Department " + code,
		Code:            code,
		OfficeLocation:  "Main Bldg",
		PhoneContact:    "0917-555-0000",
		EstablishedDate: date(2005, time.June, 15),
	}
	require.NoError(t, e.svc.DepartmentService.CreateDepartment(context.Background(), d))
	return d
}

func (e *testEnv) instructor(t *testing.T, deptID int64, email string) *models.Instructor {
	t.Helper()
	in := &models.Instructor{
		FirstName:    "Maria",
		LastName:     "Santos",
		Email:        email,
		HireDate:     date(2018, time.August, 1),
		DepartmentID: deptID,
	}
	require.NoError(t, e.svc.InstructorService.CreateInstructor(context.Background(), in))
	return in
}

func (e *testEnv) student(t *testing.T, deptID int64, email string) *models.Student {
	t.Helper()
	st := &models.Student{
		FirstName:    "Jose",
		LastName:     "Reyes",
		Email:        email,
		DateOfBirth:  date(2003, time.March, 3),
		DepartmentID: deptID,
	}
	require.NoError(t, e.svc.StudentService.CreateStudent(context.Background(), st))
	return st
}

func (e *testEnv) course(t *testing.T, instructorID *int64) *models.Course {
	t.Helper()
	c := &models.Course{
		Title:        "Intro to Programming",
		CourseCode:   "SUBJ-101",
		Credits:      3,
		Semester:     "1st Sem 2025-2026",
		InstructorID: instructorID,
	}
	require.NoError(t, e.svc.CourseService.CreateCourse(context.Background(), c))
	return c
}

func (e *testEnv) enrollment(t *testing.T, studentID, courseID int64) *models.Enrollment {
	t.Helper()
	en := &models.Enrollment{StudentID: studentID, CourseID: courseID}
	require.NoError(t, e.svc.EnrollmentService.CreateEnrollment(context.Background(), en))
	return en
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func ptr[T any](v T) *T {
	return &v
}
