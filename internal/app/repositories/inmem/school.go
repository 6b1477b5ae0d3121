package inmem

import (
	"context"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// DepartmentRepository is the in-memory department table
type DepartmentRepository struct{ s *Store }

func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	department.ID = r.s.next("departments")
	r.s.departments[department.ID] = *department
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.departments[id]
	if !ok {
		return nil, notFound("Department")
	}
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context, filter models.DepartmentFilter) ([]*models.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Department, 0)
	for _, id := range sortedIDs(r.s.departments) {
		d := r.s.departments[id]
		if filter.Search != "" && !containsFold(d.Name, filter.Search) &&
			!containsFold(d.Code, filter.Search) && !containsFold(d.OfficeLocation, filter.Search) {
			continue
		}
		out = append(out, &d)
	}
	return out, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.departments[department.ID]; !ok {
		return notFound("Department")
	}
	r.s.departments[department.ID] = *department
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.departments[id]; !ok {
		return notFound("Department")
	}
	for sid, st := range r.s.students {
		if st.DepartmentID == id {
			r.s.deleteStudentLocked(sid)
		}
	}
	for iid, in := range r.s.instructors {
		if in.DepartmentID == id {
			r.s.deleteInstructorLocked(iid)
		}
	}
	delete(r.s.departments, id)
	return nil
}

func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.departments[id]
	return ok, nil
}

// InstructorRepository is the in-memory instructor table
type InstructorRepository struct{ s *Store }

func (s *Store) checkInstructorLocked(in *models.Instructor) error {
	if _, ok := s.departments[in.DepartmentID]; !ok {
		return missingReference("department")
	}
	for id, other := range s.instructors {
		if id != in.ID && other.Email == in.Email {
			return emailConflict("instructor")
		}
	}
	return nil
}

func (s *Store) deleteInstructorLocked(id int64) {
	for cid, c := range s.courses {
		if c.InstructorID != nil && *c.InstructorID == id {
			c.InstructorID = nil
			s.courses[cid] = c
		}
	}
	delete(s.instructors, id)
}

func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkInstructorLocked(instructor); err != nil {
		return err
	}
	instructor.ID = r.s.next("instructors")
	r.s.instructors[instructor.ID] = *instructor
	return nil
}

func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	in, ok := r.s.instructors[id]
	if !ok {
		return nil, notFound("Instructor")
	}
	return &in, nil
}

func (r *InstructorRepository) List(ctx context.Context, filter models.InstructorFilter) ([]*models.Instructor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Instructor, 0)
	for _, id := range sortedIDs(r.s.instructors) {
		in := r.s.instructors[id]
		if filter.DepartmentID != nil && in.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Search != "" && !containsFold(in.FirstName, filter.Search) &&
			!containsFold(in.LastName, filter.Search) && !containsFold(in.Email, filter.Search) {
			continue
		}
		out = append(out, &in)
	}
	return out, nil
}

func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.instructors[instructor.ID]; !ok {
		return notFound("Instructor")
	}
	if err := r.s.checkInstructorLocked(instructor); err != nil {
		return err
	}
	r.s.instructors[instructor.ID] = *instructor
	return nil
}

func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.instructors[id]; !ok {
		return notFound("Instructor")
	}
	r.s.deleteInstructorLocked(id)
	return nil
}

func (r *InstructorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.instructors[id]
	return ok, nil
}

// StudentRepository is the in-memory student table
type StudentRepository struct{ s *Store }

func (s *Store) checkStudentLocked(st *models.Student) error {
	if _, ok := s.departments[st.DepartmentID]; !ok {
		return missingReference("department")
	}
	for id, other := range s.students {
		if id != st.ID && other.Email == st.Email {
			return emailConflict("student")
		}
	}
	return nil
}

func (s *Store) deleteStudentLocked(id int64) {
	for eid, e := range s.enrollments {
		if e.StudentID == id {
			delete(s.enrollments, eid)
		}
	}
	delete(s.students, id)
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkStudentLocked(student); err != nil {
		return err
	}
	student.ID = r.s.next("students")
	r.s.students[student.ID] = *student
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, notFound("Student")
	}
	return &st, nil
}

func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Student, 0)
	for _, id := range sortedIDs(r.s.students) {
		st := r.s.students[id]
		if filter.DepartmentID != nil && st.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Search != "" && !containsFold(st.FirstName, filter.Search) &&
			!containsFold(st.LastName, filter.Search) && !containsFold(st.Email, filter.Search) {
			continue
		}
		out = append(out, &st)
	}
	return out, nil
}

func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[student.ID]; !ok {
		return notFound("Student")
	}
	if err := r.s.checkStudentLocked(student); err != nil {
		return err
	}
	r.s.students[student.ID] = *student
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[id]; !ok {
		return notFound("Student")
	}
	r.s.deleteStudentLocked(id)
	return nil
}

func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.students[id]
	return ok, nil
}

// CourseRepository is the in-memory course table
type CourseRepository struct{ s *Store }

func (s *Store) checkCourseLocked(c *models.Course) error {
	if c.InstructorID != nil {
		if _, ok := s.instructors[*c.InstructorID]; !ok {
			return missingReference("instructor")
		}
	}
	return nil
}

func cloneCourse(c models.Course) *models.Course {
	if c.InstructorID != nil {
		id := *c.InstructorID
		c.InstructorID = &id
	}
	return &c
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkCourseLocked(course); err != nil {
		return err
	}
	course.ID = r.s.next("courses")
	r.s.courses[course.ID] = *cloneCourse(*course)
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.courses[id]
	if !ok {
		return nil, notFound("Course")
	}
	return cloneCourse(c), nil
}

func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Course, 0)
	for _, id := range sortedIDs(r.s.courses) {
		c := r.s.courses[id]
		if filter.InstructorID != nil && (c.InstructorID == nil || *c.InstructorID != *filter.InstructorID) {
			continue
		}
		if filter.Semester != "" && c.Semester != filter.Semester {
			continue
		}
		if filter.Search != "" && !containsFold(c.Title, filter.Search) && !containsFold(c.CourseCode, filter.Search) {
			continue
		}
		out = append(out, cloneCourse(c))
	}
	return out, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[course.ID]; !ok {
		return notFound("Course")
	}
	if err := r.s.checkCourseLocked(course); err != nil {
		return err
	}
	r.s.courses[course.ID] = *cloneCourse(*course)
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[id]; !ok {
		return notFound("Course")
	}
	for eid, e := range r.s.enrollments {
		if e.CourseID == id {
			delete(r.s.enrollments, eid)
		}
	}
	delete(r.s.courses, id)
	return nil
}

func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.courses[id]
	return ok, nil
}

// EnrollmentRepository is the in-memory enrollment table
type EnrollmentRepository struct{ s *Store }

func (s *Store) checkEnrollmentLocked(e *models.Enrollment) error {
	if _, ok := s.students[e.StudentID]; !ok {
		return missingReference("student")
	}
	if _, ok := s.courses[e.CourseID]; !ok {
		return missingReference("course")
	}
	return nil
}

func cloneEnrollment(e models.Enrollment) *models.Enrollment {
	if e.Grade != nil {
		g := *e.Grade
		e.Grade = &g
	}
	return &e
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkEnrollmentLocked(enrollment); err != nil {
		return err
	}
	enrollment.ID = r.s.next("enrollments")
	r.s.enrollments[enrollment.ID] = *cloneEnrollment(*enrollment)
	return nil
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.enrollments[id]
	if !ok {
		return nil, notFound("Enrollment")
	}
	return cloneEnrollment(e), nil
}

func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Enrollment, 0)
	for _, id := range sortedIDs(r.s.enrollments) {
		e := r.s.enrollments[id]
		if filter.StudentID != nil && e.StudentID != *filter.StudentID {
			continue
		}
		if filter.CourseID != nil && e.CourseID != *filter.CourseID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, cloneEnrollment(e))
	}
	return out, nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.enrollments[enrollment.ID]
	if !ok {
		return notFound("Enrollment")
	}
	if err := r.s.checkEnrollmentLocked(enrollment); err != nil {
		return err
	}
	enrollment.EnrollmentDate = existing.EnrollmentDate
	r.s.enrollments[enrollment.ID] = *cloneEnrollment(*enrollment)
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.enrollments[id]; !ok {
		return notFound("Enrollment")
	}
	delete(r.s.enrollments, id)
	return nil
}
