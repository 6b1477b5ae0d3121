package models

// Course is a subject offering. Instructor is optional and cleared when the instructor is deleted.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	CourseCode   string `json:"course_code" db:"course_code"`
	Credits      int    `json:"credits" db:"credits"`
	Semester     string `json:"semester" db:"semester"`
	InstructorID *int64 `json:"instructor" db:"instructor_id"`
}

// CourseFilter narrows course listings
type CourseFilter struct {
	InstructorID *int64
	Semester     string
	Search       string
}
