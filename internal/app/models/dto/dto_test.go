package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestPatchCourseRequest_InstructorNullVersusAbsent(t *testing.T) {
	course := &models.Course{Title: "Algebra", InstructorID: int64Ptr(4)}

	var absent PatchCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Geometry"}`), &absent))
	require.NoError(t, absent.ApplyTo(course))
	assert.Equal(t, "Geometry", course.Title)
	require.NotNil(t, course.InstructorID)
	assert.Equal(t, int64(4), *course.InstructorID)

	var moved PatchCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"instructor":7}`), &moved))
	require.NoError(t, moved.ApplyTo(course))
	require.NotNil(t, course.InstructorID)
	assert.Equal(t, int64(7), *course.InstructorID)

	var cleared PatchCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"instructor":null}`), &cleared))
	require.NoError(t, cleared.ApplyTo(course))
	assert.Nil(t, course.InstructorID)
}

func TestPatchEnrollmentRequest_GradeNullClears(t *testing.T) {
	grade := "1.25"
	enrollment := &models.Enrollment{Status: models.EnrollmentCompleted, Grade: &grade}

	var statusOnly PatchEnrollmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Dropped"}`), &statusOnly))
	require.NoError(t, statusOnly.ApplyTo(enrollment))
	assert.Equal(t, models.EnrollmentDropped, enrollment.Status)
	require.NotNil(t, enrollment.Grade)
	assert.Equal(t, "1.25", *enrollment.Grade)

	var regraded PatchEnrollmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"grade":"2.0"}`), &regraded))
	require.NoError(t, regraded.ApplyTo(enrollment))
	require.NotNil(t, enrollment.Grade)
	assert.Equal(t, "2.0", *enrollment.Grade)

	var cleared PatchEnrollmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"grade":null}`), &cleared))
	require.NoError(t, cleared.ApplyTo(enrollment))
	assert.Nil(t, enrollment.Grade)
}

func TestCreateStudentRequest_ToModel(t *testing.T) {
	req := CreateStudentRequest{FirstName: "Jose", LastName: "Reyes", Email: "j@x.ph", DOB: "2003-02-28", Department: 2}

	st, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2003, 2, 28, 0, 0, 0, 0, time.UTC), st.DateOfBirth)
	assert.Equal(t, "2003-02-28", NewStudentResponse(st).DOB)

	req.DOB = "28/02/2003"
	_, err = req.ToModel()
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestNewUserProfileResponse_Avatar(t *testing.T) {
	u := &models.User{ID: 1, Username: "juan"}
	assert.Nil(t, NewUserProfileResponse(u).Avatar)

	url := "http://localhost/media/a.png"
	u.Profile = &models.Profile{Avatar: &url}
	resp := NewUserProfileResponse(u)
	require.NotNil(t, resp.Avatar)
	assert.Equal(t, url, *resp.Avatar)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.Register(v))
	v.SetTagName("binding")

	err := v.Struct(CreateEnrollmentRequest{Student: 1, Status: "Pending", Grade: strPtr("1.250000")})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	fields, ok := detail.Details.(FieldErrors)
	require.True(t, ok)
	assert.Equal(t, []string{"This field is required."}, fields["course"])
	assert.Equal(t, []string{`"Pending" is not a valid choice.`}, fields["status"])
	assert.Equal(t, []string{"Ensure this field has no more than 5 characters."}, fields["grade"])
}

func TestHandleValidationError_TypeMismatch(t *testing.T) {
	var req CreateCourseRequest
	err := json.Unmarshal([]byte(`{"credits":"three"}`), &req)
	require.Error(t, err)

	detail := HandleValidationError(err)
	fields, ok := detail.Details.(FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fields, "credits")
}

func strPtr(s string) *string { return &s }
