package repositories

import (
	"errors"
	"testing"

	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateWriteError(t *testing.T) {
	assert.NoError(t, translateWriteError(nil, "creating"))

	err := translateWriteError(&pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}, "creating student")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	ce, ok := apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "email", ce.Field)

	err = translateWriteError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, "creating user")
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	err = translateWriteError(&pgconn.PgError{Code: "23505", ConstraintName: "something_else"}, "x")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = translateWriteError(&pgconn.PgError{Code: "23503", ConstraintName: "courses_instructor_id_fkey"}, "creating course")
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
	ce, ok = apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "instructor", ce.Field)

	err = translateWriteError(errors.New("connection reset"), "updating course")
	assert.EqualError(t, err, "error updating course: connection reset")
}
