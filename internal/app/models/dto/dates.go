package dto

import (
	"time"

	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
)

func parseDateField(field, value string) (time.Time, error) {
	t, err := helpers.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field,
			"Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}
	return t, nil
}
