package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// UsernamePattern allows letters, digits and @/./+/-/_ only
	UsernamePattern = `^[\w.@+-]+$`

	// UsernameMaxLength is the longest accepted username
	UsernameMaxLength = 150
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
}

// Custom validator tags
const (
	TagUsername         = "username"
	TagEnrollmentStatus = "enrollment_status"
)

// IsValidUsername checks length and allowed characters
func IsValidUsername(username string) bool {
	return username != "" && len(username) <= UsernameMaxLength && CompiledPatterns.Username.MatchString(username)
}

func validateUsername(fl validator.FieldLevel) bool {
	return IsValidUsername(fl.Field().String())
}

func validateEnrollmentStatus(fl validator.FieldLevel) bool {
	return models.EnrollmentStatus(fl.Field().String()).IsValid()
}

// Register installs the custom rules on v and reports field names by their json tag
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation(TagUsername, validateUsername); err != nil {
		return err
	}
	return v.RegisterValidation(TagEnrollmentStatus, validateEnrollmentStatus)
}

// RegisterGinValidators installs the custom rules on gin's binding engine
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
