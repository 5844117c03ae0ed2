package movie

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidMovie wraps field validation failures of a record.
	ErrInvalidMovie = errors.New("invalid movie")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate movie id")
)

var validate = validator.New()

// Validate checks a single record's fields.
func Validate(m Movie) error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: id=%d field %s failed %q", ErrInvalidMovie, m.ID, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidMovie, err)
}

// ValidateCatalog validates every record and the uniqueness of ids.
func ValidateCatalog(movies []Movie) error {
	seen := make(map[int]bool, len(movies))
	for _, m := range movies {
		if err := Validate(m); err != nil {
			return err
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}
