package models

import "regexp"

var (
	// letters and spaces only, accented Latin letters included
	nameRe   = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

type fieldValidator func(value string) *ValidationError

// one validator per field, run before anything touches the database
var clientFieldValidators = map[string]fieldValidator{
	"name":           validateName,
	"identification": validateIdentification,
	"phone_number":   validatePhoneNumber,
	"zip_code":       validateZipCode,
	"street":         validateStreet,
}

func validateName(v string) *ValidationError {
	if v == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !nameRe.MatchString(v) {
		return &ValidationError{Field: "name", Message: "name must contain only letters and spaces"}
	}
	return nil
}

func validateIdentification(v string) *ValidationError {
	if v == "" {
		return &ValidationError{Field: "identification", Message: "identification is required"}
	}
	if len(v) < 10 || len(v) > 13 {
		return &ValidationError{Field: "identification", Message: "identification must be 10 to 13 characters"}
	}
	return nil
}

func validatePhoneNumber(v string) *ValidationError {
	if len(v) != 11 || !digitsRe.MatchString(v) {
		return &ValidationError{Field: "phone_number", Message: "phone_number must be exactly 11 digits"}
	}
	return nil
}

func validateZipCode(v string) *ValidationError {
	if len(v) != 8 || !digitsRe.MatchString(v) {
		return &ValidationError{Field: "zip_code", Message: "zip_code must be exactly 8 digits"}
	}
	return nil
}

func validateStreet(v string) *ValidationError {
	if v == "" {
		return &ValidationError{Field: "street", Message: "street is required"}
	}
	return nil
}

func runValidators(fields map[string]string) error {
	// fixed order so the first reported failure is deterministic
	for _, name := range []string{"name", "identification", "phone_number", "zip_code", "street"} {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := clientFieldValidators[name](value); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every creation field against its format constraint.
func (in *ClientInput) Validate() error {
	return runValidators(map[string]string{
		"name":           in.Name,
		"identification": in.Identification,
		"phone_number":   in.PhoneNumber,
		"zip_code":       in.ZipCode,
		"street":         in.Street,
	})
}

// Validate checks the mutable client fields.
func (u *ClientUpdate) Validate() error {
	return runValidators(map[string]string{
		"name":         u.Name,
		"phone_number": u.PhoneNumber,
	})
}

// Validate checks the address fields.
func (u *AddressUpdate) Validate() error {
	return runValidators(map[string]string{
		"zip_code": u.ZipCode,
		"street":   u.Street,
	})
}
