package form

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"

	"github.com/ytget/hobby-tracker/internal/model"
)

// Name length bounds, inclusive, in user-perceived characters
const (
	MinNameLength = 3
	MaxNameLength = 16
)

// ErrNameLength is matched by every LengthError through errors.Is
var ErrNameLength = errors.New("hobby name length out of bounds")

// draftValidate is the validator instance for drafts.
// Initialized in init() with the hobbyname tag.
var draftValidate *validator.Validate

func init() {
	draftValidate = validator.New()
	_ = draftValidate.RegisterValidation("hobbyname", validateHobbyName)
}

// validateHobbyName accepts names whose grapheme count is within bounds, so
// "🏄‍♂️ Surf" counts the surfer as one character.
func validateHobbyName(fl validator.FieldLevel) bool {
	n := NameLength(fl.Field().String())
	return n >= MinNameLength && n <= MaxNameLength
}

// NameLength returns the number of user-perceived characters in name.
func NameLength(name string) int {
	return uniseg.GraphemeClusterCount(name)
}

// LengthError reports a name outside [Min, Max].
type LengthError struct {
	Length int
	Min    int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("hobby name must be %d-%d characters, got %d", e.Min, e.Max, e.Length)
}

// Unwrap lets errors.Is match ErrNameLength.
func (e *LengthError) Unwrap() error {
	return ErrNameLength
}

// Adder is the part of the store a draft submits to.
type Adder interface {
	AddHobby(name, emoji string) (model.Hobby, error)
}

// Draft is the candidate hobby being edited on the add screen. It is never
// stored; Submit hands its values to the store.
type Draft struct {
	Name  string `validate:"hobbyname"`
	Emoji string
}

// Validate checks the name length gate.
func (d *Draft) Validate() error {
	err := draftValidate.Struct(d)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return &LengthError{Length: NameLength(d.Name), Min: MinNameLength, Max: MaxNameLength}
	}
	return fmt.Errorf("failed to validate draft: %w", err)
}

// CanSubmit reports whether the submit action should be enabled.
func (d *Draft) CanSubmit() bool {
	return d.Validate() == nil
}

// Submit gates the draft and adds it to store. On success the draft is
// cleared; on any error it is left as it was.
func (d *Draft) Submit(store Adder) (model.Hobby, error) {
	if err := d.Validate(); err != nil {
		return model.Hobby{}, err
	}

	hobby, err := store.AddHobby(d.Name, d.Emoji)
	if err != nil {
		return model.Hobby{}, err
	}

	d.Reset()
	return hobby, nil
}

// Reset clears the candidate name and emoji.
func (d *Draft) Reset() {
	d.Name = ""
	d.Emoji = ""
}
