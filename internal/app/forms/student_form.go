// Package forms holds the draft state behind the student create form.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/siswa/internal/app/models"
	"github.com/yigit/siswa/internal/pkg/apperrors"
	"github.com/yigit/siswa/internal/pkg/validation"
)

// Notices shown after a submission
const (
	MessageValidationFailed = "Mohon lengkapi semua field yang wajib diisi!"
	MessageCreated          = "Data siswa berhasil ditambahkan!"
)

// Form field names, matching the json and form tags of models.StudentData
const (
	FieldName      = "name"
	FieldNIS       = "nis"
	FieldGrade     = "grade"
	FieldMajor     = "major"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldAddress   = "address"
	FieldBirthDate = "birthDate"
	FieldGender    = "gender"
)

// Fields lists every field name Set accepts
var Fields = []string{
	FieldName, FieldNIS, FieldGrade, FieldMajor, FieldGender,
	FieldBirthDate, FieldPhone, FieldEmail, FieldAddress,
}

// ErrUnknownField is returned by Set for a field the form does not have
var ErrUnknownField = errors.New("unknown form field")

// ValidationError lists the fields that blocked a submission
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("%s: %s", MessageValidationFailed, strings.Join(names, ", "))
}

// Unwrap lets callers match apperrors.ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// Submitter receives a validated payload and returns the stored record
type Submitter func(ctx context.Context, data models.StudentData) (*models.Student, error)

var validate = validation.New()

// StudentForm holds the draft of a student being created
type StudentForm struct {
	draft models.StudentData
}

// NewStudentForm returns a form seeded with its defaults
func NewStudentForm() *StudentForm {
	return &StudentForm{draft: defaultDraft()}
}

func defaultDraft() models.StudentData {
	return models.StudentData{Gender: models.DefaultGender}
}

// Draft returns a copy of the current draft
func (f *StudentForm) Draft() models.StudentData {
	return f.draft
}

// Set updates a single draft field, leaving the others untouched. An empty
// gender keeps the current selection.
func (f *StudentForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldNIS:
		f.draft.NIS = value
	case FieldGrade:
		f.draft.Grade = value
	case FieldMajor:
		f.draft.Major = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldEmail:
		f.draft.Email = value
	case FieldAddress:
		f.draft.Address = value
	case FieldBirthDate:
		f.draft.BirthDate = value
	case FieldGender:
		if value != "" {
			f.draft.Gender = models.Gender(value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Fill copies a whole payload into the draft. An empty gender keeps the
// form's current selection, as an untouched select would.
func (f *StudentForm) Fill(data models.StudentData) {
	gender := f.draft.Gender
	f.draft = data
	if data.Gender == "" {
		f.draft.Gender = gender
	}
}

// Reset restores the seeded defaults
func (f *StudentForm) Reset() {
	f.draft = defaultDraft()
}

// Validate checks the draft without submitting it
func (f *StudentForm) Validate() error {
	fields, err := validate.Struct(f.draft)
	if err != nil {
		return fmt.Errorf("error validating student form: %w", err)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates the draft and hands it to submit. On a validation failure
// nothing is emitted and the draft is kept; on success the draft is reset.
func (f *StudentForm) Submit(ctx context.Context, submit Submitter) (*models.Student, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	student, err := submit(ctx, f.draft)
	if err != nil {
		return nil, err
	}

	f.Reset()
	return student, nil
}
