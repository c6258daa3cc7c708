// Package views renders the HTML pages of the student manager.
package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/yigit/siswa/internal/app/forms"
	"github.com/yigit/siswa/internal/app/models"
	"github.com/yigit/siswa/internal/app/models/dto"
	"github.com/yigit/siswa/internal/pkg/helpers"
	"github.com/yigit/siswa/internal/pkg/validation"
)

// Template names
const (
	IndexTemplate         = "index.html"
	ConfirmDeleteTemplate = "confirm_delete.html"
	NotFoundTemplate      = "not_found.html"
)

// Notice kinds
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice codes accepted in the ?notice= query after a redirect
const (
	NoticeCodeCreated = "created"
	NoticeCodeDeleted = "deleted"
)

// MessageDeleted is shown after a confirmed deletion
const MessageDeleted = "Data siswa berhasil dihapus!"

//go:embed templates/*.html
var templatesFS embed.FS

// Notice is a transient notification rendered at the top of a page
type Notice struct {
	Kind    string
	Message string
}

// Option is one entry of a select input
type Option struct {
	Value string
	Label string
}

// IndexPage is the view model of the main page
type IndexPage struct {
	Title       string
	Notice      *Notice
	Summary     dto.StudentSummary
	Draft       models.StudentData
	FieldErrors map[string]string
	Students    []*models.Student
	Total       int
	Search      string
	Empty       *EmptyStateMessage
	Grades      []Option
	Majors      []Option
	Genders     []Option
}

// ConfirmDeletePage asks the user to confirm removing a student
type ConfirmDeletePage struct {
	Title    string
	Student  *models.Student
	Question string
}

// NewIndexPage assembles the main page from the listing state
func NewIndexPage(title string, summary dto.StudentSummary, students []*models.Student, search string) *IndexPage {
	return &IndexPage{
		Title:       title,
		Summary:     summary,
		Draft:       models.StudentData{Gender: models.DefaultGender},
		FieldErrors: map[string]string{},
		Students:    students,
		Total:       summary.Total,
		Search:      search,
		Empty:       EmptyState(len(students), search),
		Grades:      gradeOptions(),
		Majors:      majorOptions(),
		Genders:     genderOptions(),
	}
}

// WithFieldErrors records the failed fields so the form can mark them
func (p *IndexPage) WithFieldErrors(fields []validation.FieldError) *IndexPage {
	for _, f := range fields {
		p.FieldErrors[f.Field] = f.Message
	}
	return p
}

// NewConfirmDeletePage builds the confirmation prompt for a student
func NewConfirmDeletePage(title string, student *models.Student) *ConfirmDeletePage {
	return &ConfirmDeletePage{
		Title:    title,
		Student:  student,
		Question: DeleteQuestion(student.Name),
	}
}

// DeleteQuestion is the confirmation prompt naming the student
func DeleteQuestion(name string) string {
	return fmt.Sprintf("Apakah Anda yakin ingin menghapus data siswa \"%s\"?", name)
}

// NoticeFromCode maps a redirect notice code onto its notification
func NoticeFromCode(code string) *Notice {
	switch code {
	case NoticeCodeCreated:
		return &Notice{Kind: NoticeSuccess, Message: forms.MessageCreated}
	case NoticeCodeDeleted:
		return &Notice{Kind: NoticeSuccess, Message: MessageDeleted}
	default:
		return nil
	}
}

func gradeOptions() []Option {
	opts := make([]Option, 0, len(models.Grades))
	for _, g := range models.Grades {
		opts = append(opts, Option{Value: string(g), Label: "Kelas " + string(g)})
	}
	return opts
}

func majorOptions() []Option {
	opts := make([]Option, 0, len(models.Majors))
	for _, m := range models.Majors {
		opts = append(opts, Option{Value: string(m), Label: models.MajorLabels[m]})
	}
	return opts
}

func genderOptions() []Option {
	opts := make([]Option, 0, len(models.Genders))
	for _, g := range models.Genders {
		opts = append(opts, Option{Value: string(g), Label: string(g)})
	}
	return opts
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"gradeBadge": GradeBadge,
		"majorBadge": MajorBadge,
		"formatDate": helpers.FormatDate,
		"inc":        func(i int) int { return i + 1 },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
