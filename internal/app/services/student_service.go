package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/siswa/internal/app/models"
	"github.com/yigit/siswa/internal/app/models/dto"
	"github.com/yigit/siswa/internal/app/repositories"
	"github.com/yigit/siswa/internal/pkg/apperrors"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// CreateStudent stores a payload that has already passed form validation
func (s *StudentService) CreateStudent(ctx context.Context, data models.StudentData) (*models.Student, error) {
	student := s.studentRepo.Add(ctx, data)
	s.logger.Debug().Str("studentId", student.ID).Str("nis", student.NIS).Msg("Student added")
	return student, nil
}

// DeleteStudent removes a student by ID. Unknown IDs are ignored.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) {
	if s.studentRepo.Remove(ctx, id) {
		s.logger.Debug().Str("studentId", id).Msg("Student deleted")
		return
	}
	s.logger.Debug().Str("studentId", id).Msg("Delete ignored, student not found")
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.studentRepo.Get(ctx, id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// GetAllStudents returns every student in insertion order
func (s *StudentService) GetAllStudents(ctx context.Context) []*models.Student {
	return s.studentRepo.List(ctx)
}

// SearchStudents returns the students matching term, see FilterStudents
func (s *StudentService) SearchStudents(ctx context.Context, term string) []*models.Student {
	return FilterStudents(s.studentRepo.List(ctx), term)
}

// GetSummary computes the statistics over all students
func (s *StudentService) GetSummary(ctx context.Context) dto.StudentSummary {
	return Summarize(s.studentRepo.List(ctx))
}

// FilterStudents keeps the students whose name, NIS, grade or major contains
// term, ignoring case. An empty term keeps everyone. Order is preserved.
func FilterStudents(students []*models.Student, term string) []*models.Student {
	if term == "" {
		return students
	}

	needle := strings.ToLower(term)
	filtered := make([]*models.Student, 0, len(students))
	for _, student := range students {
		if matches(student, needle) {
			filtered = append(filtered, student)
		}
	}
	return filtered
}

func matches(student *models.Student, needle string) bool {
	for _, field := range []string{student.Name, student.NIS, student.Grade, student.Major} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Summarize counts students overall, by gender, grade and major
func Summarize(students []*models.Student) dto.StudentSummary {
	summary := dto.StudentSummary{
		Total:   len(students),
		ByGrade: make(map[string]int),
		ByMajor: make(map[string]int),
	}

	for _, student := range students {
		switch student.Gender {
		case models.GenderMale:
			summary.Male++
		case models.GenderFemale:
			summary.Female++
		}
		summary.ByGrade[student.Grade]++
		summary.ByMajor[student.Major]++
	}

	summary.DistinctMajors = len(summary.ByMajor)
	return summary
}
