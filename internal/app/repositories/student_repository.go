package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/siswa/internal/app/models"
)

// StudentRepository keeps student records in memory in insertion order.
// Records live for the lifetime of the process only.
type StudentRepository struct {
	mu       sync.RWMutex
	students []*models.Student
	newID    func() string
	now      func() time.Time
}

// StudentRepositoryOption customises a StudentRepository
type StudentRepositoryOption func(*StudentRepository)

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(gen func() string) StudentRepositoryOption {
	return func(r *StudentRepository) {
		r.newID = gen
	}
}

// WithClock replaces the clock used for creation timestamps
func WithClock(now func() time.Time) StudentRepositoryOption {
	return func(r *StudentRepository) {
		r.now = now
	}
}

// NewStudentRepository creates an empty student repository
func NewStudentRepository(opts ...StudentRepositoryOption) *StudentRepository {
	r := &StudentRepository{
		students: make([]*models.Student, 0),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a new record built from data. The caller is responsible for
// validating data beforehand.
func (r *StudentRepository) Add(ctx context.Context, data models.StudentData) *models.Student {
	student := &models.Student{
		ID:          r.newID(),
		StudentData: data,
		CreatedAt:   r.now(),
	}

	r.mu.Lock()
	r.students = append(r.students, student)
	r.mu.Unlock()

	return clone(student)
}

// Remove deletes the record with the given ID and reports whether one existed.
func (r *StudentRepository) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, student := range r.students {
		if student.ID == id {
			r.students = append(r.students[:i:i], r.students[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record with the given ID
func (r *StudentRepository) Get(ctx context.Context, id string) (*models.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, student := range r.students {
		if student.ID == id {
			return clone(student), true
		}
	}
	return nil, false
}

// List returns a snapshot of all records in insertion order
func (r *StudentRepository) List(ctx context.Context) []*models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]*models.Student, 0, len(r.students))
	for _, student := range r.students {
		students = append(students, clone(student))
	}
	return students
}

func clone(student *models.Student) *models.Student {
	cp := *student
	return &cp
}
