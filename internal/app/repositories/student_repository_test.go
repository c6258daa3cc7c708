package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/siswa/internal/app/models"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func studentData(name, nis string) models.StudentData {
	return models.StudentData{
		Name:   name,
		NIS:    nis,
		Grade:  "X",
		Major:  "IPA",
		Gender: models.GenderFemale,
	}
}

func names(students []*models.Student) []string {
	out := make([]string, 0, len(students))
	for _, s := range students {
		out = append(out, s.Name)
	}
	return out
}

func TestStudentRepository_Add(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)
	repo := NewStudentRepository(WithIDGenerator(sequentialIDs()), WithClock(func() time.Time { return fixed }))

	first := repo.Add(ctx, studentData("Ana", "001"))
	second := repo.Add(ctx, studentData("Budi", "002"))

	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "id-2", second.ID)
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Equal(t, "Ana", first.Name)
	assert.Equal(t, []string{"Ana", "Budi"}, names(repo.List(ctx)))
	assert.Len(t, repo.List(ctx), 2)
}

func TestStudentRepository_AddDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	before := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		student := repo.Add(ctx, studentData("Siswa", "001"))
		require.NotEmpty(t, student.ID)
		require.False(t, seen[student.ID], "duplicate id %s", student.ID)
		seen[student.ID] = true
		assert.False(t, student.CreatedAt.Before(before))
	}
	assert.Len(t, repo.List(ctx), 200)
}

func TestStudentRepository_AddDoesNotValidate(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	student := repo.Add(ctx, models.StudentData{})

	assert.NotEmpty(t, student.ID)
	assert.Len(t, repo.List(ctx), 1)
}

func TestStudentRepository_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the matching record", func(t *testing.T) {
		repo := NewStudentRepository(WithIDGenerator(sequentialIDs()))
		repo.Add(ctx, studentData("Ana", "001"))
		repo.Add(ctx, studentData("Budi", "002"))
		repo.Add(ctx, studentData("Citra", "003"))

		assert.True(t, repo.Remove(ctx, "id-2"))
		assert.Equal(t, []string{"Ana", "Citra"}, names(repo.List(ctx)))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		repo := NewStudentRepository(WithIDGenerator(sequentialIDs()))
		repo.Add(ctx, studentData("Ana", "001"))
		repo.Add(ctx, studentData("Budi", "002"))

		assert.False(t, repo.Remove(ctx, "missing"))
		assert.Equal(t, []string{"Ana", "Budi"}, names(repo.List(ctx)))
	})

	t.Run("removing from a list snapshot does not alias", func(t *testing.T) {
		repo := NewStudentRepository(WithIDGenerator(sequentialIDs()))
		repo.Add(ctx, studentData("Ana", "001"))
		repo.Add(ctx, studentData("Budi", "002"))
		snapshot := repo.List(ctx)

		repo.Remove(ctx, "id-1")

		assert.Equal(t, []string{"Ana", "Budi"}, names(snapshot))
		assert.Equal(t, []string{"Budi"}, names(repo.List(ctx)))
	})
}

func TestStudentRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(WithIDGenerator(sequentialIDs()))
	repo.Add(ctx, studentData("Ana", "001"))

	student, ok := repo.Get(ctx, "id-1")
	require.True(t, ok)
	assert.Equal(t, "Ana", student.Name)

	student.Name = "changed"
	again, _ := repo.Get(ctx, "id-1")
	assert.Equal(t, "Ana", again.Name)

	_, ok = repo.Get(ctx, "id-9")
	assert.False(t, ok)
}

func TestStudentRepository_DuplicateNISAllowed(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	repo.Add(ctx, studentData("Ana", "001"))
	repo.Add(ctx, studentData("Ani", "001"))

	assert.Len(t, repo.List(ctx), 2)
}
