package dto

import "github.com/yigit/siswa/internal/app/models"

// CreateStudentRequest represents student creation data. Presence of the
// required fields is checked by the create form, not by binding.
type CreateStudentRequest = models.StudentData

// StudentListResponse represents a (possibly filtered) list of students
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	Total    int               `json:"total"`
	Matched  int               `json:"matched"`
	Search   string            `json:"search,omitempty"`
}

// StudentSummary holds the counts shown on the statistics cards
type StudentSummary struct {
	Total          int            `json:"total" example:"2"`
	Male           int            `json:"male" example:"1"`
	Female         int            `json:"female" example:"1"`
	DistinctMajors int            `json:"distinctMajors" example:"1"`
	ByGrade        map[string]int `json:"byGrade"`
	ByMajor        map[string]int `json:"byMajor"`
}
