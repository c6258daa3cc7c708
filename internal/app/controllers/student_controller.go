package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/siswa/internal/app/forms"
	"github.com/yigit/siswa/internal/app/models/dto"
	"github.com/yigit/siswa/internal/app/services"
	"github.com/yigit/siswa/internal/middleware"
)

// StudentController serves the student JSON API
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Validates the payload like the create form does and stores a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form := forms.NewStudentForm()
	form.Fill(req)

	student, err := form.Submit(ctx.Request.Context(), c.studentService.CreateStudent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, forms.MessageCreated))
}

// GetAllStudents lists students, optionally filtered
// @Summary List students
// @Description Lists students in insertion order. The search term is matched case-insensitively against name, NIS, grade and major.
// @Tags students
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	search := ctx.Query("search")
	all := c.studentService.GetAllStudents(ctx.Request.Context())
	matched := services.FilterStudents(all, search)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.StudentListResponse{
			Students: matched,
			Total:    len(all),
			Matched:  len(matched),
			Search:   search,
		},
		Timestamp: time.Now(),
	})
}

// GetStudentByID returns a single student
// @Summary Get a student
// @Description Returns the student with the given ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student by ID. Deleting an unknown ID succeeds without effect.
// @Tags students
// @Param id path string true "Student ID"
// @Success 204 "Student deleted successfully"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}

// GetStudentSummary returns the statistics cards data
// @Summary Student statistics
// @Description Total students, students per gender, distinct majors, and per-grade and per-major counts
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentSummary} "Summary computed successfully"
// @Router /students/stats [get]
func (c *StudentController) GetStudentSummary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      c.studentService.GetSummary(ctx.Request.Context()),
		Timestamp: time.Now(),
	})
}
