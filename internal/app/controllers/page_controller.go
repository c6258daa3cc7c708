package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/siswa/internal/app/forms"
	"github.com/yigit/siswa/internal/app/services"
	"github.com/yigit/siswa/internal/app/views"
)

// PageController serves the server-rendered student pages
type PageController struct {
	studentService *services.StudentService
	title          string
	logger         zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(studentService *services.StudentService, title string, logger zerolog.Logger) *PageController {
	return &PageController{
		studentService: studentService,
		title:          title,
		logger:         logger,
	}
}

// indexPage builds the main page for the current store and search term
func (c *PageController) indexPage(ctx *gin.Context, search string) *views.IndexPage {
	reqCtx := ctx.Request.Context()
	return views.NewIndexPage(
		c.title,
		c.studentService.GetSummary(reqCtx),
		c.studentService.SearchStudents(reqCtx, search),
		search,
	)
}

// Index renders the statistics, the create form and the student table
func (c *PageController) Index(ctx *gin.Context) {
	page := c.indexPage(ctx, ctx.Query("q"))
	page.Notice = views.NoticeFromCode(ctx.Query("notice"))
	ctx.HTML(http.StatusOK, views.IndexTemplate, page)
}

// CreateStudent handles the create form submission. A failed validation
// re-renders the page with the user's draft intact.
func (c *PageController) CreateStudent(ctx *gin.Context) {
	form := forms.NewStudentForm()
	for _, field := range forms.Fields {
		if value, ok := ctx.GetPostForm(field); ok {
			// Fields come from forms.Fields, Set cannot reject them.
			_ = form.Set(field, value)
		}
	}

	_, err := form.Submit(ctx.Request.Context(), c.studentService.CreateStudent)
	if err != nil {
		var validationErr *forms.ValidationError
		if !errors.As(err, &validationErr) {
			c.logger.Error().Err(err).Msg("Failed to create student from form")
			ctx.String(http.StatusInternalServerError, "internal server error")
			return
		}

		page := c.indexPage(ctx, "")
		page.Draft = form.Draft()
		page.WithFieldErrors(validationErr.Fields)
		page.Notice = &views.Notice{Kind: views.NoticeError, Message: forms.MessageValidationFailed}
		ctx.HTML(http.StatusUnprocessableEntity, views.IndexTemplate, page)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/?notice="+views.NoticeCodeCreated)
}

// ConfirmDelete asks the user whether the named student should be deleted
func (c *PageController) ConfirmDelete(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.HTML(http.StatusNotFound, views.NotFoundTemplate, gin.H{"Title": c.title})
		return
	}

	ctx.HTML(http.StatusOK, views.ConfirmDeleteTemplate, views.NewConfirmDeletePage(c.title, student))
}

// DeleteStudent deletes the student when the prompt was answered with yes
func (c *PageController) DeleteStudent(ctx *gin.Context) {
	if ctx.PostForm("confirm") != "yes" {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id"))

	query := url.Values{"notice": {views.NoticeCodeDeleted}}
	ctx.Redirect(http.StatusSeeOther, "/?"+query.Encode())
}
