// Package bootstrap wires configuration, logging, dependencies and the router.
package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/siswa/internal/app/controllers"
	"github.com/yigit/siswa/internal/app/repositories"
	"github.com/yigit/siswa/internal/app/routes"
	"github.com/yigit/siswa/internal/app/services"
	"github.com/yigit/siswa/internal/app/views"
	"github.com/yigit/siswa/internal/config"
	"github.com/yigit/siswa/internal/middleware"
	"github.com/yigit/siswa/internal/pkg/logger"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repositories      *repositories.Repositories
	StudentService    *services.StudentService
	StudentController *controllers.StudentController
	PageController    *controllers.PageController
}

// LoadConfigAndSetupLogger reads the configuration and configures the logger from it
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.GetEnv("CONFIG_PATH", config.DefaultConfigPath))
	if err != nil {
		return nil, logger.Get(), fmt.Errorf("failed to load configuration: %w", err)
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("mode", cfg.Server.Mode).
		Str("logLevel", cfg.Logging.Level).
		Msg("Configuration loaded")

	return cfg, lgr, nil
}

// BuildDependencies creates repositories, services and controllers
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger, opts ...repositories.StudentRepositoryOption) *Dependencies {
	repos := repositories.NewRepositories(opts...)
	studentService := services.NewStudentService(repos.StudentRepository, lgr.With().Str("component", "students").Logger())

	return &Dependencies{
		Repositories:      repos,
		StudentService:    studentService,
		StudentController: controllers.NewStudentController(studentService),
		PageController:    controllers.NewPageController(studentService, cfg.App.Title, lgr),
	}
}

// SetupRouter creates the gin engine with middleware, templates and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr), middleware.Recovery())

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	routes.SetupRouter(router, deps.PageController, deps.StudentController)
	return router, nil
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
