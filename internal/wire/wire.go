// Package wire provides dependency injection for the autocrud application.
// Configure is called once by the root command; services are then created
// lazily as singletons.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	cliadapter "github.com/example/autocrud/internal/adapters/cli"
	"github.com/example/autocrud/internal/adapters/database"
	"github.com/example/autocrud/internal/adapters/filesystem"
	"github.com/example/autocrud/internal/adapters/terminal"
	"github.com/example/autocrud/internal/app"
	"github.com/example/autocrud/internal/config"
	"github.com/example/autocrud/internal/db"
	"github.com/example/autocrud/internal/logging"
	"github.com/example/autocrud/internal/ports/primary"
	"github.com/example/autocrud/internal/ports/secondary"
	"github.com/example/autocrud/internal/scaffold"
)

// Options are the invocation-wide settings taken from global flags.
type Options struct {
	ProjectDir      string // Laravel project root; defaults to the working directory
	ModelsPath      string // Overrides the configured models path when set
	ModelsNamespace string // Overrides the configured models namespace when set
	Verbose         bool
	In              io.Reader
	Out             io.Writer
}

var (
	opts Options

	logger           *logging.Logger
	conn             *sql.DB
	stubSource       *filesystem.StubSource
	discoveryService primary.DiscoveryService
	generateService  primary.GenerateService
	initErr          error
	once             sync.Once
)

// Configure sets the invocation options. It must be called before any service is requested.
func Configure(o Options) {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	opts = o
}

// ProjectDir returns the absolute project root.
func ProjectDir() (string, error) {
	dir := opts.ProjectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Abs(dir)
}

// Logger returns the diagnostic logger of this run.
func Logger() *logging.Logger {
	once.Do(initServices)
	if logger == nil {
		return logging.Discard()
	}
	return logger
}

// DiscoveryService returns the singleton DiscoveryService instance.
func DiscoveryService() (primary.DiscoveryService, error) {
	once.Do(initServices)
	return discoveryService, initErr
}

// GenerateService returns the singleton GenerateService instance.
func GenerateService() (primary.GenerateService, error) {
	once.Do(initServices)
	return generateService, initErr
}

// StubSource returns the stub source with the project's override directory.
func StubSource() (*filesystem.StubSource, error) {
	once.Do(initServices)
	return stubSource, initErr
}

// GenerateAdapter returns a new GenerateAdapter writing to the configured output.
func GenerateAdapter() (*cliadapter.GenerateAdapter, error) {
	service, err := GenerateService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewGenerateAdapter(service, opts.Out, opts.Verbose), nil
}

// ModelsAdapter returns a new ModelsAdapter writing to the configured output.
func ModelsAdapter() (*cliadapter.ModelsAdapter, error) {
	service, err := DiscoveryService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewModelsAdapter(service, opts.Out), nil
}

// Close releases the database connection, if one was opened.
func Close() error {
	if conn != nil {
		return conn.Close()
	}
	return nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = logging.New(os.Stderr, logging.Level(opts.Verbose))

	dir, err := ProjectDir()
	if err != nil {
		initErr = err
		return
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		initErr = err
		return
	}
	cfg.Apply(config.Config{
		ModelsPath:      opts.ModelsPath,
		ModelsNamespace: opts.ModelsNamespace,
	})
	models := cfg.ModelContext()
	logger.Debug("configuration loaded", "project", dir, "models_path", models.ModelsPath, "models_namespace", models.ModelsNamespace)

	// A missing or unreachable database only fails the run at preflight,
	// so --skip-validation keeps working without one.
	inspector := openSchemaInspector(dir)

	prompter := terminal.NewPrompter(opts.In, opts.Out)
	catalog := filesystem.NewModelCatalog(config.Resolve(dir, models.ModelsPath))
	discovery := app.NewDiscoveryService(models, catalog, prompter, cfg.ModelBases...)

	stubSource = filesystem.NewStubSource(config.Resolve(dir, cfg.StubsPath))
	gen := scaffold.NewGenerator(
		scaffold.Layout{AppPath: cfg.AppPath, AppNamespace: cfg.AppNamespace},
		models,
		stubSource,
		filesystem.NewArtifactWriter(dir),
	)

	discoveryService = discovery
	generateService = app.NewGenerateService(
		models,
		discovery,
		app.NewCRUDGenerator(gen),
		inspector,
		filesystem.NewComposerProbe(dir),
		prompter,
		logger,
	)
}

func openSchemaInspector(dir string) secondary.SchemaInspector {
	settings, err := config.LoadDatabase(dir)
	if err != nil {
		return database.Unavailable{Err: err}
	}

	c, dialect, err := db.Open(settings)
	if err != nil {
		return database.Unavailable{Err: err}
	}

	inspector, err := database.NewSchemaInspector(c, dialect)
	if err != nil {
		c.Close()
		return database.Unavailable{Err: err}
	}

	conn = c
	logger.Debug("database configured", "connection", settings.Connection, "dialect", dialect)
	return inspector
}
