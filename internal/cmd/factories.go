package cmd

import (
	"fmt"
	"io"

	adapterclipboard "github.com/renato0307/ombre/internal/adapters/clipboard"
	adapterstorage "github.com/renato0307/ombre/internal/adapters/storage"
	"github.com/renato0307/ombre/internal/config"
	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/ports"
	"github.com/renato0307/ombre/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	GradientService *services.GradientService
	PaletteService  *services.PaletteService
}

// NewContainer creates a new Container with all dependencies wired. The
// palette database is opened only when stored palettes are first needed.
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	settingsPalettes, err := settings.CuratedPalettes()
	if err != nil {
		return nil, fmt.Errorf("invalid palettes in settings.json: %w", err)
	}
	directions, err := settings.GradientDirections()
	if err != nil {
		return nil, fmt.Errorf("invalid directions in settings.json: %w", err)
	}

	paletteService := services.NewLazyPaletteService(openPaletteRepository, settingsPalettes)
	gradientService := services.NewGradientService(paletteService, directions, nil)

	return &Container{
		GradientService: gradientService,
		PaletteService:  paletteService,
	}, nil
}

// openPaletteRepository opens the SQLite palette store under $OMBRE_HOME
func openPaletteRepository() (ports.PaletteRepository, error) {
	dbPath := config.GetDBPath()
	logging.Logger.Debug("Opening palette store", "path", dbPath)
	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// NewClipboardService creates a clipboard service for the given backend mode.
// OSC 52 sequences go to out, normally stderr, which stays attached to the
// terminal when stdout is piped.
func (c *Container) NewClipboardService(mode string, out io.Writer) (*services.ClipboardService, error) {
	backend, err := adapterclipboard.New(mode, out)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Clipboard backend selected", "mode", mode, "backend", backend.Name())
	return services.NewClipboardService(backend), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.PaletteService != nil {
		return c.PaletteService.Close()
	}
	return nil
}
