package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ombre/internal/config"
	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run        RunCmd        `cmd:"" help:"Start the ombre TUI (default)" default:"1"`
	Render     RenderCmd     `cmd:"render" help:"Print the CSS for a gradient"`
	Random     RandomCmd     `cmd:"random" help:"Print the CSS for a random gradient"`
	Copy       CopyCmd       `cmd:"copy" help:"Copy the CSS for a gradient to the clipboard"`
	Directions DirectionsCmd `cmd:"directions" help:"List the available gradient directions"`
	Palettes   PalettesCmd   `cmd:"palettes" help:"Manage curated palettes (list, add, del)"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	stderr    io.Writer        `kong:"-"`
	stdout    io.Writer        `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetOutput redirects command output (os.Stdout and os.Stderr when nil)
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

func (c *CLI) out() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

func (c *CLI) errOut() io.Writer {
	if c.stderr == nil {
		return os.Stderr
	}
	return c.stderr
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and the env var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("OMBRE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("OMBRE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}
	logging.Logger.Debug("Command selected", "command", kctx.Command())

	// Container is created after logging so GORM's logger has somewhere to write
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// clipboardMode applies the settings.json clipboard mode when the flag was
// left at its default and OMBRE_CLIPBOARD is unset
func (c *CLI) clipboardMode(flag string) string {
	if flag != config.DefaultClipboard || c.settings == nil || c.settings.Clipboard == "" {
		return flag
	}
	if _, hasEnv := os.LookupEnv("OMBRE_CLIPBOARD"); hasEnv {
		return flag
	}
	return c.settings.Clipboard
}

// RunCmd starts the TUI application
type RunCmd struct {
	Clipboard        string `help:"Clipboard backend" default:"auto" enum:"auto,system,osc52" env:"OMBRE_CLIPBOARD"`
	Curated          bool   `help:"Start with a curated palette instead of random colors" env:"OMBRE_START_CURATED"`
	Dev              bool   `help:"Enable development mode (shows version info in headers)"`
	StatusClearDelay int    `help:"Milliseconds before success messages clear" default:"1800" env:"OMBRE_STATUS_CLEAR_DELAY"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	keysConfig, err := r.prepare(cli.settings)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting ombre TUI")

	state := cli.Container.GradientService.NewState(context.Background())

	clipboardService, err := cli.Container.NewClipboardService(cli.clipboardMode(r.Clipboard), cli.errOut())
	if err != nil {
		return err
	}

	startMode := domain.PaletteRandom
	if r.Curated {
		startMode = domain.PaletteCurated
	}

	logging.Logger.Debug("Initializing Bubble Tea program",
		"start_mode", startMode.String(),
		"status_clear_delay_ms", r.StatusClearDelay)
	p := tea.NewProgram(
		ui.NewModel(state, clipboardService, ui.ModelOptions{
			DevMode:          r.Dev,
			Keys:             keysConfig,
			StartMode:        startMode,
			StatusClearDelay: time.Duration(r.StatusClearDelay) * time.Millisecond,
		}),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// prepare applies settings.json values the flags and env vars left unset,
// validates them and returns the custom key bindings
func (r *RunCmd) prepare(settings *config.Settings) (config.KeyBindingsConfig, error) {
	if settings != nil {
		if !r.Curated {
			if _, hasEnv := os.LookupEnv("OMBRE_START_CURATED"); !hasEnv {
				if settings.StartCurated != nil && *settings.StartCurated {
					r.Curated = true
				}
			}
		}

		if r.StatusClearDelay == config.DefaultStatusClearDelayMs {
			if _, hasEnv := os.LookupEnv("OMBRE_STATUS_CLEAR_DELAY"); !hasEnv {
				if settings.StatusClearDelayMs != nil {
					r.StatusClearDelay = *settings.StatusClearDelayMs
				}
			}
		}
	}
	if r.StatusClearDelay <= 0 {
		return nil, fmt.Errorf("status clear delay must be positive, got %d", r.StatusClearDelay)
	}

	if settings == nil || settings.Keys == nil {
		return nil, nil
	}
	if err := settings.Keys.Validate(ui.GetDefaultKeyBindings()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return settings.Keys, nil
}
