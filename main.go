package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/hobby-tracker/internal/catalog"
	"github.com/ytget/hobby-tracker/internal/config"
	"github.com/ytget/hobby-tracker/internal/tracker"
	"github.com/ytget/hobby-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.hobby-tracker"
	AppName = "Hobby Tracker"

	WindowWidth  = 420
	WindowHeight = 720
)

// launchOptions holds the command line overrides
type launchOptions struct {
	language    string
	theme       string
	catalogPath string
}

var options launchOptions

var rootCmd = &cobra.Command{
	Use:     "hobby-tracker",
	Short:   "Keep a list of your hobbies",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(options)
	},
}

func init() {
	rootCmd.Flags().StringVar(&options.language, "lang", "", "interface language: system, en, ru or pt")
	rootCmd.Flags().StringVar(&options.theme, "theme", "", "color theme: system, light or dark")
	rootCmd.Flags().StringVar(&options.catalogPath, "catalog", "", "YAML file with the seed hobbies and emoji palette")
}

func main() {
	// Log version information
	log.Printf("%s v%s starting...", AppName, version)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

// run starts the application and blocks until the window is closed
func run(opts launchOptions) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	cat, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	applyOverrides(settings, opts)

	myApp.Settings().SetTheme(ui.NewHobbyTheme(settings.GetThemeMode()))

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	store := tracker.NewServiceFromCatalog(cat)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, store, cat.PaletteCopy(), settings)
	myWindow.SetOnClosed(rootUI.Close)

	// Show and run
	myWindow.ShowAndRun()
	return nil
}

// validateOptions rejects unknown flag values before any window is created
func validateOptions(opts launchOptions) error {
	if opts.language != "" {
		if _, ok := config.LanguageOptions()[opts.language]; !ok {
			return fmt.Errorf("unknown language %q", opts.language)
		}
	}

	if opts.theme != "" && !config.ThemeMode(opts.theme).Valid() {
		return fmt.Errorf("unknown theme %q", opts.theme)
	}

	return nil
}

// loadCatalog returns the built-in catalog, or the one at path when set
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded catalog from %s: %d seed hobbies, %d emoji", path, len(c.Seed), len(c.Palette))
	return c, nil
}

// applyOverrides stores the flag values as preferences
func applyOverrides(settings *config.Settings, opts launchOptions) {
	if opts.language != "" {
		settings.SetLanguage(opts.language)
	}
	if opts.theme != "" {
		settings.SetThemeMode(config.ThemeMode(opts.theme))
	}
}
