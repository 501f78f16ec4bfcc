package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/packrat-tools/packrat/internal/logger"
	"github.com/packrat-tools/packrat/pkg/archive"
	"github.com/packrat-tools/packrat/pkg/cache"
	"github.com/packrat-tools/packrat/pkg/config"
	"github.com/packrat-tools/packrat/pkg/download"
	"github.com/packrat-tools/packrat/pkg/editor"
	"github.com/packrat-tools/packrat/pkg/inspect"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/orchestrator"
	"github.com/packrat-tools/packrat/pkg/project"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// These variables are set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
)

// downloadTimeout bounds a single archive fetch. Asset archives can be large,
// so this is generous.
const downloadTimeout = 30 * time.Minute

// appState is the registry and policy state loaded at the start of a command
// and passed explicitly into the orchestrator.
type appState struct {
	cfg        *config.Config
	configPath string
	store      *registry.Store
	packages   []*model.Package
	licenses   []*model.License
}

// loadState reads the configuration and registry documents fresh, as every
// command does.
func loadState() (*appState, error) {
	var (
		cfg     *config.Config
		cfgPath string
		err     error
	)
	if ConfigPath != nil && *ConfigPath != "" {
		cfgPath = *ConfigPath
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, cfgPath, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level)

	store, err := registry.NewDefaultStore()
	if err != nil {
		return nil, err
	}
	packages, err := store.LoadPackages()
	if err != nil {
		return nil, err
	}
	licenses, err := store.LoadLicenses()
	if err != nil {
		return nil, err
	}

	return &appState{
		cfg:        cfg,
		configPath: cfgPath,
		store:      store,
		packages:   packages,
		licenses:   licenses,
	}, nil
}

// newCacheManager builds the archive cache from the configured or default
// directory.
func newCacheManager(st *appState) (*cache.DefaultManager, error) {
	dl := download.NewManager(downloadTimeout, "")
	if st.cfg.CacheDir != "" {
		return cache.NewManager(st.cfg.CacheDir, dl), nil
	}
	return cache.NewDefaultManager(dl)
}

// newOrchestrator wires the loaded state and the real collaborators together.
func newOrchestrator(st *appState) (*orchestrator.Orchestrator, error) {
	cm, err := newCacheManager(st)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		st.packages,
		st.licenses,
		st.cfg.LicenseMode,
		cm,
		archive.NewManager(),
		editor.NewDetector(),
		inspect.NewInspector(),
		stdinConfirm,
		progressEvents(),
	), nil
}

// saveIfDirty persists registry mutations made by the orchestrator (the
// engine-level removal resolution).
func saveIfDirty(st *appState, orch *orchestrator.Orchestrator) error {
	if !orch.RegistryDirty {
		return nil
	}
	return st.store.SavePackages(orch.Packages)
}

// resolveProject locates the project root from the --project flag or the
// current directory.
func resolveProject(flagValue string) (string, error) {
	start := flagValue
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = wd
	}
	return project.FindRoot(start)
}

// stdinConfirm asks a yes/no question on the terminal. An empty answer
// resolves to the default.
func stdinConfirm(message string, defaultYes bool) bool {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}
	fmt.Printf("%s %s ", message, suffix)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return defaultYes
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

// progressEvents prints orchestrator events in a simple human-friendly form.
func progressEvents() orchestrator.EventHooks {
	return orchestrator.EventHooks{OnEvent: func(e orchestrator.Event) {
		switch {
		case e.ID != "" && e.Msg != "":
			fmt.Printf("%s: %s (%s)\n", e.Phase, e.Msg, e.ID)
		case e.Msg != "":
			fmt.Printf("%s: %s\n", e.Phase, e.Msg)
		default:
			fmt.Printf("%s\n", e.Phase)
		}
	}}
}
