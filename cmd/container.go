package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/graphframes/releasekit/internal/config"
	"github.com/graphframes/releasekit/internal/console"
	"github.com/graphframes/releasekit/internal/repository"
	"github.com/graphframes/releasekit/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	fsRepo   repository.FileSystemRepository
	gitRepo  repository.GitRepository
	sbtSvc   service.SbtService
	docsSvc  service.DocsService
	printer  *console.Printer
	prompter console.Prompter
	logger   *zap.Logger
}

// newContainer creates a new container with all the dependencies. It expects
// to run from the repository root.
func newContainer(debug bool) (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	fsRepo := repository.NewOsFileSystem()
	gitRepo, err := repository.NewGitRepository(fsRepo, cfg.GithubToken)
	if err != nil {
		return nil, err
	}
	logger := newLogger(debug).With(zap.String("run_id", uuid.New().String()))
	return &container{
		cfg:      cfg,
		fsRepo:   fsRepo,
		gitRepo:  gitRepo,
		sbtSvc:   service.NewSbtService(fsRepo, cfg.SbtLauncher),
		docsSvc:  service.NewDocsService(fsRepo, cfg.DocsScript),
		printer:  console.NewPrinter(os.Stdout),
		prompter: console.NewTerminalPrompter(os.Stdin, os.Stdout),
		logger:   logger,
	}, nil
}

// newLogger builds a console logger on stderr, keeping stdout for workflow
// output and prompts.
func newLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(NewReleaseCmd())
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
