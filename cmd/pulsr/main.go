package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pulsr-app/pulsr/internal/cli"
	"github.com/pulsr-app/pulsr/internal/db"
	"github.com/pulsr-app/pulsr/internal/intelligence"
	"github.com/pulsr-app/pulsr/internal/llm"
	"github.com/pulsr-app/pulsr/internal/questionnaire"
	"github.com/pulsr-app/pulsr/internal/repository"
	"github.com/pulsr-app/pulsr/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulsr/pulsr.db
	dbPath := os.Getenv("PULSR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulsr", "pulsr.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)

	// Wire unit of work for transactional onboarding writes
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the generation provider. When disabled the pillar service falls
	// back to deterministic template content, so the client stays nil.
	llmCfg := llm.LoadConfig()
	var llmClient llm.LLMClient
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewChatClient(llmCfg, observer)
	}
	pillars := intelligence.NewPillarService(llmCfg, llmClient)

	// Wire services
	auditSink := service.NewAuditSink(auditRepo, os.Stderr)
	app := &cli.App{
		Personalization: service.NewPersonalizationService(profileRepo, pillars, auditSink),
		Profiles:        service.NewProfileService(profileRepo, uow, questionnaire.DefaultBank()),
		Audit:           service.NewAuditService(auditRepo),
	}

	// Detect interactive terminal for the onboarding wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
