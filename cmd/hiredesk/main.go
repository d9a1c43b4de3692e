package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hiredesk/cmd/hiredesk/chat"
	"hiredesk/internal/backend"
	"hiredesk/internal/config"
	"hiredesk/internal/directory"
	"hiredesk/internal/intent"
	"hiredesk/internal/logging"
)

var (
	// Global flags
	verbose   bool
	workspace string
	timeout   time.Duration

	// Logger for non-interactive commands
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hiredesk",
	Short: "hiredesk - AI assistant for recruitment workflows",
	Long: `hiredesk is a terminal AI assistant for recruiters.

It keeps a directory of candidates and companies, lets you bind one as the
conversation context, and generates emails, CV analyses, interview questions,
and job descriptions through the configured LLM backend.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive chat owns the screen; keep zap off for it.
		if cmd.Use == "hiredesk" && cmd.CalledAs() == "hiredesk" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question without the chat interface",
	Long: `Routes one question through the intent router and prints the answer.
No entity context is bound; context-sensitive commands need the chat UI.

Example:
  hiredesk ask "job description for a backend engineer position"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty directory with sample candidates and companies",
	RunE:  runSeed,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hiredesk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hiredesk 0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Request timeout")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace defaults the workspace flag to the current directory.
func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	return os.Getwd()
}

// setup loads config, initializes categorized logging, and opens the
// directory database. Shared by all commands.
func setup(ctx context.Context) (*config.Config, *directory.Store, error) {
	ws, err := resolveWorkspace()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}

	cfg, err := config.Load(ws)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Initialize(ws, cfg.Logging.Settings()); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Boot("hiredesk starting: workspace=%s provider=%s", ws, cfg.LLM.Provider)

	dbPath := cfg.Directory.DatabasePath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(ws, dbPath)
	}
	store, err := directory.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open directory: %w", err)
	}
	if err := store.Seed(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to seed directory: %w", err)
	}
	return cfg, store, nil
}

func runChat() error {
	ctx := context.Background()
	cfg, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	defer logging.CloseAll()

	ws, _ := resolveWorkspace()

	model, err := chat.New(cfg, ws, store)
	if err != nil {
		return fmt.Errorf("failed to build chat model: %w", err)
	}

	// Hot-reload logging settings when config.yaml changes under the UI.
	watcher, err := config.NewWatcher(ws, func(updated *config.Config) {
		if err := logging.Initialize(ws, updated.Logging.Settings()); err != nil {
			logging.Config("reload: logging re-init failed: %v", err)
		}
		logging.Config("config reloaded")
	})
	if err == nil {
		if startErr := watcher.Start(); startErr != nil {
			logging.Config("config watcher start failed: %v", startErr)
		} else {
			defer watcher.Stop()
		}
	} else {
		logging.Config("config watcher unavailable: %v", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat interface failed: %w", err)
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	cfg, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	defer logging.CloseAll()

	question := joinArgs(args)
	logger.Info("Routing question", zap.String("input", question))

	client, err := backend.NewClientFromConfig(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("no AI backend available: %w", err)
	}
	router := intent.NewRouter(backend.NewService(client))

	resp, err := router.Respond(ctx, question, nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	fmt.Println(resp.Content)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	defer logging.CloseAll()

	candidates, companies, err := store.Counts(ctx)
	if err != nil {
		return err
	}
	logger.Info("Directory ready",
		zap.Int("candidates", candidates),
		zap.Int("companies", companies))
	fmt.Printf("Directory ready: %d candidates, %d companies\n", candidates, companies)
	return nil
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}
