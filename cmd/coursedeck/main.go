package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"coursedeck/internal/config"
	"coursedeck/internal/course"
	"coursedeck/internal/log"
	"coursedeck/internal/session"
	"coursedeck/internal/trace"
	"coursedeck/internal/ui"
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:           "coursedeck",
		Short:         "Browse and manage courses from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.ReadFile(v, configFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logOut, err := log.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: logOut,
	})

	tp, err := trace.Setup(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "error", err)
		}
	}()

	store, err := sessionStore(cfg.SessionFile)
	if err != nil {
		return err
	}
	sess, err := store.Load()
	if err != nil {
		return err
	}
	logger.Info("starting",
		"api_url", cfg.APIURL,
		"role", sess.Role.String(),
		"has_token", sess.HasToken(),
		"tracing", tp.Enabled(),
	)

	client := course.NewClient(cfg.APIURL,
		course.WithTimeout(cfg.RequestTimeout),
		course.WithTracerProvider(tp.TracerProvider()),
	)

	model := ui.NewAppModel(ui.Deps{
		Context:       ctx,
		Service:       client,
		Session:       sess,
		Logger:        logger,
		ToastDuration: cfg.ToastDuration,
	}).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func sessionStore(path string) (*session.Store, error) {
	if path != "" {
		return session.NewStoreAt(path), nil
	}
	return session.NewStore()
}
