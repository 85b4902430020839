package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cartrest "github.com/dwikikusuma/storefront/internal/cart/rest"
	catalogrest "github.com/dwikikusuma/storefront/internal/catalog/rest"
	"github.com/dwikikusuma/storefront/internal/session"
	"github.com/dwikikusuma/storefront/internal/storefront/app"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/notice"
)

type env struct {
	cfg  config.Config
	log  *slog.Logger
	sess session.Store
	svc  *app.Service
}

func newEnv() *env {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  "text",
		Out:     os.Stderr,
	})

	svc := app.NewService(
		catalogrest.NewClient(cfg.Endpoint, cfg.HTTPTimeout),
		cartrest.NewClient(cfg.Endpoint, cfg.HTTPTimeout),
		notice.NewLog(log),
		log,
		cfg.SearchDebounce,
	)

	return &env{
		cfg:  cfg,
		log:  log,
		sess: session.NewFileStore(sessionPath()),
		svc:  svc,
	}
}

func (e *env) token() string {
	return e.sess.Get(session.KeyToken)
}

func sessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "storefront", "session.json")
}

func newRootCmd() *cobra.Command {
	e := newEnv()

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront client for the shopping backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.svc.Close()
		},
	}

	root.AddCommand(
		newLoginCmd(e),
		newLogoutCmd(e),
		newProductsCmd(e),
		newCartCmd(e),
	)
	return root
}
