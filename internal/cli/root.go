// =============================
// File: internal/cli/root.go
// =============================
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/assetmath/internal/config"
	"github.com/rovshanmuradov/assetmath/internal/utils/logger"
)

// App держит общие зависимости команд
type App struct {
	cfg *config.Config
	log *logger.Logger

	configPath string
	debug      bool
	args       []string
}

// Option настраивает App до запуска команды
type Option func(*App)

// WithLogger подставляет готовый логгер вместо создаваемого из конфигурации
func WithLogger(l *logger.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithConfig подставляет готовую конфигурацию вместо --config
func WithConfig(cfg *config.Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithArgs задает аргументы вместо os.Args
func WithArgs(args ...string) Option {
	return func(a *App) { a.args = args }
}

// Execute запускает assetmath и сбрасывает логгер даже если команда завершилась ошибкой
func Execute(opts ...Option) error {
	app := newApp(opts...)
	err := app.rootCommand().Execute()
	if app.log != nil {
		_ = app.log.Sync()
	}
	return err
}

// NewRootCommand собирает дерево команд assetmath
func NewRootCommand(opts ...Option) *cobra.Command {
	return newApp(opts...).rootCommand()
}

func newApp(opts ...Option) *App {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "assetmath",
		Short:         "Fixed-point token amounts, pair ordering and string splitting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to config file (json, yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	if a.args != nil {
		root.SetArgs(a.args)
	}

	root.AddCommand(
		newDecimalCommand(a),
		newFixedCommand(a),
		newSortCommand(a),
		newSplitCommand(a),
	)

	return root
}

func (a *App) init() error {
	if a.cfg == nil {
		var err error
		if a.configPath != "" {
			a.cfg, err = config.LoadConfig(a.configPath)
		} else {
			a.cfg, err = config.Default()
		}
		if err != nil {
			return err
		}
	}

	if a.log == nil {
		logCfg := logger.DefaultConfig()
		logCfg.LogFile = a.cfg.LogFile
		logCfg.MaxSize = a.cfg.LogMaxSize
		logCfg.MaxBackups = a.cfg.LogMaxBackups
		logCfg.Development = a.debug || a.cfg.DebugLogging
		// ошибки команд печатает main, в консоль пишем только в debug-режиме
		logCfg.Quiet = !logCfg.Development

		l, err := logger.New(logCfg)
		if err != nil {
			return err
		}
		a.log = l
	}

	a.component("config").Debug("Configuration loaded",
		zap.String("config", a.configPath),
		zap.String("default_symbol", a.cfg.Symbol().String()),
		zap.String("delimiter", a.cfg.Delimiter))
	return nil
}

// component возвращает логгер команды с полем component
func (a *App) component(name string) *zap.Logger {
	return a.log.WithComponent("cli." + name)
}
