// Package cli は社員名簿のコマンドラインインターフェースです。
// 各コマンドはサービスの Result をそのまま表示し、失敗した Result は ErrOperationFailed として返します。
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"github.com/ogurasousui/codex-employee-roster/internal/platform/app"
	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
	"github.com/ogurasousui/codex-employee-roster/internal/platform/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ConfigEnv は --config 未指定時に参照する環境変数です。
const ConfigEnv = "ROSTER_CONFIG"

// ErrOperationFailed はメッセージ表示済みの失敗を表します。
var ErrOperationFailed = errors.New("cli: operation failed")

// Exporter は書き出し操作の抽象化です。
type Exporter interface {
	ToCSV(ctx context.Context, path string) employee.Result[string]
	ToExcel(ctx context.Context, path string) employee.Result[string]
	ToPDF(ctx context.Context, path string) employee.Result[string]
}

// Session は 1 回のコマンド実行で使うサービス群です。
type Session struct {
	Records employee.UseCase
	Exports Exporter
	Close   func() error
}

// Opener は設定から Session を開きます。
type Opener func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Session, error)

// Options はルートコマンドの依存関係です。未設定の項目は既定の実装を使います。
type Options struct {
	Open      Opener
	NewLogger func(config.LoggingConfig) (*zap.Logger, error)
}

// OpenApp は app.Open を使う既定の Opener です。
func OpenApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Session, error) {
	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Session{Records: a.Records, Exports: a.Exports, Close: a.Close}, nil
}

type runner struct {
	opts       Options
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

// Execute はルートコマンドを args で実行します。
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) error {
	root, r := newRoot(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if r.logger != nil {
		_ = r.logger.Sync()
	}
	return err
}

func newRoot(opts Options) (*cobra.Command, *runner) {
	if opts.Open == nil {
		opts.Open = OpenApp
	}
	if opts.NewLogger == nil {
		opts.NewLogger = logging.New
	}

	r := &runner{opts: opts}

	defaultConfig := os.Getenv(ConfigEnv)
	if defaultConfig == "" {
		defaultConfig = config.DefaultPath
	}

	root := &cobra.Command{
		Use:           "roster",
		Short:         "Manage a local roster of employee records",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.prepare()
		},
	}
	root.PersistentFlags().StringVar(&r.configPath, "config", defaultConfig, "path to settings file (env "+ConfigEnv+")")

	root.AddCommand(
		r.newAddCommand(),
		r.newListCommand(),
		r.newGetCommand(),
		r.newUpdateCommand(),
		r.newDeleteCommand(),
		r.newExportCommand(),
		r.newConfigCommand(),
	)

	return root, r
}

// prepare は設定とロガーを用意します。設定ファイルが壊れていても既定値で続行します。
func (r *runner) prepare() error {
	cfg, loadErr := config.Load(r.configPath)
	r.cfg = cfg

	logger, err := r.opts.NewLogger(cfg.Logging)
	if err != nil {
		// 壊れた logging 設定は既定値に戻す。まず出力先を残したままレベルだけを戻す
		logErr := err
		fallback := cfg.Logging
		fallback.Level = config.DefaultLogLevel
		if logger, err = r.opts.NewLogger(fallback); err != nil {
			fallback = config.Default().Logging
			if logger, err = r.opts.NewLogger(fallback); err != nil {
				return fmt.Errorf("cli: build logger: %w", err)
			}
		}
		cfg.Logging = fallback
		logger.Warn("logging settings ignored, using defaults", zap.Error(logErr))
	}
	r.logger = logger

	if loadErr != nil {
		r.logger.Warn("settings file ignored, using defaults", zap.String("path", r.configPath), zap.Error(loadErr))
	}
	return nil
}

func (r *runner) withSession(cmd *cobra.Command, fn func(*Session) error) error {
	s, err := r.opts.Open(cmd.Context(), r.cfg, r.logger)
	if err != nil {
		return err
	}
	defer func() {
		if s.Close == nil {
			return
		}
		if cerr := s.Close(); cerr != nil {
			r.logger.Warn("close store", zap.Error(cerr))
		}
	}()
	return fn(s)
}

// report は Result のメッセージを表示し、失敗なら ErrOperationFailed を返します。
func report(cmd *cobra.Command, ok bool, message string) error {
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), message)
		return ErrOperationFailed
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
