package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/codelog/internal/buildinfo"
	"github.com/dmitrijs2005/codelog/internal/client/cli"
	"github.com/dmitrijs2005/codelog/internal/client/config"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, flush, err := newLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer flush()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

// newLogger builds the zap console logger, or a slog text logger when
// -log text is given.
func newLogger(cfg *config.Config, w io.Writer) (logging.Logger, func(), error) {
	if cfg.LogFormat == config.LogFormatText {
		l, err := logging.NewTextSlog(w, cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {}, nil
	}

	zl, err := logging.NewConsoleZap(w, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewZapLogger(zl)
	return logger, func() { _ = logger.Sync() }, nil
}
