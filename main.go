package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-imsto/webpopt/config"
	iimg "github.com/go-imsto/webpopt/image"
	zlog "github.com/go-imsto/webpopt/log"
	"github.com/go-imsto/webpopt/optim"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if settings.InDevelop {
		logger, _ = zap.NewDevelopment()
		logger.Debug("logger start")
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync() // flushes buffer, if any
	zlog.Set(logger.Sugar())

	root, err := settings.Root()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	wopt := iimg.WriteOption{MaxWidth: settings.MaxWidth, Quality: settings.Quality}
	if _, err = optim.Run(root, wopt, os.Stdout); err != nil {
		zlog.Errorw("run fail", "root", root, "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
