package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/dNmmer/SortFiles/internal/cli"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	"github.com/dNmmer/SortFiles/internal/presentation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		exitWithError(err)
	}
}

func exitWithError(err error) {
	printer := presentation.Printer{
		Writer: os.Stderr,
		Color:  os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stderr.Fd()),
	}
	printer.PrintError(appErrors.UserMessage(err))
	os.Exit(1)
}
