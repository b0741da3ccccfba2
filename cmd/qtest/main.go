// Command qtest runs queue commands read from a script file or from
// standard input. Run the help command within a script for a list of
// queue commands.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"deedles.dev/ringq"
	"deedles.dev/ringq/internal/console"
)

var cmdSet *subcmd.CommandSet

type runFlags struct {
	Script   string `subcmd:"f,,read commands from this file instead of stdin"`
	Verbose  bool   `subcmd:"v,false,log every command"`
	Capacity int    `subcmd:"capacity,0,maximum number of live nodes or 0 for unlimited"`
	MaxBytes int    `subcmd:"max-bytes,0,maximum number of value bytes or 0 for unlimited"`
}

func init() {
	runFlagSet := subcmd.NewFlagSet()
	runFlagSet.MustRegisterFlagStruct(&runFlags{}, nil, nil)

	runCmd := subcmd.NewCommand("run", runFlagSet, run, subcmd.WithoutArguments())
	runCmd.Document("run queue commands from a script or stdin")

	cmdSet = subcmd.NewCommandSet(runCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

var stdout io.Writer = os.Stdout

func run(ctx context.Context, values any, args []string) error {
	fv := values.(*runFlags)

	level := slog.LevelInfo
	if fv.Verbose {
		level = slog.LevelDebug
	}
	ctx = ctxlog.Context(ctx, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	var in io.Reader = os.Stdin
	if fv.Script != "" {
		file, err := os.Open(fv.Script)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	log := ctxlog.Logger(ctx)
	c := console.New(console.Config{
		Out: stdout,
		Log: log,
		Store: []ringq.Option{
			ringq.WithCapacity(fv.Capacity),
			ringq.WithMaxBytes(fv.MaxBytes),
		},
	})
	defer func() {
		c.Close()
		if live := c.Store().Live(); live != 0 {
			log.Warn("nodes still allocated", "live", live)
		}
	}()

	if err := c.Run(ctx, in); err != nil {
		return fmt.Errorf("%v: %w", fv.Script, err)
	}
	return nil
}
