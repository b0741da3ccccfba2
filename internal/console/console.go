// Package console implements a line-oriented command interpreter that
// drives a chain of queues. It is used by the qtest command and by
// scripted tests.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"deedles.dev/ringq"
)

// ErrQuit is returned by [Console.Exec] when the quit command is run.
var ErrQuit = errors.New("quit")

// Config configures a Console.
type Config struct {
	// Out receives the console's output. It defaults to io.Discard.
	Out io.Writer

	// Log receives diagnostics. It defaults to slog.Default.
	Log *slog.Logger

	// Store holds options for the console's store.
	Store []ringq.Option
}

// Console holds the state of an interpreter session: a store, the
// chain of queues created with the new command, and the currently
// selected queue.
type Console struct {
	out   io.Writer
	log   *slog.Logger
	store *ringq.Store
	chain ringq.Chain
	cur   *ringq.Context

	cmds map[string]command
}

type command struct {
	args int
	run  func(c *Console, args []string) error
	help string
}

// New returns a new Console with no queues.
func New(cfg Config) *Console {
	c := Console{
		out: cfg.Out,
		log: cfg.Log,
	}
	if c.out == nil {
		c.out = io.Discard
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.store = ringq.NewStore(append([]ringq.Option{ringq.WithLogger(c.log)}, cfg.Store...)...)
	c.cmds = commands()
	return &c
}

// Store returns the store backing the console's queues.
func (c *Console) Store() *ringq.Store {
	return c.store
}

// Current returns the currently selected queue, or nil if there is
// none.
func (c *Console) Current() *ringq.Queue {
	if c.cur == nil {
		return nil
	}
	return c.cur.Queue()
}

// Run executes every line read from r until r is exhausted, the quit
// command is run, or ctx is canceled. Failing commands are logged to
// the console's logger, annotated with their line number, and counted;
// Run returns an error describing how many failed.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	ctx = ctxlog.Context(ctx, c.log)

	var failed int
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.Exec(s.Text())
		if errors.Is(err, ErrQuit) {
			break
		}
		if err != nil {
			lctx := ctxlog.ContextWith(ctx, "line", line)
			ctxlog.Logger(lctx).Error("command failed", "cmd", s.Text(), "err", err)
			failed++
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%v commands failed", failed)
	}
	return nil
}

// Exec runs a single command line. Blank lines and lines starting with
// # are ignored.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, ok := c.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) < cmd.args {
		return fmt.Errorf("%v: expected at least %v arguments, got %v", name, cmd.args, len(args))
	}

	c.log.Debug("exec", "cmd", name, "args", args)
	return cmd.run(c, args)
}

// Close frees every queue created by the console.
func (c *Console) Close() {
	c.chain.Free()
	c.cur = nil
}

func (c *Console) queue() (*ringq.Queue, error) {
	if c.cur == nil {
		return nil, errors.New("no queue, run new first")
	}
	return c.cur.Queue(), nil
}

func (c *Console) show() error {
	q, err := c.queue()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("l = [")
	var n int
	for v := range q.Values() {
		if n > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v)
		n++
	}
	sb.WriteString("]\n")

	_, err = io.WriteString(c.out, sb.String())
	return err
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func count(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", args[i], err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid count %v", n)
	}
	return n, nil
}
