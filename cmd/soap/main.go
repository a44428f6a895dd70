package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/soapkit/pkg/config"
	"github.com/dmitrymomot/soapkit/pkg/file"
	"github.com/dmitrymomot/soapkit/pkg/logger"
	"github.com/dmitrymomot/soapkit/pkg/serialize"
	"github.com/dmitrymomot/soapkit/pkg/soap"
)

const serviceName = "soap"

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
		logger.WithAttr(slog.String("command", args[0])),
	}
	if cfg.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	app := &cli{cfg: cfg, log: log, stdin: stdin, stdout: stdout}
	if err := app.dispatch(ctx, args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
			printUsage(stderr)
			return 2
		}
		log.ErrorContext(ctx, "command failed", logger.Error(err))
		return 1
	}
	return 0
}

type cli struct {
	cfg    *config.Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func (c *cli) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "sanitize", "suggest", "tone", "detect", "grammar", "filter":
		return c.text(ctx, command, args)
	case "pack":
		if len(args) != 1 {
			return fmt.Errorf("%w: pack needs a file path", errUsage)
		}
		return c.pack(ctx, args[0])
	case "unpack":
		if len(args) != 1 {
			return fmt.Errorf("%w: unpack needs a file path", errUsage)
		}
		return c.unpack(ctx, args[0])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (c *cli) text(ctx context.Context, command string, args []string) error {
	var category soap.Category
	switch command {
	case "filter":
		if len(args) != 1 {
			return fmt.Errorf("%w: filter needs a pattern list", errUsage)
		}
	case "detect":
		if len(args) > 1 {
			return fmt.Errorf("%w: detect takes at most one category", errUsage)
		}
		if len(args) == 1 {
			cat, err := soap.ParseCategory(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			category = cat
		}
	}

	input, err := io.ReadAll(c.stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text := string(input)

	switch command {
	case "sanitize", "suggest":
		s, err := c.soap(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(c.stdout, s.Sanitize(text))
		return err
	case "tone":
		s, err := c.soap(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.stdout, s.DetectTone(text))
		return err
	case "detect":
		if category != "" {
			ok, err := soap.Detect(category, text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, ok)
			return err
		}
		for _, cat := range soap.Categories(text) {
			c.log.DebugContext(ctx, "category matched", logger.Category(string(cat)))
			if _, err := fmt.Fprintln(c.stdout, cat); err != nil {
				return err
			}
		}
		return nil
	case "grammar":
		_, err = io.WriteString(c.stdout, soap.CorrectGrammar(text))
		return err
	default:
		_, err = io.WriteString(c.stdout, soap.Filter(args[0], text))
		return err
	}
}

// soap builds a sanitizer from configuration.
func (c *cli) soap(ctx context.Context) (*soap.Soap, error) {
	opts := []soap.Option{
		soap.WithLogger(c.log),
		soap.WithCacheSize(c.cfg.Soap.CacheSize),
	}

	switch path := c.cfg.Soap.Classifier; {
	case path == "":
	case !(file.Disk{}).Exists(ctx, path):
		c.log.WarnContext(ctx, "classifier not found, tone uses phrase signals only", logger.Path(path))
	default:
		classifier, err := soap.LoadClassifier(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, soap.WithClassifier(classifier))
	}

	s := soap.New(opts...)

	if path := c.cfg.Soap.Dictionary; path != "" {
		if err := s.LoadDictionary(ctx, path); err != nil {
			return nil, err
		}
	}
	for _, phrase := range c.cfg.Soap.CustomFilters {
		if strings.TrimSpace(phrase) == "" {
			continue
		}
		if err := s.AddCustomFilter(phrase); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (c *cli) newBuffer() (*serialize.Buffer, error) {
	return serialize.New(c.cfg.Serialize.InitialCapacity,
		serialize.WithMaxCapacity(c.cfg.Serialize.MaxCapacity),
		serialize.WithLogger(c.log),
	)
}

// pack stores stdin lines as a uint32 count followed by length-prefixed strings.
func (c *cli) pack(ctx context.Context, path string) error {
	compression, err := serialize.ParseCompression(c.cfg.Serialize.Compression)
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(c.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), c.cfg.Serialize.MaxCapacity)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	buf, err := c.newBuffer()
	if err != nil {
		return err
	}
	defer buf.Destroy()

	if err := buf.WriteUint32(uint32(len(lines))); err != nil {
		return err
	}
	for _, line := range lines {
		if err := buf.WriteCString(line); err != nil {
			return err
		}
	}

	if err := buf.ToSnapshotFile(path, compression); err != nil {
		return err
	}

	c.log.InfoContext(ctx, "packed lines",
		logger.Path(path),
		logger.Bytes(buf.Len()),
		slog.Int("lines", len(lines)),
		slog.String("compression", compression.String()),
	)
	return nil
}

func (c *cli) unpack(ctx context.Context, path string) error {
	buf, err := c.newBuffer()
	if err != nil {
		return err
	}
	defer buf.Destroy()

	if err := buf.FromSnapshotFile(path); err != nil {
		return err
	}

	offset := 0
	count, err := buf.ReadUint32(&offset)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(c.stdout)
	for i := uint32(0); i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := buf.ReadCString(&offset, buf.Len()+1)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	c.log.DebugContext(ctx, "snapshot unpacked", logger.Path(path), logger.Offset(offset), slog.Int("lines", int(count)))
	return w.Flush()
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: soap <command> [arguments] < input

commands:
  sanitize             rewrite flagged vocabulary
  suggest              same as sanitize
  tone                 print the detected tone
  detect [category]    list detected categories, or test a single one
  grammar              fix common grammar slips
  filter <patterns>    mask words matching comma-separated wildcard patterns
  pack <file>          store input lines in a compressed snapshot
  unpack <file>        print lines stored in a snapshot
`)
}
