package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-numwords"
	"github.com/goliatone/go-numwords/internal/app"
	"github.com/goliatone/go-numwords/internal/config"
)

var errConversionFailed = errors.New("one or more inputs could not be converted")

type cliOptions struct {
	configPath string
	locale     string
	currency   string
	year       bool
	era        bool
	round      bool
	decimal    string
	negative   string
	separator  string
	fallback   string
	list       bool
	echo       bool
	files      listFlag
	inputs     []string
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "numwords: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("numwords", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to YAML config (defaults to $NUMWORDS_CONFIG)")
	fs.StringVar(&opts.locale, "locale", "", "locale to spell in (defaults to the configured locale)")
	fs.StringVar(&opts.currency, "currency", "", "spell as an amount of this ISO 4217 currency; \"default\" uses the locale currency")
	fs.BoolVar(&opts.year, "year", false, "read values as calendar years")
	fs.BoolVar(&opts.era, "era", false, "add the after-era marker to positive years")
	fs.BoolVar(&opts.round, "round", false, "round currency sub units half up instead of truncating")
	fs.StringVar(&opts.decimal, "decimal", "", "decimal separator word: point or comma (defaults to the locale style)")
	fs.StringVar(&opts.negative, "negative", "", "word used for negative values")
	fs.StringVar(&opts.separator, "separator", "", "text between main and sub currency units")
	fs.StringVar(&opts.fallback, "fallback", "", "text printed for inputs that cannot be converted")
	fs.BoolVar(&opts.list, "list", false, "list available locales and exit")
	fs.BoolVar(&opts.echo, "echo", false, "print the locale formatted digits before the words")
	fs.Var(&opts.files, "locale-file", "YAML or JSON rule set file. Repeat flag or separate with commas to add more.")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if opts.year && opts.currency != "" {
		return cliOptions{}, errors.New("-year and -currency are mutually exclusive")
	}
	switch opts.decimal {
	case "", "point", "comma":
	default:
		return cliOptions{}, fmt.Errorf("unknown -decimal %q", opts.decimal)
	}
	opts.inputs = fs.Args()
	return opts, nil
}

func (o cliOptions) formatOptions() []numwords.FormatOption {
	var opts []numwords.FormatOption
	switch {
	case o.year:
		opts = append(opts, numwords.AsYear())
	case o.currency == "default":
		opts = append(opts, numwords.AsCurrency(""))
	case o.currency != "":
		opts = append(opts, numwords.AsCurrency(o.currency))
	}
	if o.era {
		opts = append(opts, numwords.WithEra())
	}
	if o.round {
		opts = append(opts, numwords.WithRoundedSubunit())
	}
	switch o.decimal {
	case "point":
		opts = append(opts, numwords.WithDecimalStyle(numwords.DecimalPoint))
	case "comma":
		opts = append(opts, numwords.WithDecimalStyle(numwords.DecimalComma))
	}
	if o.negative != "" {
		opts = append(opts, numwords.WithNegativePrefix(o.negative))
	}
	if o.separator != "" {
		opts = append(opts, numwords.WithCurrencySeparator(o.separator))
	}
	if o.fallback != "" {
		opts = append(opts, numwords.FallbackOnError(o.fallback))
	}
	return opts
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log, stderr)

	locale := opts.locale
	if locale == "" {
		locale = cfg.Locale.Default
	}

	engine, err := numwords.New(
		numwords.WithDefaultLocale(locale),
		numwords.WithLocaleFiles(append(cfg.Locale.Files, opts.files.items...)...),
		numwords.WithFallbackText(cfg.Locale.FallbackText),
		numwords.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if opts.list {
		for _, code := range engine.Locales() {
			rs, err := engine.RuleSet(code)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s\t%s\n", code, rs.Name)
		}
		return nil
	}

	inputs := opts.inputs
	if len(inputs) == 0 {
		if inputs, err = readLines(stdin); err != nil {
			return err
		}
	}
	logger.Debug("converting", slog.String("locale", locale), slog.Int("inputs", len(inputs)))

	results, err := app.Convert(ctx, engine, locale, inputs, cfg.Batch.Workers, opts.formatOptions()...)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn("conversion failed", slog.String("input", r.Input), slog.Any("error", r.Err))
		}
		if opts.echo {
			fmt.Fprintf(stdout, "%s\t%s\n", app.Digits(locale, r.Input), r.Text)
			continue
		}
		fmt.Fprintln(stdout, r.Text)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errConversionFailed, failed, len(results))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
