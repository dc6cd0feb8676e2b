// Command inputguard runs the input-hygiene checks over lines read from stdin.
//
// Usage:
//
//	inputguard -field address < addresses.txt
//	inputguard -field email -mask email -json < emails.jsonl
//	inputguard -id 5
//
// Each input line produces one output line with the sanitized value, the
// verdict, the rendered error message and whether malicious content was
// found. With -json, input lines are JSON values (non-strings count as
// empty input) and results are written as JSON objects.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shiptrack/inputguard/pkg/config"
	"github.com/shiptrack/inputguard/pkg/hygiene"
	"github.com/shiptrack/inputguard/pkg/logger"
	"github.com/shiptrack/inputguard/pkg/messages"
	"github.com/shiptrack/inputguard/pkg/validator"
)

const serviceName = "inputguard"

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
	Language string `env:"INPUTGUARD_LANG" envDefault:"en"`
}

type options struct {
	field    hygiene.Field
	mask     hygiene.Kind
	json     bool
	idCount  int
	language string
}

// result is one output line.
type result struct {
	Sanitized string `json:"sanitized"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Malicious bool   `json:"malicious"`
	Masked    string `json:"masked,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var appCfg appConfig
	if err := config.Load(&appCfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	guardCfg, err := hygiene.LoadConfig()
	if err != nil {
		return fmt.Errorf("load guard config: %w", err)
	}

	opts, err := parseFlags(args, stderr, appCfg.Language)
	if err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, serviceName),
		logger.WithOutput(stderr),
		logger.WithRedactedKeys("password", "raw", "input", "value"),
	}
	if appCfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(logger.ParseLevel(appCfg.LogLevel, slog.LevelInfo)))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	guard := hygiene.NewFromConfig(guardCfg, hygiene.WithLogger(log))

	if opts.idCount > 0 {
		for range opts.idCount {
			if _, err := fmt.Fprintln(stdout, guard.NewID()); err != nil {
				return err
			}
		}
		return nil
	}

	catalog, err := messages.New(ctx, messages.WithLogger(log))
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	opts.language = catalog.Match(opts.language)

	return process(ctx, opts, guard, catalog, stdin, stdout)
}

func parseFlags(args []string, output io.Writer, defaultLang string) (options, error) {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s -field <kind> [-mask phone|email] [-json] < input\n", serviceName)
		fmt.Fprintf(fs.Output(), "       %s -id <count>\n\n", serviceName)
		fs.PrintDefaults()
	}

	var (
		field string
		mask  string
		opts  options
	)
	fs.StringVar(&field, "field", "", "field kind: address, description, notes, shipment_id, phone or email")
	fs.StringVar(&mask, "mask", "", "also print the value masked as phone or email")
	fs.BoolVar(&opts.json, "json", false, "read JSON values and write JSON results")
	fs.IntVar(&opts.idCount, "id", 0, "print this many random identifiers and exit")
	fs.StringVar(&opts.language, "lang", defaultLang, "language for error messages")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.idCount > 0 {
		return opts, nil
	}

	f, ok := hygiene.ParseField(field)
	if !ok {
		fs.Usage()
		return options{}, fmt.Errorf("unknown field %q", field)
	}
	opts.field = f

	switch hygiene.Kind(strings.ToLower(mask)) {
	case "":
	case hygiene.KindPhone:
		opts.mask = hygiene.KindPhone
	case hygiene.KindEmail:
		opts.mask = hygiene.KindEmail
	default:
		return options{}, fmt.Errorf("unknown mask kind %q", mask)
	}

	return opts, nil
}

func process(ctx context.Context, opts options, guard *hygiene.Guard, catalog *messages.Catalog, stdin io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	enc := json.NewEncoder(w)

	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw := scanner.Text()
		if opts.json {
			raw = decodeValue(raw)
		}

		res := check(ctx, opts, guard, catalog, raw)

		var err error
		if opts.json {
			err = enc.Encode(res)
		} else {
			err = writeText(w, res)
		}
		if err != nil {
			return fmt.Errorf("write line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return w.Flush()
}

func check(ctx context.Context, opts options, guard *hygiene.Guard, catalog *messages.Catalog, raw string) result {
	clean, err := guard.Check(ctx, string(opts.field), opts.field, raw)
	res := result{
		Sanitized: clean,
		Valid:     err == nil,
		Malicious: errors.Is(err, hygiene.ErrMaliciousContent),
	}
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		res.Error = catalog.Render(opts.language, errs[0])
	} else if err != nil {
		res.Error = err.Error()
	}
	if opts.mask != "" && !res.Malicious {
		res.Masked = guard.Mask(clean, opts.mask)
	}
	return res
}

// decodeValue turns a JSON line into the string to check. Anything that is
// not a JSON string, including null, numbers and malformed lines, is empty.
func decodeValue(line string) string {
	var s string
	if err := json.Unmarshal([]byte(line), &s); err != nil {
		return ""
	}
	return s
}

func writeText(w io.Writer, res result) error {
	verdict := "valid"
	if !res.Valid {
		verdict = "invalid"
	}

	parts := []string{verdict, res.Sanitized}
	if res.Masked != "" {
		parts = append(parts, res.Masked)
	}
	if res.Error != "" {
		parts = append(parts, res.Error)
	}
	if res.Malicious {
		parts = append(parts, "malicious")
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "\t"))
	return err
}
