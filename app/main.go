package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/msg-guard/app/webapi"
	"github.com/umputun/msg-guard/lib/filter"
	"github.com/umputun/msg-guard/lib/guard"
	"github.com/umputun/msg-guard/lib/spamcheck"
)

type options struct {
	Sender string `long:"sender" env:"SENDER" description:"message sender, phone number, shortcode or email address"`
	Body   string `long:"body" env:"BODY" description:"message body"`
	Batch  string `long:"batch" env:"BATCH" description:"file with json lines of {\"sender\",\"body\"} to check, - for stdin"`

	Shortcode struct {
		MinDigits int `long:"min-digits" env:"MIN_DIGITS" default:"4" description:"min digits in a shortcode sender"`
		MaxDigits int `long:"max-digits" env:"MAX_DIGITS" default:"6" description:"max digits in a shortcode sender"`
	} `group:"shortcode" namespace:"shortcode" env-namespace:"SHORTCODE"`

	Server struct {
		Enabled    bool    `long:"enabled" env:"ENABLED" description:"enable web server"`
		ListenAddr string  `long:"listen" env:"LISTEN" default:"127.0.0.1:8080" description:"listen address"`
		AuthPasswd string  `long:"auth" env:"AUTH" default:"" description:"basic auth password for user 'msg-guard'"`
		Rate       float64 `long:"rate" env:"RATE" default:"10" description:"max requests per second per client"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable rotated log file"`
		FileName   string `long:"file" env:"FILE" default:"msg-guard.log" description:"location of log file"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Fprintf(os.Stderr, "msg-guard %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var ferr *flags.Error
		if !errors.As(err, &ferr) || ferr.Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	logWriter, err := makeLogWriter(opts)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	setupLog(opts.Dbg, io.MultiWriter(os.Stderr, logWriter), opts.Server.AuthPasswd)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	err = execute(ctx, opts)
	if cerr := logWriter.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "can't close log file: %v\n", cerr)
	}
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// execute runs one of the modes: web server, batch check or a single message check
func execute(ctx context.Context, opts options) error {
	engine, err := guard.New(guard.Config{Shortcode: guard.ShortcodeConfig{
		MinDigits: opts.Shortcode.MinDigits, MaxDigits: opts.Shortcode.MaxDigits}})
	if err != nil {
		return fmt.Errorf("can't make guard engine: %w", err)
	}

	switch {
	case opts.Server.Enabled:
		srv := webapi.NewServer(webapi.Config{
			Version:    revision,
			ListenAddr: opts.Server.ListenAddr,
			Detector:   engine,
			SpamFilter: filter.New(engine),
			AuthPasswd: opts.Server.AuthPasswd,
			RateLimit:  opts.Server.Rate,
			Dbg:        opts.Dbg,
		})
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case opts.Batch != "":
		return checkBatch(ctx, engine, opts.Batch)
	case opts.Sender != "" || opts.Body != "":
		analyze(engine, spamcheck.Message{Sender: opts.Sender, Body: opts.Body})
		return nil
	default:
		return errors.New("nothing to check, set --sender and --body, --batch or --server.enabled")
	}
}

// analyze checks a message with all rules and prints the verdict with reasons
func analyze(engine *guard.Engine, msg spamcheck.Message) {
	res := engine.Evaluate(msg)
	log.Printf("[DEBUG] %s: %s", msg.String(), res.String())
	if !res.Spam() {
		_, _ = color.New(color.FgGreen).Fprintln(os.Stdout, res.Verdict())
		return
	}
	_, _ = color.New(color.FgHiRed, color.Bold).Fprintln(os.Stdout, res.Verdict())
	fmt.Fprintln(os.Stdout, res.Explanation())
}

// batchResult is a single line of batch output
type batchResult struct {
	Line     int              `json:"line"`
	Spam     bool             `json:"spam"`
	Action   filter.Action    `json:"action"`
	Findings spamcheck.Result `json:"findings"`
	Error    string           `json:"error,omitempty"`
}

// checkBatch reads json lines of filter queries from a file (or stdin for "-") and writes a json line
// with the result for each of them. Malformed lines are reported and skipped.
func checkBatch(ctx context.Context, engine *guard.Engine, fileName string) error {
	in := io.Reader(os.Stdin)
	if fileName != "-" {
		fh, err := os.Open(fileName) //nolint:gosec // file name from cli
		if err != nil {
			return fmt.Errorf("can't open batch file: %w", err)
		}
		defer fh.Close()
		in = fh
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum, total, blocked, failed := 0, 0, 0, 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch check interrupted: %w", err)
		}
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++
		res := batchResult{Line: lineNum, Action: filter.ActionNone, Findings: spamcheck.Result{}}
		var q filter.Query
		if err := json.Unmarshal([]byte(line), &q); err != nil {
			res.Error = fmt.Sprintf("can't decode query: %v", err)
			failed++
		} else if msg, ok := q.Message(); ok {
			res.Findings = engine.Evaluate(msg)
			res.Spam = res.Findings.Spam()
			if res.Spam {
				res.Action = filter.ActionJunk
				blocked++
			}
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("can't write result for line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("can't read batch: %w", err)
	}
	log.Printf("[INFO] checked %d messages, blocked %d, malformed %d", total, blocked, failed)
	return nil
}

// makeLogWriter creates rotated log file writer, discards everything if disabled
func makeLogWriter(opts options) (io.WriteCloser, error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	maxSize, err := parseSize(opts.Logger.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("can't parse logger max size: %w", err)
	}
	maxSize /= 1048576

	log.Printf("[INFO] logger enabled for %s, max size %dM", opts.Logger.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    int(maxSize), // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

// parseSize parses size with optional k, m, g or t suffix, e.g. "100M"
func parseSize(inp string) (uint64, error) {
	if inp == "" {
		return 0, errors.New("empty value")
	}
	for i, sfx := range []string{"k", "m", "g", "t"} {
		if strings.HasSuffix(strings.ToLower(inp), sfx) {
			val, err := strconv.Atoi(inp[:len(inp)-1])
			if err != nil {
				return 0, fmt.Errorf("can't parse %s: %w", inp, err)
			}
			return uint64(float64(val) * math.Pow(1024, float64(i+1))), nil
		}
	}
	return strconv.ParseUint(inp, 10, 64)
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, out io.Writer, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError, lgr.Out(out), lgr.Err(out)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError,
			lgr.Out(out), lgr.Err(out)}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets = lo.Compact(secrets)
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
