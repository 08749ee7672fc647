// brutefile tries every candidate in a wordlist against an encrypted
// target file until one unlocks it, the list runs out, or the target
// turns out to be unusable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"brutefile/internal/config"
	"brutefile/internal/engine"
	"brutefile/internal/format"
	"brutefile/internal/session"
	"brutefile/internal/validator"
	"brutefile/internal/wordlist"
)

const version = "1.0.0"

func versionFunc() {
	fmt.Fprintf(os.Stderr, "brutefile v%s\n", version)
}

func usageFunc() {
	versionFunc()
	str := `Usage:
  brutefile TARGET_FILE WORDLIST_FILE [options]

  TARGET_FILE    encrypted file to attack (kdbx, zip/jar/war, rar, 7z, pdf, docx/xlsx/pptx, ssh key)
  WORDLIST_FILE  newline-delimited candidate list

Options:
  -t NUM        worker threads (0 = single-threaded, default 0)
  -s SEC        stats interval in seconds (default 60)
  -session DIR  journal tried candidates in DIR and skip them on resume
  -config FILE  YAML file with run defaults (flags win)
  -version      print version
  -help         print this help

Examples:
  brutefile secrets.kdbx rockyou.txt
  brutefile backup.zip wordlist.txt -t 8 -s 10`
	fmt.Fprintln(os.Stderr, str)
}

func printWelcomeScreen(target string, kind format.Kind, wordlistFile string, threads int, total int64) {
	fmt.Fprintln(os.Stderr, " ----------- ")
	fmt.Fprintln(os.Stderr, "| brutefile |")
	fmt.Fprintln(os.Stderr, " ----------- ")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Target:\t\t%s\n", target)
	fmt.Fprintf(os.Stderr, "Format:\t\t%s\n", kind)
	fmt.Fprintf(os.Stderr, "Wordlist:\t%s (%d candidates)\n", wordlistFile, total)
	if threads <= 1 {
		fmt.Fprintf(os.Stderr, "Mode:\t\tsingle-threaded\n")
	} else {
		fmt.Fprintf(os.Stderr, "Mode:\t\t%d workers\n", threads)
	}
	fmt.Fprintln(os.Stderr, "Working...")
}

// watch for ctrl+c
func handleGracefulShutdown(stopChan chan struct{}) {
	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interruptChan
		fmt.Fprintln(os.Stderr, "\nInterrupt received. Shutting down...")
		close(stopChan)
	}()
}

func main() {
	os.Exit(run())
}

func run() int {
	threadFlag := flag.Int("t", 0, "worker threads (0 = single-threaded)")
	statsFlag := flag.Int("s", 60, "stats interval in seconds")
	sessionFlag := flag.String("session", "", "session journal directory")
	configFlag := flag.String("config", "", "YAML config file")
	versionFlag := flag.Bool("version", false, "print version")
	helpFlag := flag.Bool("help", false, "print usage")
	flag.Usage = usageFunc
	flag.Parse()

	// options may follow the positional arguments; stdlib flag stops
	// at the first non-flag, so parse the tail again
	args := flag.Args()
	if len(args) > 2 {
		if err := flag.CommandLine.Parse(args[2:]); err != nil {
			return engine.ExitUsage
		}
	}

	if *versionFlag {
		versionFunc()
		return 0
	}
	if *helpFlag {
		usageFunc()
		return 0
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "TARGET_FILE and WORDLIST_FILE are required")
		fmt.Fprintln(os.Stderr, "Try running with -help for usage instructions")
		return engine.ExitUsage
	}
	targetFile, wordlistFile := args[0], args[1]

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			return engine.ExitUsage
		}
	}
	// explicit flags win over config file values
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	threads := cfg.Threads
	if set["t"] {
		threads = *threadFlag
	}
	statsInterval := cfg.StatsInterval
	if set["s"] {
		statsInterval = *statsFlag
	}
	sessionDir := cfg.SessionDir
	if set["session"] {
		sessionDir = *sessionFlag
	}
	if threads < 0 {
		fmt.Fprintln(os.Stderr, "-t must not be negative")
		return engine.ExitUsage
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		return engine.ExitAborted
	}
	log := logger.Sugar()
	defer log.Sync()

	if _, err := os.Stat(targetFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading target file:", err)
		return engine.ExitAborted
	}
	if _, err := os.Stat(wordlistFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading wordlist file:", err)
		return engine.ExitAborted
	}

	kind, err := format.Detect(targetFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error detecting target format:", err)
		return engine.ExitAborted
	}

	var regOpts []validator.Option
	if cfg.OfficeTool != "" {
		regOpts = append(regOpts, validator.WithOfficeTool(cfg.OfficeTool))
	}
	registry := validator.NewRegistry(regOpts...)
	val, err := registry.Resolve(targetFile, kind)
	if err != nil {
		var missing *validator.MissingDependencyError
		switch {
		case errors.Is(err, validator.ErrUnsupportedFormat):
			fmt.Fprintf(os.Stderr, "Unsupported target format for %s\n", targetFile)
		case errors.As(err, &missing):
			fmt.Fprintln(os.Stderr, "Missing dependency:", missing)
		default:
			fmt.Fprintln(os.Stderr, "Error preparing target:", err)
		}
		return engine.ExitAborted
	}

	total, err := wordlist.Count(wordlistFile)
	if err != nil {
		total = 0
	}
	src, err := wordlist.Open(wordlistFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening wordlist file:", err)
		return engine.ExitAborted
	}
	defer src.Close()

	opts := engine.Options{
		Workers:       threads,
		StatsInterval: time.Duration(statsInterval) * time.Second,
		Total:         total,
		Log:           log,
	}

	if sessionDir != "" {
		journal, err := session.Open(sessionDir, session.TargetID(targetFile))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening session journal:", err)
			return engine.ExitAborted
		}
		defer journal.Close()
		log.Infow("session journal open", "dir", sessionDir, "id", journal.ID())
		opts.Skip = journal.Tried
		opts.Mark = func(candidate string) {
			if err := journal.MarkTried(candidate); err != nil {
				log.Warnw("journal write failed", "error", err)
			}
		}
	}

	stopChan := make(chan struct{})
	handleGracefulShutdown(stopChan)
	opts.Interrupt = stopChan

	printWelcomeScreen(targetFile, kind, wordlistFile, threads, total)

	out := engine.Run(src, val, opts)
	return engine.Report(os.Stdout, targetFile, out)
}
