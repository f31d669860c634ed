package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phroun/ppl"
)

var version = "dev" // set via -ldflags at build time

// ANSI color codes for terminal output
const (
	colorYellow = "\x1b[93m" // Bright yellow foreground
	colorReset  = "\x1b[0m"  // Reset to default
)

// cli carries the process streams so the command can run under test
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	color  bool
}

// errorPrintf prints an error message to stderr, using color if supported
func (c *cli) errorPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if c.color {
		fmt.Fprintf(c.stderr, "%s%s%s", colorYellow, message, colorReset)
	} else {
		fmt.Fprint(c.stderr, message)
	}
}

// errorPrintf for code that has no cli at hand
func errorPrintf(format string, args ...interface{}) {
	(&cli{stderr: os.Stderr, color: ppl.WriterSupportsColor(os.Stderr)}).errorPrintf(format, args...)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, color: ppl.WriterSupportsColor(stderr)}

	flags := flag.NewFlagSet("ppl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { showUsage(stderr) }

	licenseFlag := flags.Bool("license", false, "Show license")
	debugFlag := flags.Bool("debug", false, "Enable debug output")
	flags.BoolVar(debugFlag, "d", false, "Enable debug output (short)")
	traceFlag := flags.Bool("trace", false, "Log every executed line")
	interactiveFlag := flags.Bool("i", false, "Interactive session")
	watchFlag := flags.Bool("watch", false, "Re-run the program whenever the file changes")
	configFlag := flags.String("config", getConfigFilePath(), "Config file")
	colorFlag := flags.String("color", "", "Colored error output: auto, always, never")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *licenseFlag {
		showLicense(stdout)
		return 0
	}

	cfg, err := loadCLIConfig(*configFlag)
	if err != nil {
		c.errorPrintf("Warning: %v (using defaults)\n", err)
		cfg = defaultCLIConfig()
	}

	// Flags given on the command line override the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug", "d":
			cfg.Debug = *debugFlag
		case "trace":
			cfg.Trace = *traceFlag
		case "color":
			cfg.Color = *colorFlag
		}
	})
	if err := cfg.validate(); err != nil {
		c.errorPrintf("Error: %v\n", err)
		return 2
	}
	switch cfg.Color {
	case "always":
		c.color = true
	case "never":
		c.color = false
	}

	newInterpreter := func(filename string) *ppl.Interpreter {
		ip := ppl.New(&ppl.Config{
			Debug:         cfg.Debug,
			Trace:         cfg.Trace,
			LogCategories: parseCategories(cfg.LogCategories),
			Stdout:        stdout,
			Stderr:        stderr,
			Filename:      filename,
		})
		ip.Logger().SetColor(c.color)
		return ip
	}

	if *interactiveFlag {
		return c.runInteractive(newInterpreter("<stdin>"), cfg)
	}

	if flags.NArg() != 1 {
		showUsage(stderr)
		return 2
	}
	path := flags.Arg(0)

	if *watchFlag {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ip := newInterpreter(path)
		first := true
		err := watchAndRun(ctx, path, func(content string) {
			if !first {
				fmt.Fprintf(stdout, "\n=== %s changed, re-running ===\n", path)
			}
			first = false
			ip.ExecuteFile(content, path)
		})
		if err != nil {
			c.errorPrintf("Error: %v\n", err)
			return 1
		}
		return 0
	}

	content, err := os.ReadFile(path)
	if err != nil {
		c.errorPrintf("Error: file not found: %s\n", path)
		return 1
	}

	// A runtime fault is part of the program's output, not a process failure
	newInterpreter(path).ExecuteFile(string(content), path)
	return 0
}

// runInteractive starts the line editor on a terminal, or feeds piped stdin
// line by line through a session otherwise
func (c *cli) runInteractive(ip *ppl.Interpreter, cfg CLIConfig) int {
	if f, ok := c.stdin.(*os.File); ok && f == os.Stdin && ppl.IsTerminal() {
		repl, err := ppl.NewREPL(ip, ppl.REPLConfig{
			HistoryFile: cfg.HistoryFile,
			Color:       c.color,
			ShowBanner:  true,
			Banner:      fmt.Sprintf("ppl %s, interactive mode. Type 'exit' or 'quit' to leave.", version),
		})
		if err != nil {
			c.errorPrintf("Error: %v\n", err)
			return 1
		}
		if err := repl.Run(); err != nil {
			c.errorPrintf("Error: %v\n", err)
			return 1
		}
		return 0
	}

	session := ip.NewSession()
	scanner := bufio.NewScanner(c.stdin)
	for !session.Done() && scanner.Scan() {
		line := scanner.Text()
		lower := strings.ToLower(strings.TrimSpace(line))
		if lower == "exit" || lower == "quit" {
			break
		}
		session.Feed(line)
	}
	session.Close()
	if err := scanner.Err(); err != nil {
		c.errorPrintf("Error reading input: %v\n", err)
		return 1
	}
	return 0
}

// parseCategories converts config names to log categories, ignoring unknown ones
func parseCategories(names []string) []ppl.LogCategory {
	known := make(map[string]ppl.LogCategory)
	for _, cat := range ppl.AllLogCategories() {
		known[string(cat)] = cat
	}
	var cats []ppl.LogCategory
	for _, name := range names {
		if cat, ok := known[strings.ToLower(strings.TrimSpace(name))]; ok {
			cats = append(cats, cat)
		}
	}
	return cats
}

func showLicense(w io.Writer) {
	fmt.Fprintf(w, "ppl, the PPL interpreter version %s", version)
	license := `

MIT License

Copyright (c) 2025 Jeffrey R. Day

Permission is hereby granted, free of charge, to any person
obtaining a copy of this software and associated documentation
files (the "Software"), to deal in the Software without
restriction, including without limitation the rights to use,
copy, modify, merge, publish, distribute, sublicense, and/or
sell copies of the Software, and to permit persons to whom the
Software is furnished to do so, subject to the following
conditions:

The above copyright notice and this permission notice
(including the next paragraph) shall be included in all copies
or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
OTHER DEALINGS IN THE SOFTWARE.
`
	fmt.Fprint(w, license)
}

func showUsage(w io.Writer) {
	usage := `Usage: ppl [options] program.ppl
       ppl -i [options]

Run a PPL program.

Options:
  --license           View license and exit
  -d, -debug          Enable debug output
  -trace              Log every executed line
  -i                  Interactive session (reads stdin line by line when piped)
  -watch              Re-run the program whenever the file changes
  -config FILE        Config file (default ~/.ppl/config.yaml)
  -color MODE         Colored error output: auto, always, never

Examples:
  ppl examples/countdown.ppl
  ppl -trace examples/lists.ppl
  ppl -watch work.ppl
`
	fmt.Fprint(w, usage)
}
