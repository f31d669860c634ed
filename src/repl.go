package ppl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// REPL color codes
const (
	replColorGreen = "\x1b[32m"
	replColorReset = "\x1b[0m"
)

// Session runs a program that grows one line at a time. Lines are appended to
// the program and executed immediately; IF may jump back to earlier lines.
type Session struct {
	engine *Engine
	done   bool
}

// NewSession creates an empty session on ip
func (ip *Interpreter) NewSession() *Session {
	return &Session{engine: ip.NewEngine(nil)}
}

// Engine returns the session's engine
func (s *Session) Engine() *Engine {
	return s.engine
}

// Done reports whether the session ended through HLT or an exit command
func (s *Session) Done() bool {
	return s.done
}

// Feed appends line to the program and runs until more input is needed.
// A fault is reported and the session carries on with the next line.
func (s *Session) Feed(line string) Outcome {
	if s.done {
		return s.engine.Outcome()
	}
	s.engine.AppendLine(line)
	outcome := s.engine.Continue()
	switch outcome.Status {
	case StatusFaulted:
		s.engine.Recover()
	case StatusHalted:
		s.done = true
	}
	return outcome
}

// Close ends the session and writes the final state
func (s *Session) Close() {
	s.done = true
	s.engine.WriteFinalState()
}

// REPLConfig configures the REPL behavior
type REPLConfig struct {
	HistoryFile string // empty uses ~/.ppl/history
	Color       bool
	ShowBanner  bool
	Banner      string
}

// REPL provides an interactive line editor over a Session
type REPL struct {
	ip      *Interpreter
	session *Session
	config  REPLConfig
	rl      *readline.Instance
}

// NewREPL creates a REPL reading from the terminal
func NewREPL(ip *Interpreter, config REPLConfig) (*REPL, error) {
	if config.HistoryFile == "" {
		config.HistoryFile = defaultHistoryFile()
	}
	r := &REPL{
		ip:      ip,
		session: ip.NewSession(),
		config:  config,
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.prompt(),
		HistoryFile:       config.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("repl: %w", err)
	}
	r.rl = rl
	return r, nil
}

// defaultHistoryFile returns ~/.ppl/history, or "" when there is no home directory
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".ppl")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

func (r *REPL) prompt() string {
	line := r.session.Engine().Len() + 1
	if r.config.Color {
		return fmt.Sprintf("%s%3d>%s ", replColorGreen, line, replColorReset)
	}
	return fmt.Sprintf("%3d> ", line)
}

// Session returns the session the REPL feeds
func (r *REPL) Session() *Session {
	return r.session
}

// Run reads lines until exit, EOF or HLT, then writes the final state
func (r *REPL) Run() error {
	defer r.rl.Close()

	if r.config.ShowBanner && r.config.Banner != "" {
		fmt.Fprintln(r.rl.Stdout(), r.config.Banner)
	}

	for !r.session.Done() {
		r.rl.SetPrompt(r.prompt())
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("repl: %w", err)
		}

		if isExitCommand(line) {
			break
		}
		r.session.Feed(line)
	}

	r.session.Close()
	return nil
}

// isExitCommand matches the words that leave the REPL
func isExitCommand(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	return lower == "exit" || lower == "quit"
}
