// Package shell is the terminal read/print loop around the session
// controller. It owns the blocking input boundary, the typewriter
// output animation, and the final history flush on termination.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/parley-chat/parley/internal/history"
	"github.com/parley-chat/parley/internal/session"
)

const banner = "Chatbot with Sentiment Analysis — type 'history' to see your chat, 'clear' to reset, or 'exit' to leave"

// Shell drives the interactive REPL.
type Shell struct {
	in   io.Reader
	out  io.Writer
	ctrl *session.Controller
	log  *history.Log

	// typingInterval is the per-rune delay of the output animation.
	// Zero disables the effect.
	typingInterval time.Duration

	logger *slog.Logger
}

// Config bundles the Shell dependencies.
type Config struct {
	Input          io.Reader
	Output         io.Writer
	Controller     *session.Controller
	Log            *history.Log
	TypingInterval time.Duration
	Logger         *slog.Logger
}

// New creates a Shell. Logger defaults to slog.Default.
func New(cfg Config) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		in:             cfg.Input,
		out:            cfg.Output,
		ctrl:           cfg.Controller,
		log:            cfg.Log,
		typingInterval: cfg.TypingInterval,
		logger:         logger,
	}
}

// Run processes input lines until the controller terminates, input is
// exhausted, or ctx is cancelled (the interrupt path). It always
// performs a final history flush before returning. The returned error
// is nil for every graceful outcome.
func (s *Shell) Run(ctx context.Context) error {
	defer s.flush()

	fmt.Fprintf(s.out, "%s\n\n", banner)

	lines := make(chan string)
	errs := make(chan error, 1)
	go s.readLines(ctx, lines, errs)

	for {
		fmt.Fprint(s.out, "You: ")

		select {
		case <-ctx.Done():
			// External interrupt: farewell and a graceful exit.
			if farewell := s.ctrl.Terminate(); farewell != "" {
				fmt.Fprintf(s.out, "\nBot: %s\n", farewell)
			}
			return nil

		case err, ok := <-errs:
			if ok && err != nil {
				return fmt.Errorf("shell: reading input: %w", err)
			}
			// End of input behaves like an interrupt.
			if farewell := s.ctrl.Terminate(); farewell != "" {
				fmt.Fprintf(s.out, "\nBot: %s\n", farewell)
			}
			return nil

		case line := <-lines:
			reply := s.ctrl.Handle(line)
			fmt.Fprint(s.out, "Bot: ")
			s.typeOut(reply)
			fmt.Fprint(s.out, "\n\n")

			if s.ctrl.State() == session.StateTerminated {
				return nil
			}
		}
	}
}

// readLines forwards trimmed input lines until EOF or a read error.
// The error channel is closed on EOF.
func (s *Shell) readLines(ctx context.Context, lines chan<- string, errs chan<- error) {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		errs <- err
	}
	close(errs)
}

// typeOut renders text rune by rune with the configured delay.
func (s *Shell) typeOut(text string) {
	if s.typingInterval <= 0 {
		fmt.Fprint(s.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(s.out, string(r))
		time.Sleep(s.typingInterval)
	}
}

func (s *Shell) flush() {
	if err := s.log.Flush(); err != nil {
		s.logger.Warn("final history flush failed", "error", err)
	}
}
