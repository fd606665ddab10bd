// Command hsetrepl is an interactive shell over a HashSet of integer, pair and string keys.
// It shows where each key lands in the slot table as keys are added and removed.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/g-m-twostay/go-sets/internal/config"
	"github.com/g-m-twostay/go-sets/internal/log"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

func main() {
	path := flag.String("config", "", "TOML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := log.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	u, err := newShell(cfg.Set.Seed, os.Stdout, logger)
	if err != nil {
		logger.Error("bad seed", zap.Error(err))
		os.Exit(1)
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		err = u.interactive(cfg.Repl)
	} else {
		err = u.batch(os.Stdin)
	}
	if err != nil {
		logger.Error("shell stopped", zap.Error(err))
		os.Exit(1)
	}
}

// batch runs one command per input line and stops at the end of r or at quit.
func (u *shell) batch(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		quit, err := u.exec(sc.Text())
		if err != nil {
			fmt.Fprintln(u.out, "(error)", err)
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

func (u *shell) interactive(c config.ReplConfig) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) (out []string) {
		for _, name := range append(commandNames(), "quit") {
			if strings.HasPrefix(name, strings.ToLower(in)) {
				out = append(out, name)
			}
		}
		return
	})

	history := expandHome(c.History)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		in, err := line.Prompt(c.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(in) == "" {
			continue
		}
		line.AppendHistory(in)
		quit, err := u.exec(in)
		if err != nil {
			fmt.Fprintln(u.out, "(error)", err)
		}
		if quit {
			break
		}
	}

	if history != "" {
		f, err := os.Create(history)
		if err != nil {
			u.log.Warn("history not saved", zap.String("file", history), zap.Error(err))
			return nil
		}
		defer f.Close()
		if _, err = line.WriteHistory(f); err != nil {
			u.log.Warn("history not saved", zap.String("file", history), zap.Error(err))
		}
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
