package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	Go_Sets "github.com/g-m-twostay/go-sets"
	"github.com/g-m-twostay/go-sets/Sets/HashSet"
	"go.uber.org/zap"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errArgs           = errors.New("wrong number of arguments")
	errQuote          = errors.New("unbalanced quotes")
)

type shell struct {
	set *HashSet.HashSet[Go_Sets.Key]
	out io.Writer
	log *zap.Logger
}

type command struct {
	args    string
	summary string
	minArgs int
	maxArgs int //-1 for unbounded
	run     func(u *shell, argv []string) error
}

var commands map[string]*command

func init() {
	commands = map[string]*command{
		"add":    {"key...", "put keys into the set", 1, -1, (*shell).add},
		"rm":     {"key...", "remove keys from the set", 1, -1, (*shell).remove},
		"has":    {"key...", "test keys for membership", 1, -1, (*shell).has},
		"len":    {"", "number of keys", 0, 0, (*shell).size},
		"cap":    {"", "length of the slot table", 0, 0, (*shell).capacity},
		"idx":    {"i", "resident of slot i", 1, 1, (*shell).index},
		"list":   {"", "keys in slot order", 0, 0, (*shell).list},
		"table":  {"", "every slot with its resident and home", 0, 0, (*shell).table},
		"home":   {"key...", "home index of keys", 1, -1, (*shell).home},
		"clear":  {"", "empty the set", 0, 0, (*shell).clear},
		"verify": {"", "check the bookkeeping of the set", 0, 0, (*shell).verify},
		"help":   {"", "show this help", 0, 0, (*shell).help},
	}
}

func newShell(seed []string, out io.Writer, log *zap.Logger) (*shell, error) {
	keys, err := parseKeys(seed)
	if err != nil {
		return nil, err
	}
	u := &shell{set: HashSet.From(Go_Sets.Key.Hash, keys, HashSet.WithLogger(log)), out: out, log: log}
	log.Info("set ready", zap.Int("size", u.set.Len()), zap.Int("capacity", u.set.Capacity()))
	return u, nil
}

// exec one input line. quit is true when the line asks the shell to stop.
func (u *shell) exec(line string) (quit bool, err error) {
	argv, err := splitArgs(line)
	if err != nil || len(argv) == 0 {
		return false, err
	}
	name := strings.ToLower(argv[0])
	if name == "quit" || name == "exit" {
		return true, nil
	}
	c, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("%w '%s', try help", errUnknownCommand, argv[0])
	}
	if n := len(argv) - 1; n < c.minArgs || (c.maxArgs >= 0 && n > c.maxArgs) {
		return false, fmt.Errorf("%w for '%s', usage: %s %s", errArgs, name, name, c.args)
	}
	u.log.Debug("exec", zap.String("command", name), zap.Strings("args", argv[1:]))
	return false, c.run(u, argv[1:])
}

func (u *shell) add(argv []string) error {
	keys, err := parseKeys(argv)
	if err != nil {
		return err
	}
	n := 0
	for _, k := range keys {
		if u.set.Put(k) {
			n++
		}
	}
	fmt.Fprintf(u.out, "(integer) %d\n", n)
	return nil
}

func (u *shell) remove(argv []string) error {
	keys, err := parseKeys(argv)
	if err != nil {
		return err
	}
	n := 0
	for _, k := range keys {
		if u.set.Remove(k) {
			n++
		}
	}
	fmt.Fprintf(u.out, "(integer) %d\n", n)
	return nil
}

func (u *shell) has(argv []string) error {
	keys, err := parseKeys(argv)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(u.out, "%v %v\n", k, u.set.Has(k))
	}
	return nil
}

func (u *shell) size([]string) error {
	fmt.Fprintf(u.out, "(integer) %d\n", u.set.Len())
	return nil
}

func (u *shell) capacity([]string) error {
	fmt.Fprintf(u.out, "(integer) %d\n", u.set.Capacity())
	return nil
}

func (u *shell) index(argv []string) error {
	i, err := strconv.Atoi(argv[0])
	if err != nil {
		return fmt.Errorf("slot index: %w", err)
	}
	k, ok, err := u.set.Index(i)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(u.out, "(empty)")
	} else {
		fmt.Fprintln(u.out, k)
	}
	return nil
}

func (u *shell) list([]string) error {
	fmt.Fprintln(u.out, u.set)
	return nil
}

func (u *shell) table([]string) error {
	for i, k := range u.set.Slots() {
		fmt.Fprintf(u.out, "%d: %v home %d\n", i, k, u.set.HomeOf(k))
	}
	fmt.Fprintf(u.out, "(%d of %d slots)\n", u.set.Len(), u.set.Capacity())
	return nil
}

func (u *shell) home(argv []string) error {
	keys, err := parseKeys(argv)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(u.out, "%v %d\n", k, u.set.HomeOf(k))
	}
	return nil
}

func (u *shell) clear([]string) error {
	u.set.Clear()
	fmt.Fprintln(u.out, "OK")
	return nil
}

func (u *shell) verify([]string) error {
	if err := u.set.Verify(); err != nil {
		return err
	}
	fmt.Fprintln(u.out, "OK")
	return nil
}

func (u *shell) help([]string) error {
	for _, name := range commandNames() {
		c := commands[name]
		fmt.Fprintf(u.out, "%-7s %-7s %s\n", name, c.args, c.summary)
	}
	fmt.Fprintf(u.out, "%-7s %-7s %s\n", "quit", "", "leave the shell")
	fmt.Fprintln(u.out, `keys: 12 is an integer, 3,4 a pair, "12" or any other word a string`)
	return nil
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseKeys(argv []string) ([]Go_Sets.Key, error) {
	keys := make([]Go_Sets.Key, len(argv))
	for i, a := range argv {
		k, err := Go_Sets.ParseKey(a)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

// splitArgs splits line on blanks. Double-quoted arguments keep their quotes, so ParseKey sees them as strings.
func splitArgs(line string) ([]string, error) {
	var argv []string
	var cur strings.Builder
	inQuote, escaped, started := false, false, false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
			cur.WriteRune(r)
		case inQuote && r == '\\':
			escaped = true
			cur.WriteRune(r)
		case r == '"':
			inQuote = !inQuote
			started = true
			cur.WriteRune(r)
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				argv = append(argv, cur.String())
				cur.Reset()
				started = false
			}
		default:
			started = true
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, errQuote
	}
	if started {
		argv = append(argv, cur.String())
	}
	return argv, nil
}
