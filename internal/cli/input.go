// Package cli runs the interactive command interpreter over a match engine.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/charmbracelet/log"
)

// errQuit ends the input loop without an error.
var errQuit = errors.New("quit")

// Settings controls how the handler prompts and prints.
type Settings struct {
	Prompt string
	// Columns is the output width; 0 uses COLUMNS or a default.
	Columns int
	// Limit caps the words printed per query; 0 prints all.
	Limit int
	Color bool
	// Load describes the dictionary load, shown by stats.
	Load dictionary.Stats
}

// InputHandler reads commands line by line and prints their results.
type InputHandler struct {
	engine   match.Solver
	lexicon  *dictionary.Lexicon
	settings Settings
	in       io.Reader
	out      io.Writer
	styles   styles
	commands map[string]command
	queries  int
}

type command struct {
	usage string
	help  string
	run   func(h *InputHandler, args []string) error
}

// NewInputHandler returns a handler reading from in and writing to out.
// lexicon may be nil, in which case the words command reports nothing.
func NewInputHandler(engine match.Solver, lexicon *dictionary.Lexicon, settings Settings, in io.Reader, out io.Writer) *InputHandler {
	if settings.Prompt == "" {
		settings.Prompt = "> "
	}
	h := &InputHandler{
		engine:   engine,
		lexicon:  lexicon,
		settings: settings,
		in:       in,
		out:      out,
		styles:   newStyles(out, settings.Color),
	}
	h.commands = commandTable()
	return h
}

// Start begins the interface loop. It returns nil on quit or end of input,
// and stops with the error when the index turns out to be broken.
func (h *InputHandler) Start() error {
	fmt.Fprintf(h.out, "%d words loaded. Type help for the command reference.\n", h.engine.Len())
	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, h.styles.prompt.Render(h.settings.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		if err := h.Execute(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

// Execute runs a single command line. Command errors are printed; only
// quitting and a broken index are reported back.
func (h *InputHandler) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := h.commands[name]
	if !ok {
		fmt.Fprintf(h.out, "Unknown command %q, try help\n", fields[0])
		return nil
	}

	err := cmd.run(h, fields[1:])
	switch {
	case err == nil:
	case errors.Is(err, errQuit):
		return err
	case errors.Is(err, errUsage):
		fmt.Fprintf(h.out, "Usage: %s %s\n", name, cmd.usage)
	case errors.As(err, new(*critbit.InvariantError)):
		return err
	default:
		log.Debugf("Command %q failed: %v", line, err)
		fmt.Fprintln(h.out, h.styles.err.Render("error: "+err.Error()))
	}
	return nil
}

var errUsage = errors.New("usage")

func commandTable() map[string]command {
	query := command{"[pattern] [required]", "list words matching pattern that contain the required letters", (*InputHandler).query}
	quit := command{"", "terminate the program", func(*InputHandler, []string) error { return errQuit }}
	return map[string]command{
		"help":      {"", "show this reference", (*InputHandler).help},
		"quit":      quit,
		"exit":      quit,
		"try":       query,
		"query":     query,
		"eliminate": {"<letters>", "remove letters from every position", (*InputHandler).eliminate},
		"restore":   {"<letters>", "add letters back to every position", (*InputHandler).restore},
		"remove":    {"<pos> <letters>", "remove letters from one position", (*InputHandler).remove},
		"add":       {"<pos> <letters>", "add letters to one position", (*InputHandler).add},
		"pin":       {"<pos> <letters>", "allow only these letters at a position", (*InputHandler).pin},
		"reset":     {"", "allow every letter at every position", (*InputHandler).reset},
		"find":      {"<word>", "look up an exact word", (*InputHandler).find},
		"words":     {"<prefix>", "list loaded words starting with prefix", (*InputHandler).words},
		"sets":      {"", "show the letters allowed at each position", (*InputHandler).sets},
		"stats":     {"", "show dictionary statistics", (*InputHandler).stats},
	}
}

func (h *InputHandler) help([]string) error {
	names := []string{"help", "quit", "try", "eliminate", "restore", "remove", "add", "pin", "reset", "find", "words", "sets", "stats"}
	fmt.Fprintln(h.out, "Command reference:")
	for _, name := range names {
		cmd := h.commands[name]
		fmt.Fprintf(h.out, "  %-28s %s\n", strings.TrimSpace(name+" "+cmd.usage), cmd.help)
	}
	fmt.Fprintf(h.out, "Positions are 1 to %d. %q in a pattern stands for any allowed letter.\n",
		critbit.WordLen, h.engine.Options().Wildcard)
	return nil
}

func (h *InputHandler) query(args []string) error {
	if len(args) > 2 {
		return errUsage
	}
	var pattern, required string
	if len(args) > 0 {
		pattern = args[0]
	}
	if len(args) > 1 {
		required = args[1]
	}

	h.queries++
	start := time.Now()
	res, err := h.engine.QueryLimit(pattern, required, h.settings.Limit)
	if err != nil {
		return err
	}
	log.Debugf("Took [ %v ] for pattern %q required %q", time.Since(start), pattern, required)

	if res.Mismatch != nil {
		fmt.Fprintf(h.out, "Pattern %q must be %d characters\n", pattern, critbit.WordLen)
		return nil
	}
	h.printWords(res.Words, required)
	if len(res.Words) < res.Count {
		fmt.Fprintf(h.out, "%s matches (showing %d)\n", utils.FormatWithCommas(res.Count), len(res.Words))
	} else {
		fmt.Fprintf(h.out, "%s matches\n", utils.FormatWithCommas(res.Count))
	}
	return nil
}

func (h *InputHandler) eliminate(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := h.engine.Letters().EliminateAll(args[0]); err != nil {
		return err
	}
	return h.sets(nil)
}

func (h *InputHandler) restore(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := h.engine.Letters().RestoreAll(args[0]); err != nil {
		return err
	}
	return h.sets(nil)
}

// positional parses "<pos> <letters>" and applies fn with a 0-based position.
func (h *InputHandler) positional(args []string, fn func(pos int, letters string) error) error {
	if len(args) != 2 {
		return errUsage
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("position %q is not a number", args[0])
	}
	if err := fn(pos-1, args[1]); err != nil {
		return err
	}
	return h.showSet(pos - 1)
}

func (h *InputHandler) remove(args []string) error {
	return h.positional(args, h.engine.Letters().Remove)
}

func (h *InputHandler) add(args []string) error {
	return h.positional(args, h.engine.Letters().Add)
}

func (h *InputHandler) pin(args []string) error {
	return h.positional(args, h.engine.Letters().Replace)
}

func (h *InputHandler) reset(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	h.engine.Letters().ResetAll()
	fmt.Fprintln(h.out, "All letters allowed at every position")
	return nil
}

func (h *InputHandler) find(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	word, ok, err := h.engine.Find(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(h.out, "%s: found\n", h.styles.word.Render(word))
	} else {
		fmt.Fprintf(h.out, "%s: not found\n", args[0])
	}
	return nil
}

func (h *InputHandler) words(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if h.lexicon == nil {
		fmt.Fprintln(h.out, "No word list loaded")
		return nil
	}
	found := h.lexicon.WithPrefix(strings.ToLower(args[0]), h.settings.Limit)
	h.printWords(found, "")
	fmt.Fprintf(h.out, "%s words\n", utils.FormatWithCommas(len(found)))
	return nil
}

func (h *InputHandler) sets([]string) error {
	for pos := 0; pos < h.engine.Letters().Width(); pos++ {
		if err := h.showSet(pos); err != nil {
			return err
		}
	}
	return nil
}

func (h *InputHandler) showSet(pos int) error {
	set, err := h.engine.Letters().Get(pos)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "%d: %-26s (%d)\n", pos+1, set.String(), set.Len())
	return nil
}

func (h *InputHandler) stats([]string) error {
	load := h.settings.Load
	fmt.Fprintf(h.out, "Words indexed: %s\n", utils.FormatWithCommas(h.engine.Len()))
	fmt.Fprintf(h.out, "Lines read:    %s (%s rejected, %s duplicates)\n",
		utils.FormatWithCommas(load.Lines), utils.FormatWithCommas(load.Rejected), utils.FormatWithCommas(load.Duplicates))
	fmt.Fprintf(h.out, "Queries run:   %d\n", h.queries)
	return nil
}

// printWords writes words in columns, highlighting required letters.
func (h *InputHandler) printWords(words []string, required string) {
	width := utils.TerminalColumns(h.settings.Columns)
	rendered := make([]string, len(words))
	for i, w := range words {
		rendered[i] = h.styles.highlight(w, required)
	}
	for _, line := range utils.Columnize(rendered, critbit.WordLen, width) {
		fmt.Fprint(h.out, line)
	}
}
