package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/bitgrid/board"
	"github.com/domino14/bitgrid/config"
	"github.com/domino14/bitgrid/zobrist"
)

var errExitShell = errors.New("exit shell")

// ShellController owns the readline instance and the one working
// bitboard that all commands operate on. curKey is the zobrist hash of
// the working board, maintained incrementally as commands mutate it.
type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	board  board.Bitboard
	hasher *zobrist.Zobrist
	curKey uint64
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mbitgrid>\033[0m ",
		HistoryFile:     cfg.GetString("history-file"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		AutoComplete:        completer,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	hasher := &zobrist.Zobrist{}
	hasher.Initialize()
	return &ShellController{l: l, out: l.Stderr(), config: cfg, hasher: hasher}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

// handle dispatches one command line. It returns errExitShell when the
// user asked to leave; any other error is an ordinary command failure.
func (sc *ShellController) handle(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "set":
		return sc.setSquares(args)
	case "clear":
		return sc.clearSquares(args)
	case "put":
		return sc.putSquare(args)
	case "get":
		return sc.getSquare(args)
	case "show":
		return sc.show(args)
	case "count":
		return sc.count(args)
	case "status":
		return sc.status(args)
	case "list":
		return sc.list(args)
	case "only":
		return sc.only(args)
	case "random":
		return sc.random(args)
	case "reset":
		return sc.reset(args)
	case "hash":
		return sc.hash(args)
	case "index":
		return sc.index(args)
	case "square":
		return sc.square(args)
	case "help":
		return sc.help(args)
	case "exit", "quit":
		return errExitShell
	default:
		log.Debug().Msgf("unknown command: %v", cmd)
		return errors.New("unknown command " + cmd + "; type `help` for a list")
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		err = sc.handle(line)
		if err == errExitShell {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			log.Error().Err(err).Msg("")
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line non-interactively, for one-shot
// invocations from the command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	err := sc.handle(line)
	if err != nil && err != errExitShell {
		log.Error().Err(err).Msg("")
	}
}
