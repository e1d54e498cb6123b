package shell

import (
	"sort"
	"strings"
)

var helpTopics = map[string]string{
	"set":    "set <sq> [<sq> ...] - add squares to the board, e.g. `set e4 d5`",
	"clear":  "clear <sq> [<sq> ...] - remove squares from the board",
	"put":    "put <sq> <true|false> - set a square's membership explicitly",
	"get":    "get <sq> - show whether a square is on the board",
	"show":   "show - render the board as an 8x8 grid of 0s and 1s",
	"count":  "count - number of squares on the board",
	"status": "status - quick summary of the board",
	"list":   "list - algebraic notation of every square on the board",
	"only":   "only - extract the single square of a one-square board",
	"random": "random <n> - replace the board with n distinct random squares",
	"reset":  "reset - empty the board",
	"hash":   "hash - zobrist hash of the board, in hex",
	"index":  "index <sq> - linear index (0-63) of a square",
	"square": "square <idx> - algebraic notation for a linear index",
	"help":   "help [command] - this text",
	"exit":   "exit - leave the shell",
}

func (sc *ShellController) help(args []string) error {
	if len(args) > 0 {
		topic, ok := helpTopics[args[0]]
		if !ok {
			sc.showMessage("There is no help text for the topic " + args[0])
			return nil
		}
		sc.showMessage(topic)
		return nil
	}
	cmds := make([]string, 0, len(helpTopics))
	for cmd := range helpTopics {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, cmd := range cmds {
		sb.WriteString("  " + helpTopics[cmd] + "\n")
	}
	sb.WriteString("Squares use algebraic notation: a1 (bottom-left) to h8 (top-right).")
	sc.showMessage(sb.String())
	return nil
}
