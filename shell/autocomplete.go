package shell

import "github.com/chzyer/readline"

var commandNames = []string{
	"set", "clear", "put", "get", "show", "count", "status", "list",
	"only", "random", "reset", "hash", "index", "square", "help",
	"exit", "quit",
}

var completer = buildCompleter()

func buildCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, len(commandNames))
	for i, name := range commandNames {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(items...)
}
