package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns one line of input into a Command. It is a pure function
// of the line.
//
// Grammar (whitespace-delimited, first token is the verb):
//
//	add <rest of line>   -> KindAdd, title = remaining tokens rejoined
//	list                 -> KindList
//	toggle <n>           -> KindToggle with Index = n-1
//	delete <n>           -> KindDelete with Index = n-1
//	export [path]        -> KindExport
//	help                 -> KindHelp
//	exit, empty, unknown -> KindExit
//
// A missing or non-numeric <n> for toggle/delete is a parse error; the
// caller reports it and keeps reading.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: KindExit}, nil
	}

	verb := fields[0]
	rest := fields[1:]

	switch verb {
	case "add":
		return Command{Kind: KindAdd, Title: strings.Join(rest, " ")}, nil
	case "list":
		return Command{Kind: KindList}, nil
	case "toggle":
		index, err := parseIndex(verb, rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindToggle, Index: index}, nil
	case "delete":
		index, err := parseIndex(verb, rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindDelete, Index: index}, nil
	case "export":
		cmd := Command{Kind: KindExport}
		if len(rest) > 0 {
			cmd.Path = rest[0]
		}
		return cmd, nil
	case "help":
		return Command{Kind: KindHelp}, nil
	default:
		// "exit" and anything unrecognized both end the loop.
		return Command{Kind: KindExit}, nil
	}
}

// parseIndex converts the 1-based display number following toggle or
// delete into a 0-based index.
func parseIndex(verb string, rest []string) (int, error) {
	if len(rest) == 0 {
		return 0, fmt.Errorf("%s: task number required", verb)
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return 0, fmt.Errorf("%s: invalid task number: %s", verb, rest[0])
	}
	return n - 1, nil
}
