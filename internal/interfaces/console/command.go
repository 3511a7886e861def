package console

import (
	"strconv"
	"strings"
)

// listCommand orden escrita en un listado: letra y argumento opcional ("e 3").
type listCommand struct {
	verb string
	arg  string
}

func parseCommand(s string) listCommand {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return listCommand{}
	}
	cmd := listCommand{verb: fields[0]}
	if len(fields) > 1 {
		cmd.arg = fields[1]
	}
	return cmd
}

func (c listCommand) id() (int64, bool) {
	id, err := strconv.ParseInt(c.arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
