package game

import "strings"

// Command is a single menu choice.
type Command int

const (
	CmdInvalid Command = iota
	CmdBuy
	CmdSell
	CmdMove
	CmdTrouble
	CmdHunt
	CmdDig
	CmdExit
)

// ParseCommand maps menu input (b/s/m/l/h/d/x, any case) to a Command.
func ParseCommand(input string) Command {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "b":
		return CmdBuy
	case "s":
		return CmdSell
	case "m":
		return CmdMove
	case "l":
		return CmdTrouble
	case "h":
		return CmdHunt
	case "d":
		return CmdDig
	case "x":
		return CmdExit
	default:
		return CmdInvalid
	}
}

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdBuy:
		return "buy"
	case CmdSell:
		return "sell"
	case CmdMove:
		return "move"
	case CmdTrouble:
		return "trouble"
	case CmdHunt:
		return "hunt"
	case CmdDig:
		return "dig"
	case CmdExit:
		return "exit"
	default:
		return "invalid"
	}
}

// NeedsItem reports whether the command takes an item name.
func (c Command) NeedsItem() bool {
	return c == CmdBuy || c == CmdSell
}

// Menu is shown under the news every turn.
var Menu = []string{
	"(B)uy something at the shop.",
	"(S)ell something at the shop.",
	"(M)ove on to a different town.",
	"(L)ook for trouble!",
	"(H)unt for treasure!",
	"(D)ig for gold!",
	"Give up the hunt and e(X)it.",
}
