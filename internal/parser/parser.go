package parser

import (
	"errors"
	"math"
	"strings"
)

// Verb names an editor command.
type Verb string

// Recognized verbs.
const (
	VerbShowFile   Verb = "sf"
	VerbShowCursor Verb = "sc"
	VerbCursorUp   Verb = "cu"
	VerbCursorDown Verb = "cd"
	VerbCursorTo   Verb = "ct"
	VerbNewLine    Verb = "nl"
	VerbDeleteLine Verb = "dl"
	VerbLineCount  Verb = "lc"
	VerbWordCount  Verb = "wc"
	VerbCharCount  Verb = "cc"
	VerbSave       Verb = "s"
	VerbQuit       Verb = "q"
)

// ErrEmptyCommand is returned for input holding no verb.
var ErrEmptyCommand = errors.New("empty command")

// Command is one input line split into its verb and optional argument.
type Command struct {
	Verb   Verb
	Arg    string // everything after the space following the verb, verbatim
	HasArg bool
}

// ParseCommand splits input at the first space after the verb. Leading
// spaces before the verb are skipped; the argument is kept exactly as typed
// so that text inserted with "nl" preserves its own spacing.
func ParseCommand(input string) (Command, error) {
	input = strings.TrimRight(input, "\r\n")
	input = strings.TrimLeft(input, " ")
	if input == "" {
		return Command{}, ErrEmptyCommand
	}
	verb, arg, found := strings.Cut(input, " ")
	return Command{Verb: Verb(verb), Arg: arg, HasArg: found && arg != ""}, nil
}

// Int reads the command argument as a number. See Atoi.
func (c Command) Int() int {
	if !c.HasArg {
		return 0
	}
	return Atoi(c.Arg)
}

// Atoi converts the leading decimal number of s. Leading white space and a
// single sign are accepted, conversion stops at the first non-digit, and
// input without digits yields 0. Values beyond the int range saturate.
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
