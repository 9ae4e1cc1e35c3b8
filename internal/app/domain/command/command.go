package command

import (
	"regexp"
	"strings"
)

// Verb identifies one bot command. Keeping it a closed enum lets the
// dispatcher switch exhaustively instead of matching raw strings.
type Verb int

const (
	Unknown Verb = iota
	Start
	Stop
	Servers
	Available
	Add
	Delete
	Rcon
	Help
	Channel
	Ping
)

var verbNames = map[Verb]string{
	Unknown:   "unknown",
	Start:     "start",
	Stop:      "stop",
	Servers:   "servers",
	Available: "available",
	Add:       "add",
	Delete:    "delete",
	Rcon:      "rcon",
	Help:      "help",
	Channel:   "channel",
	Ping:      "ping",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

func verbOf(token string) Verb {
	for v, name := range verbNames {
		if v != Unknown && name == token {
			return v
		}
	}
	return Unknown
}

// Command is one parsed invocation. Args holds the whitespace-collapsed
// tokens after the verb. RawTail is populated for rcon only: everything
// after the server id, exactly as typed.
type Command struct {
	Verb    Verb
	Args    []string
	RawTail string
}

var collapseRe = regexp.MustCompile(`\s\s+`)

// Parser turns raw message bodies into Commands. The prefix is matched
// with a trailing space, so "!urt start" parses and "!urtstart" does not.
type Parser struct {
	prefix string
	rconRe *regexp.Regexp
}

func NewParser(prefix string) *Parser {
	full := prefix + " "
	return &Parser{
		prefix: full,
		rconRe: regexp.MustCompile(regexp.QuoteMeta(full) + `\s*rcon\s+\S+\s+(.*)`),
	}
}

// Parse returns nil when the body is not addressed to the bot or carries
// nothing after the prefix. Malformed commands still parse; arity is the
// handlers' business.
func (p *Parser) Parse(body string) *Command {
	if !strings.HasPrefix(body, p.prefix) {
		return nil
	}

	collapsed := collapseRe.ReplaceAllString(strings.TrimSpace(body[len(p.prefix):]), " ")
	if collapsed == "" {
		return nil
	}

	tokens := strings.Split(collapsed, " ")
	cmd := &Command{
		Verb: verbOf(tokens[0]),
		Args: tokens[1:],
	}

	// rcon payloads may contain meaningful whitespace, so the tail is
	// re-captured from the original body rather than rebuilt from tokens.
	if cmd.Verb == Rcon && len(cmd.Args) >= 2 {
		if m := p.rconRe.FindStringSubmatch(body); m != nil {
			cmd.RawTail = m[1]
		}
	}

	return cmd
}
