package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser("!urt")

	tests := []struct {
		name     string
		body     string
		wantNil  bool
		wantVerb Verb
		wantArgs []string
		wantTail string
	}{
		{
			name:    "no_prefix",
			body:    "hello there",
			wantNil: true,
		},
		{
			name:    "prefix_without_space",
			body:    "!urtstart nae",
			wantNil: true,
		},
		{
			name:    "empty_after_prefix",
			body:    "!urt    ",
			wantNil: true,
		},
		{
			name:     "simple_verb",
			body:     "!urt stop",
			wantVerb: Stop,
			wantArgs: []string{},
		},
		{
			name:     "verb_with_arg",
			body:     "!urt start nae",
			wantVerb: Start,
			wantArgs: []string{"nae"},
		},
		{
			name:     "collapses_whitespace",
			body:     "!urt   add   1.2.3.4    27960   secret",
			wantVerb: Add,
			wantArgs: []string{"1.2.3.4", "27960", "secret"},
		},
		{
			name:     "unknown_verb",
			body:     "!urt dance",
			wantVerb: Unknown,
			wantArgs: []string{},
		},
		{
			name:     "rcon_preserves_tail_whitespace",
			body:     "!urt rcon 3 exec   uz5v5ctf.cfg  now",
			wantVerb: Rcon,
			wantArgs: []string{"3", "exec", "uz5v5ctf.cfg", "now"},
			wantTail: "exec   uz5v5ctf.cfg  now",
		},
		{
			name:     "rcon_single_word_command",
			body:     "!urt rcon 3 status",
			wantVerb: Rcon,
			wantArgs: []string{"3", "status"},
			wantTail: "status",
		},
		{
			name:     "rcon_missing_command",
			body:     "!urt rcon 3",
			wantVerb: Rcon,
			wantArgs: []string{"3"},
			wantTail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := p.Parse(tt.body)
			if tt.wantNil {
				assert.Nil(t, cmd)
				return
			}

			require.NotNil(t, cmd)
			assert.Equal(t, tt.wantVerb, cmd.Verb)
			assert.Equal(t, tt.wantArgs, cmd.Args)
			assert.Equal(t, tt.wantTail, cmd.RawTail)
		})
	}
}

func TestVerb_String(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "channel", Channel.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Verb(99).String())
}
