package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	v, ok := Lookup("amp")
	require.True(t, ok)
	require.Equal(t, "&", v)

	_, ok = Lookup("notarealentity")
	require.False(t, ok)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no references", "plain text", "plain text"},
		{"named", "Tom &amp; Jerry", "Tom & Jerry"},
		{"decimal", "&#38;", "&"},
		{"hex lower", "&#x26;", "&"},
		{"hex upper", "&#X26;", "&"},
		{"decimal non-ascii", "&#383;", "ſ"},
		{"unknown named passes through", "&notathing;", "&notathing;"},
		{"unterminated named passes through", "&amp", "&amp"},
		{"bare ampersand passes through", "A & B", "A & B"},
		{"overflowing codepoint passes through", "&#99999999;", "&#99999999;"},
		{"adjacent references", "&lt;&gt;", "<>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decode(tt.in))
		})
	}
}
