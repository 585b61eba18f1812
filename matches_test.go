package qubxml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesCaseInsensitive(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"a", "A", true},
		{"Root", "root", true},
		{"a", "b", false},
		{"", "a", false},
		{"a", "", false},
		{"", "", false},
		{"ns:Tag", "ns:tag", true},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Matches(c.a, c.b), "Matches(%q, %q)", c.a, c.b)
	}
}
