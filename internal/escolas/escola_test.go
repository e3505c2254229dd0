package escolas

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamePattern_SpacesMatchAnything(t *testing.T) {
	re, err := regexp.Compile("(?i)" + NamePattern("escola municipal"))
	require.NoError(t, err)

	// spaced segments must occur in order, case-insensitively, with
	// arbitrary text between them
	require.True(t, re.MatchString("ESCOLA JOSE MUNICIPAL"))
	require.True(t, re.MatchString("escola municipal"))
	require.True(t, re.MatchString("EMEF ESCOLA NOVA MUNICIPAL ZONA SUL"))
	require.False(t, re.MatchString("MUNICIPAL ESCOLA"))
	require.False(t, re.MatchString("ESCOLA ESTADUAL"))
}

func TestNamePattern_NoSpaces(t *testing.T) {
	require.Equal(t, "anchieta", NamePattern("anchieta"))
}
