package http2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAlpha(t *testing.T) {
	require.True(t, IsAlpha('a'))
	require.True(t, IsAlpha('Z'))
	require.False(t, IsAlpha('0'))
	require.False(t, IsAlpha('-'))
}

func TestIsDigit(t *testing.T) {
	require.True(t, IsDigit('0'))
	require.True(t, IsDigit('9'))
	require.False(t, IsDigit('a'))
}

func TestIsHexdig(t *testing.T) {
	require.True(t, IsHexdig('a'))
	require.True(t, IsHexdig('F'))
	require.True(t, IsHexdig('3'))
	require.False(t, IsHexdig('g'))
}

func TestIsCtl(t *testing.T) {
	require.True(t, IsCtl(0x00))
	require.True(t, IsCtl(0x1F))
	require.True(t, IsCtl(0x7F))
	require.False(t, IsCtl('a'))
}

func TestIsVchar(t *testing.T) {
	require.True(t, IsVchar('!'))
	require.True(t, IsVchar('~'))
	require.False(t, IsVchar(' '))
	require.False(t, IsVchar(0x7F))
}

func TestIsTchar(t *testing.T) {
	for _, c := range "!#$%&'*+-.^_`|~abcXYZ019" {
		require.True(t, IsTchar(byte(c)), "expected %q to be a tchar", c)
	}
	for _, c := range " \t\"(),/:;<=>?@[\\]{}" {
		require.False(t, IsTchar(byte(c)), "expected %q to not be a tchar", c)
	}
}
