package http2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStatusCodeRange(t *testing.T) {
	_, err := NewStatusCode(99)
	require.ErrorIs(t, err, ErrInvalidStatusCode)

	_, err = NewStatusCode(600)
	require.ErrorIs(t, err, ErrInvalidStatusCode)

	sc, err := NewStatusCode(200)
	require.NoError(t, err)
	require.EqualValues(t, 200, sc.Uint16())
}

func TestStatusCodeClass(t *testing.T) {
	cases := map[StatusCode]StatusClass{
		100: ClassInformational,
		200: ClassSuccessful,
		302: ClassRedirection,
		404: ClassClientError,
		503: ClassServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, code.Class())
	}
}

func TestStatusClassDefaultCode(t *testing.T) {
	require.Equal(t, StatusCode(400), ClassClientError.DefaultCode())
}

func TestCanonicalReason(t *testing.T) {
	r, ok := StatusCode(200).CanonicalReason()
	require.True(t, ok)
	require.Equal(t, "OK", r)

	_, ok = StatusCode(499).CanonicalReason()
	require.False(t, ok)
}

func TestStatusCodeString(t *testing.T) {
	require.Equal(t, "404 Not Found", StatusCode(404).String())
	require.Equal(t, "499", StatusCode(499).String())
}
