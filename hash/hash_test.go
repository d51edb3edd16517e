package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256Deterministic(t *testing.T) {
	require.Equal(t, SHA256([]byte("abc")), SHA256([]byte("abc")))
	require.NotEqual(t, SHA256([]byte("abc")), SHA256([]byte("abd")))
}
