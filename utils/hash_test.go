package utils

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestKeccakHash32Bytes(t *testing.T) {
	// Keccak256 of empty input.
	require.Equal(t,
		common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"),
		KeccakHash32Bytes(nil),
	)

	require.NotEqual(t, KeccakHash32Bytes([]byte{0x01}), KeccakHash32Bytes([]byte{0x02}))
}
