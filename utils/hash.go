package utils

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// KeccakHash32Bytes hashes a byte slice into a 32-byte identifier.
func KeccakHash32Bytes(bz []byte) common.Hash {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(bz)

	return common.BytesToHash(hash.Sum(nil))
}
