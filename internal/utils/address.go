package utils

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// base58check payload: 1 version byte + 20 byte hash + 4 byte checksum
const legacyAddressLength = 25

// charset shared by cashaddr-style payloads
const prefixedAddressCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// NormalizeAddress canonicalizes an address string. Prefixed addresses
// ("prefix:payload") are lowercased and charset-checked; bare addresses are
// validated as base58check and returned unchanged. An error is returned for
// any malformed input.
func NormalizeAddress(address string) (string, error) {
	addr := strings.TrimSpace(address)
	if addr == "" {
		return "", errors.New("address is empty")
	}

	if strings.Contains(addr, ":") {
		return normalizePrefixedAddress(addr)
	}
	return normalizeLegacyAddress(addr)
}

func normalizePrefixedAddress(addr string) (string, error) {
	// Mixed case is invalid in the prefixed encoding, but all-upper input
	// is commonly produced by QR scanners, so fold it before checking.
	if addr != strings.ToLower(addr) && addr != strings.ToUpper(addr) {
		return "", fmt.Errorf("mixed-case address: %s", addr)
	}
	lowered := strings.ToLower(addr)

	parts := strings.SplitN(lowered, ":", 2)
	prefix, payload := parts[0], parts[1]
	if prefix == "" || payload == "" {
		return "", fmt.Errorf("malformed prefixed address: %s", addr)
	}
	for _, c := range payload {
		if !strings.ContainsRune(prefixedAddressCharset, c) {
			return "", fmt.Errorf("invalid character %q in address payload", c)
		}
	}
	return lowered, nil
}

func normalizeLegacyAddress(addr string) (string, error) {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return "", fmt.Errorf("invalid base58 address: %w", err)
	}
	if len(decoded) != legacyAddressLength {
		return "", fmt.Errorf("invalid address length %d", len(decoded))
	}
	payload, checksum := decoded[:21], decoded[21:]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:4], checksum) {
		return "", errors.New("address checksum mismatch")
	}
	return addr, nil
}
