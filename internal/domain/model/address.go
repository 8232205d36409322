// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"regexp"
	"strings"
)

// ZeroAddress is the chain's null account; transfers from it are mints.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// ErrInvalidAddress is returned when a string is not a 20-byte hex account.
var ErrInvalidAddress = errors.New("invalid address")

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// Address is a canonical (lowercase) chain account identifier.
type Address string

// ParseAddress validates s and returns its canonical lowercase form.
// Checksummed input is accepted; the checksum itself is not verified.
func ParseAddress(s string) (Address, error) {
	clean := strings.TrimSpace(s)
	if !addressPattern.MatchString(clean) {
		return "", ErrInvalidAddress
	}
	return Address(strings.ToLower(clean)), nil
}

// Canonical lowercases an address without validating it. Provider payloads
// use it to compare counterparties that may be empty (contract creation).
func Canonical(s string) Address {
	return Address(strings.ToLower(strings.TrimSpace(s)))
}

func (a Address) String() string { return string(a) }
