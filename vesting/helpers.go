package vesting

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
)

var (
	contractAddressPattern = regexp.MustCompile(contractAddressRegex)
	hexAddressPattern      = regexp.MustCompile(hexAddressRegex)
	mspIDPattern           = regexp.MustCompile(mspIDRegex)
)

// Caller identifies who invoked the transaction. Package is the enclosing
// identity (the MSP of the client) and may be empty.
type Caller struct {
	ID      string
	Package string
}

func GetUserId(ctx TransactionContext) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", NewCustomError(InvalidCaller, "failed to read clientID", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", NewCustomError(InvalidCaller, "failed to base64 decode clientID", err)
	}

	completeId := string(decodeID)
	start := strings.Index(completeId, "x509::CN=")
	if start < 0 {
		return "", NewCustomError(InvalidCaller, "client id carries no common name", nil)
	}
	userId := completeId[start+len("x509::CN="):]
	if end := strings.Index(userId, ","); end >= 0 {
		userId = userId[:end]
	}

	if !IsUserAddressValid(userId) && !IsContractAddressValid(userId) {
		return "", NewCustomError(InvalidCaller, fmt.Sprintf("invalid caller address %q", userId), nil)
	}

	return userId, nil
}

// GetVerifiedCaller resolves the caller as its own address plus the MSP it
// was enrolled with.
func GetVerifiedCaller(ctx TransactionContext) (Caller, error) {
	userId, err := GetUserId(ctx)
	if err != nil {
		return Caller{}, err
	}

	mspID, err := ctx.GetClientIdentity().GetMSPID()
	if err != nil {
		return Caller{}, NewCustomError(InvalidCaller, "failed to read client MSP ID", err)
	}

	return Caller{ID: userId, Package: mspID}, nil
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}
	return contractAddressPattern.MatchString(address)
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}
	return hexAddressPattern.MatchString(address)
}

// IsAddressValid accepts both user and contract addresses.
func IsAddressValid(address string) bool {
	return IsUserAddressValid(address) || IsContractAddressValid(address)
}

// IsPrincipalValid accepts anything a security badge can be granted to: a
// user or contract address, or an MSP ID standing for every caller enrolled
// with it.
func IsPrincipalValid(principal string) bool {
	return IsAddressValid(principal) || mspIDPattern.MatchString(principal)
}

// ParseAmount parses a non-negative decimal amount of at most 256 bits.
func ParseAmount(entity, value string) (*uint256.Int, error) {
	if value == "" || strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return nil, ErrInvalidAmount(entity, value)
	}
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, ErrInvalidAmount(entity, value)
	}
	return amount, nil
}
