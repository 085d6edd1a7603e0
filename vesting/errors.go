package vesting

import (
	"errors"
	"fmt"
)

type ErrorCode uint16

const (
	InsufficientRights          ErrorCode = 1
	InvalidStorageValue         ErrorCode = 3
	MissingStorageValue         ErrorCode = 4
	InvalidKey                  ErrorCode = 5
	MissingKey                  ErrorCode = 6
	InvalidEventsMode           ErrorCode = 9
	MissingContractHash         ErrorCode = 15
	InvalidAdminList            ErrorCode = 16
	InvalidNoneList             ErrorCode = 17
	ContractAlreadyInitialized  ErrorCode = 20
	Overflow                    ErrorCode = 22
	InvalidTokenContractPackage ErrorCode = 25
	MissingTokenContractPackage ErrorCode = 26
	InvalidAmount               ErrorCode = 27
	TokenContractCall           ErrorCode = 28
	InvalidCaller               ErrorCode = 29
	MissingTxTimestamp          ErrorCode = 30
	InvalidVestingType          ErrorCode = 40002
	MissingVestingType          ErrorCode = 40003
	InvalidInstallerTotalSupply ErrorCode = 40004
	InvalidRecepientAllocation  ErrorCode = 40005
)

var errorNames = map[ErrorCode]string{
	InsufficientRights:          "InsufficientRights",
	InvalidStorageValue:         "InvalidStorageValue",
	MissingStorageValue:         "MissingStorageValue",
	InvalidKey:                  "InvalidKey",
	MissingKey:                  "MissingKey",
	InvalidEventsMode:           "InvalidEventsMode",
	MissingContractHash:         "MissingContractHash",
	InvalidAdminList:            "InvalidAdminList",
	InvalidNoneList:             "InvalidNoneList",
	ContractAlreadyInitialized:  "ContractAlreadyInitialized",
	Overflow:                    "Overflow",
	InvalidTokenContractPackage: "InvalidTokenContractPackage",
	MissingTokenContractPackage: "MissingTokenContractPackage",
	InvalidAmount:               "InvalidAmount",
	TokenContractCall:           "TokenContractCall",
	InvalidCaller:               "InvalidCaller",
	MissingTxTimestamp:          "MissingTxTimestamp",
	InvalidVestingType:          "InvalidVestingType",
	MissingVestingType:          "MissingVestingType",
	InvalidInstallerTotalSupply: "InvalidInstallerTotalSupply",
	InvalidRecepientAllocation:  "InvalidRecepientAllocation",
}

func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", uint16(c))
}

var (
	ErrInsufficientRights          = NewCustomError(InsufficientRights, "caller does not hold a permitted security badge", nil)
	ErrMissingKey                  = NewCustomError(MissingKey, "missing vesting address", nil)
	ErrOverflow                    = NewCustomError(Overflow, "arithmetic overflow", nil)
	ErrContractAlreadyInitialized  = NewCustomError(ContractAlreadyInitialized, "contract already initialized", nil)
	ErrInvalidInstallerTotalSupply = NewCustomError(InvalidInstallerTotalSupply, "total supply invariant violated", nil)
	ErrInvalidRecepientAllocation  = NewCustomError(InvalidRecepientAllocation, "recipient balance does not match allocation", nil)
	ErrMissingTokenContract        = NewCustomError(MissingTokenContractPackage, "token contract is not set", nil)
	ErrNotTokenContract            = NewCustomError(InsufficientRights, "transfer check is not invoked through the token contract", nil)
)

type CustomError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is reports a match on the error code so sentinel errors compare equal to
// any error raised with the same code.
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func NewCustomError(code ErrorCode, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf extracts the vesting error code carried by err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code, true
	}
	return 0, false
}

func ErrInvalidAmount(entity, value string) error {
	return NewCustomError(InvalidAmount, fmt.Sprintf("invalid amount for %s with value %q", entity, value), nil)
}

func ErrInvalidAddress(entity, address string) error {
	return NewCustomError(InvalidKey, fmt.Sprintf("invalid address for %s: %q", entity, address), nil)
}
