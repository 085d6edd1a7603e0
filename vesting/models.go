package vesting

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
)

// VestingRecord is the persisted state of a category. ReleasedAmount only
// grows, and only when a transfer check permits an amount within the
// available release.
type VestingRecord struct {
	VestingType        VestingType  `json:"vestingType"`
	BeneficiaryAddress string       `json:"beneficiaryAddress"`
	StartTime          uint64       `json:"startTime"`
	TotalAllocated     *uint256.Int `json:"totalAllocated"`
	ReleasedAmount     *uint256.Int `json:"releasedAmount"`
}

func vestingKey(prefix string, vestingType VestingType) string {
	return fmt.Sprintf("%s_%s", prefix, vestingType)
}

func GetVestingRecord(ctx TransactionContext, vestingType VestingType) (*VestingRecord, error) {
	recordKey := vestingKey(vestingRecordPrefix, vestingType)
	recordAsBytes, err := ctx.GetState(recordKey)
	if err != nil {
		return nil, NewCustomError(MissingStorageValue, fmt.Sprintf("failed to get vesting record with Key %s", recordKey), err)
	}
	if recordAsBytes == nil {
		return nil, NewCustomError(MissingVestingType, fmt.Sprintf("vesting record with Key %s does not exist", recordKey), nil)
	}

	var record VestingRecord
	err = json.Unmarshal(recordAsBytes, &record)
	if err != nil {
		return nil, NewCustomError(InvalidStorageValue, "failed to unmarshal vesting record", err)
	}
	record.TotalAllocated = orZero(record.TotalAllocated)
	record.ReleasedAmount = orZero(record.ReleasedAmount)

	return &record, nil
}

func SetVestingRecord(ctx TransactionContext, record *VestingRecord) error {
	recordKey := vestingKey(vestingRecordPrefix, record.VestingType)
	recordAsBytes, err := json.Marshal(record)
	if err != nil {
		return NewCustomError(InvalidStorageValue, "failed to marshal vesting record", err)
	}

	err = ctx.PutState(recordKey, recordAsBytes)
	if err != nil {
		return NewCustomError(InvalidStorageValue, fmt.Sprintf("failed to set vesting record with Key %s", recordKey), err)
	}

	return nil
}

func GetVestingStatus(ctx TransactionContext, vestingType VestingType) (*VestingStatus, error) {
	statusKey := vestingKey(vestingStatusPrefix, vestingType)
	statusAsBytes, err := ctx.GetState(statusKey)
	if err != nil {
		return nil, NewCustomError(MissingStorageValue, fmt.Sprintf("failed to get vesting status with Key %s", statusKey), err)
	}
	if statusAsBytes == nil {
		return nil, NewCustomError(MissingVestingType, fmt.Sprintf("vesting status with Key %s does not exist", statusKey), nil)
	}

	var status VestingStatus
	if err := json.Unmarshal(statusAsBytes, &status); err != nil {
		return nil, NewCustomError(InvalidStorageValue, "failed to unmarshal vesting status", err)
	}

	return &status, nil
}

func SetVestingStatus(ctx TransactionContext, status *VestingStatus) error {
	statusKey := vestingKey(vestingStatusPrefix, status.VestingType)
	statusAsBytes, err := json.Marshal(status)
	if err != nil {
		return NewCustomError(InvalidStorageValue, "failed to marshal vesting status", err)
	}

	err = ctx.PutState(statusKey, statusAsBytes)
	if err != nil {
		return NewCustomError(InvalidStorageValue, fmt.Sprintf("failed to set vesting status with Key %s", statusKey), err)
	}

	return nil
}

func GetVestingInfo(ctx TransactionContext, vestingType VestingType) (*VestingInfo, error) {
	infoKey := vestingKey(vestingInfoPrefix, vestingType)
	infoAsBytes, err := ctx.GetState(infoKey)
	if err != nil {
		return nil, NewCustomError(MissingStorageValue, fmt.Sprintf("failed to get vesting info with Key %s", infoKey), err)
	}
	if infoAsBytes == nil {
		return nil, NewCustomError(MissingVestingType, fmt.Sprintf("vesting info with Key %s does not exist", infoKey), nil)
	}

	var info VestingInfo
	if err := json.Unmarshal(infoAsBytes, &info); err != nil {
		return nil, NewCustomError(InvalidStorageValue, "failed to unmarshal vesting info", err)
	}

	return &info, nil
}

func SetVestingInfo(ctx TransactionContext, info *VestingInfo) error {
	infoKey := vestingKey(vestingInfoPrefix, info.VestingType)
	infoAsBytes, err := json.Marshal(info)
	if err != nil {
		return NewCustomError(InvalidStorageValue, "failed to marshal vesting info", err)
	}

	err = ctx.PutState(infoKey, infoAsBytes)
	if err != nil {
		return NewCustomError(InvalidStorageValue, fmt.Sprintf("failed to set vesting info with Key %s", infoKey), err)
	}

	return nil
}

// FindVestingRecordByAddress returns the record of the first category, in
// declaration order, whose beneficiary is address. It returns nil when the
// address is not a vesting beneficiary.
func FindVestingRecordByAddress(ctx TransactionContext, address string) (*VestingRecord, error) {
	if address == "" {
		return nil, nil
	}
	for _, vestingType := range Categories {
		record, err := GetVestingRecord(ctx, vestingType)
		if err != nil {
			if code, _ := CodeOf(err); code == MissingVestingType {
				continue
			}
			return nil, err
		}
		if record.BeneficiaryAddress == address {
			return record, nil
		}
	}
	return nil, nil
}

func getStringState(ctx TransactionContext, key string) (string, error) {
	valueAsBytes, err := ctx.GetState(key)
	if err != nil {
		return "", NewCustomError(MissingStorageValue, fmt.Sprintf("failed to get state with Key %s", key), err)
	}
	return string(valueAsBytes), nil
}

func putStringState(ctx TransactionContext, key, value string) error {
	if err := ctx.PutState(key, []byte(value)); err != nil {
		return NewCustomError(InvalidStorageValue, fmt.Sprintf("failed to set state with Key %s", key), err)
	}
	return nil
}

func GetContractAddress(ctx TransactionContext) (string, error) {
	return getStringState(ctx, ContractAddressKey)
}

func SetContractAddress(ctx TransactionContext, address string) error {
	return putStringState(ctx, ContractAddressKey, address)
}

// IsInitialized reports whether the bootstrap has already run.
func IsInitialized(ctx TransactionContext) (bool, error) {
	address, err := GetContractAddress(ctx)
	if err != nil {
		return false, err
	}
	return address != "", nil
}

func GetTokenContract(ctx TransactionContext) (string, error) {
	tokenContract, err := getStringState(ctx, TokenContractKey)
	if err != nil {
		return "", err
	}
	if tokenContract == "" {
		return "", ErrMissingTokenContract
	}
	return tokenContract, nil
}

func SetTokenContractAddress(ctx TransactionContext, tokenContract string) error {
	if !IsContractAddressValid(tokenContract) {
		return NewCustomError(InvalidTokenContractPackage, fmt.Sprintf("invalid token contract address %q", tokenContract), nil)
	}
	return putStringState(ctx, TokenContractKey, tokenContract)
}

// GetEventsMode returns the stored events mode, NoEvents when none is set.
func GetEventsMode(ctx TransactionContext) (EventsMode, error) {
	modeAsString, err := getStringState(ctx, EventsModeKey)
	if err != nil {
		return NoEvents, err
	}
	if modeAsString == "" {
		return NoEvents, nil
	}
	mode, err := strconv.ParseUint(modeAsString, 10, 8)
	if err != nil || !EventsMode(mode).valid() {
		return NoEvents, NewCustomError(InvalidEventsMode, fmt.Sprintf("invalid events mode %q", modeAsString), err)
	}
	return EventsMode(mode), nil
}

func SetEventsMode(ctx TransactionContext, mode EventsMode) error {
	if !mode.valid() {
		return NewCustomError(InvalidEventsMode, fmt.Sprintf("invalid events mode %d", mode), nil)
	}
	return putStringState(ctx, EventsModeKey, strconv.FormatUint(uint64(mode), 10))
}

func GetContractVersion(ctx TransactionContext) (string, error) {
	return getStringState(ctx, ContractVersionKey)
}

func SetContractVersion(ctx TransactionContext, version string) error {
	return putStringState(ctx, ContractVersionKey, version)
}
