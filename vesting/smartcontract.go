package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/sirupsen/logrus"
)

type SmartContract struct {
	contractapi.Contract
}

func (s *SmartContract) Initialize(ctx contractapi.TransactionContextInterface, request InitializeRequest) error {
	tx := FromContractContext(ctx)
	caller, err := GetVerifiedCaller(tx)
	if err != nil {
		return err
	}
	return Bootstrap(tx, caller, NewTokenContract(tx, request.TokenContract), request)
}

func (s *SmartContract) VestingStatus(ctx contractapi.TransactionContextInterface, vestingType string) (string, error) {
	parsed, err := ParseVestingType(vestingType)
	if err != nil {
		return "", err
	}
	status, err := QueryStatus(FromContractContext(ctx), parsed)
	if err != nil {
		return "", err
	}
	return marshalResult(status)
}

func (s *SmartContract) VestingInfo(ctx contractapi.TransactionContextInterface, vestingType string) (string, error) {
	parsed, err := ParseVestingType(vestingType)
	if err != nil {
		return "", err
	}
	info, err := QueryInfo(FromContractContext(ctx), parsed)
	if err != nil {
		return "", err
	}
	return marshalResult(info)
}

func (s *SmartContract) CheckVestingTransfer(ctx contractapi.TransactionContextInterface, operator, from, to, amount, data string) (uint8, error) {
	result, err := CheckTransfer(FromContractContext(ctx), operator, from, to, amount, data)
	return uint8(result), err
}

func (s *SmartContract) ChangeSecurity(ctx contractapi.TransactionContextInterface, adminList, noneList []string) error {
	tx := FromContractContext(ctx)
	caller, err := GetVerifiedCaller(tx)
	if err != nil {
		return err
	}
	return ChangeSecurity(tx, caller, adminList, noneList)
}

func (s *SmartContract) SetModalities(ctx contractapi.TransactionContextInterface, eventsEnabled bool) error {
	tx := FromContractContext(ctx)
	caller, err := GetVerifiedCaller(tx)
	if err != nil {
		return err
	}
	return UpdateModalities(tx, caller, eventsEnabled)
}

func (s *SmartContract) SetTokenContract(ctx contractapi.TransactionContextInterface, tokenContract string) error {
	tx := FromContractContext(ctx)
	caller, err := GetVerifiedCaller(tx)
	if err != nil {
		return err
	}
	return UpdateTokenContract(tx, caller, tokenContract)
}

func (s *SmartContract) Upgrade(ctx contractapi.TransactionContextInterface, version string) error {
	tx := FromContractContext(ctx)
	caller, err := GetVerifiedCaller(tx)
	if err != nil {
		return err
	}
	return RecordUpgrade(tx, caller, version)
}

func marshalResult(v interface{}) (string, error) {
	resultJSON, err := json.Marshal(v)
	if err != nil {
		return "", NewCustomError(InvalidStorageValue, "failed to marshal result", err)
	}
	return string(resultJSON), nil
}

// Bootstrap mints the supply, distributes it across the categories and
// installs the initial roles. It runs once; any failure aborts the whole
// transaction. Only the installer may run it.
func Bootstrap(ctx TransactionContext, caller Caller, token Token, req InitializeRequest) error {
	if caller.ID != installerAddress {
		return NewCustomError(InsufficientRights, fmt.Sprintf("only the installer can initialize the contract, not %s", caller.ID), nil)
	}
	initialized, err := IsInitialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		return ErrContractAlreadyInitialized
	}
	if err := validateInitializeRequest(req); err != nil {
		return err
	}

	supply, err := resolveInitialSupply(token, req.TotalSupply)
	if err != nil {
		return err
	}
	addresses := req.VestingAddresses()
	allocations, err := CalculateVestingAllocations(supply, addresses)
	if err != nil {
		return err
	}

	log := Logger.WithFields(logrus.Fields{
		"caller":          caller.ID,
		"contractAddress": req.ContractAddress,
		"tokenContract":   req.TokenContract,
		"totalSupply":     supply.Dec(),
	})
	log.Info("initializing vesting contract")

	if err := token.ChangeSecurity([]string{req.ContractAddress}, nil); err != nil {
		return err
	}
	if err := token.Mint(req.ContractAddress, supply); err != nil {
		return err
	}

	now, err := Now(ctx)
	if err != nil {
		return err
	}
	if err := setAllocations(ctx, token, allocations, now); err != nil {
		return err
	}
	if err := setVestingInfos(ctx, addresses); err != nil {
		return err
	}
	if err := checkInstallerSupply(token, req.ContractAddress, supply); err != nil {
		log.WithError(err).Error("installer supply check failed")
		return err
	}

	if err := token.SetTransferFilter(req.ContractAddress, checkTransferMethod); err != nil {
		return err
	}
	if err := token.ChangeSecurity(nil, []string{req.ContractAddress}); err != nil {
		return err
	}

	if err := installRoles(ctx, caller, req.AdminList, req.NoneList); err != nil {
		return err
	}
	mode := NoEvents
	if req.EventsEnabled {
		mode = Emit
	}
	if err := SetEventsMode(ctx, mode); err != nil {
		return err
	}
	if err := SetTokenContractAddress(ctx, req.TokenContract); err != nil {
		return err
	}
	if err := SetContractAddress(ctx, req.ContractAddress); err != nil {
		return err
	}

	log.Info("vesting contract initialized")
	return nil
}

// CheckTransfer decides whether from may move amount. Addresses that are not
// vesting beneficiaries always proceed. A permitted amount within the
// available release advances the released counter. It only runs as the
// transfer filter of the configured token contract.
func CheckTransfer(ctx TransactionContext, operator, from, to, amount, data string) (TransferFilterResult, error) {
	if err := requireTokenContract(ctx); err != nil {
		return DenyTransfer, err
	}
	requested, err := ParseAmount("amount", amount)
	if err != nil {
		return DenyTransfer, err
	}

	result, err := checkTransfer(ctx, from, requested)
	if err != nil {
		return DenyTransfer, err
	}

	if err := EmitCheckTransfer(ctx, operator, from, to, amount, data, result); err != nil {
		return DenyTransfer, err
	}
	return result, nil
}

func requireTokenContract(ctx TransactionContext) error {
	tokenContract, err := GetTokenContract(ctx)
	if err != nil {
		return err
	}
	invoked, err := InvokedChaincode(ctx)
	if err != nil {
		return err
	}
	if invoked != tokenContract {
		Logger.WithField("invoked", invoked).Warn("transfer check outside the token contract")
		return ErrNotTokenContract
	}
	return nil
}

func checkTransfer(ctx TransactionContext, from string, requested *uint256.Int) (TransferFilterResult, error) {
	record, err := FindVestingRecordByAddress(ctx, from)
	if err != nil {
		return DenyTransfer, err
	}
	if record == nil {
		return ProceedTransfer, nil
	}

	now, err := Now(ctx)
	if err != nil {
		return DenyTransfer, err
	}
	status, err := refreshStatus(ctx, record, now)
	if err != nil {
		return DenyTransfer, err
	}

	log := categoryLogger(record.VestingType).WithFields(logrus.Fields{
		"from":      from,
		"amount":    requested.Dec(),
		"available": status.AvailableForReleaseAmount.Dec(),
	})

	switch {
	case !requested.Gt(status.AvailableForReleaseAmount):
		released, overflow := new(uint256.Int).AddOverflow(record.ReleasedAmount, requested)
		if overflow {
			return DenyTransfer, NewCustomError(Overflow, fmt.Sprintf("released amount of %s overflows", record.VestingType), nil)
		}
		record.ReleasedAmount = released
		if err := SetVestingRecord(ctx, record); err != nil {
			return DenyTransfer, err
		}
		if _, err := refreshStatus(ctx, record, now); err != nil {
			return DenyTransfer, err
		}
		log.Info("vesting transfer released")
		return ProceedTransfer, nil
	case status.IsFullyVested:
		log.Debug("vesting transfer allowed on fully vested category")
		return ProceedTransfer, nil
	default:
		log.Info("vesting transfer denied")
		return DenyTransfer, nil
	}
}

// QueryStatus recomputes the status of a category and refreshes its cache.
func QueryStatus(ctx TransactionContext, vestingType VestingType) (*VestingStatus, error) {
	if _, ok := vestingType.Config(); !ok {
		return nil, NewCustomError(InvalidVestingType, fmt.Sprintf("unknown vesting type id %d", uint8(vestingType)), nil)
	}
	record, err := GetVestingRecord(ctx, vestingType)
	if err != nil {
		return nil, err
	}
	now, err := Now(ctx)
	if err != nil {
		return nil, err
	}
	return refreshStatus(ctx, record, now)
}

// QueryInfo returns the beneficiary and lock of a category. Before the
// bootstrap the info carries no beneficiary and nothing is cached.
func QueryInfo(ctx TransactionContext, vestingType VestingType) (*VestingInfo, error) {
	record, err := GetVestingRecord(ctx, vestingType)
	if err != nil {
		if code, _ := CodeOf(err); code == MissingVestingType {
			return NewVestingInfo(vestingType, "")
		}
		return nil, err
	}

	info, err := NewVestingInfo(vestingType, record.BeneficiaryAddress)
	if err != nil {
		return nil, err
	}
	if err := SetVestingInfo(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func UpdateModalities(ctx TransactionContext, caller Caller, eventsEnabled bool) error {
	if err := RequireRole(ctx, caller, Admin); err != nil {
		return err
	}

	mode := NoEvents
	if eventsEnabled {
		mode = Emit
	}
	if err := SetEventsMode(ctx, mode); err != nil {
		return err
	}

	Logger.WithField("caller", caller.ID).WithField("eventsMode", mode).Info("events mode updated")
	return EmitSetModalities(ctx, mode)
}

func UpdateTokenContract(ctx TransactionContext, caller Caller, tokenContract string) error {
	if err := RequireRole(ctx, caller, Admin); err != nil {
		return err
	}
	if err := SetTokenContractAddress(ctx, tokenContract); err != nil {
		return err
	}

	Logger.WithField("caller", caller.ID).WithField("tokenContract", tokenContract).Info("token contract updated")
	return EmitTokenContractUpdate(ctx, tokenContract)
}

// RecordUpgrade stores the version the contract was upgraded to.
func RecordUpgrade(ctx TransactionContext, caller Caller, version string) error {
	if err := RequireRole(ctx, caller, Admin); err != nil {
		return err
	}
	if version == "" {
		return NewCustomError(MissingContractHash, "upgrade version is empty", nil)
	}
	if err := SetContractVersion(ctx, version); err != nil {
		return err
	}

	Logger.WithField("caller", caller.ID).WithField("version", version).Info("contract upgraded")
	return EmitUpgrade(ctx, version)
}
