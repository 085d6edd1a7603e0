package vesting

import (
	"fmt"

	"github.com/holiman/uint256"
)

// InitializeRequest carries the bootstrap arguments. TotalSupply is a
// decimal amount; when empty the fixed supply is scaled by the token
// decimals.
type InitializeRequest struct {
	ContractAddress string   `json:"contractAddress"`
	TokenContract   string   `json:"tokenContract"`
	TotalSupply     string   `json:"totalSupply,omitempty" metadata:",optional"`
	Treasury        string   `json:"treasury"`
	Contributor     string   `json:"contributor"`
	Development     string   `json:"development"`
	Liquidity       string   `json:"liquidity"`
	Community       string   `json:"community"`
	Staking         string   `json:"staking"`
	AdminList       []string `json:"adminList,omitempty" metadata:",optional"`
	NoneList        []string `json:"noneList,omitempty" metadata:",optional"`
	EventsEnabled   bool     `json:"eventsEnabled,omitempty" metadata:",optional"`
}

// VestingAddresses maps every category to its configured beneficiary.
func (r InitializeRequest) VestingAddresses() map[VestingType]string {
	return map[VestingType]string{
		Treasury:    r.Treasury,
		Contributor: r.Contributor,
		Development: r.Development,
		Liquidity:   r.Liquidity,
		Community:   r.Community,
		Staking:     r.Staking,
	}
}

func validateInitializeRequest(req InitializeRequest) error {
	if !IsContractAddressValid(req.ContractAddress) {
		return ErrInvalidAddress("contractAddress", req.ContractAddress)
	}
	if !IsContractAddressValid(req.TokenContract) {
		return NewCustomError(InvalidTokenContractPackage, fmt.Sprintf("invalid token contract address %q", req.TokenContract), nil)
	}

	addresses := req.VestingAddresses()
	for _, vestingType := range Categories {
		address := addresses[vestingType]
		if address == "" {
			return NewCustomError(MissingKey, fmt.Sprintf("no vesting address configured for %s", vestingType), nil)
		}
		if !IsAddressValid(address) {
			return ErrInvalidAddress(vestingType.String(), address)
		}
	}

	for _, admin := range req.AdminList {
		if !IsPrincipalValid(admin) {
			return NewCustomError(InvalidAdminList, fmt.Sprintf("invalid admin %q", admin), nil)
		}
	}
	for _, none := range req.NoneList {
		if !IsPrincipalValid(none) {
			return NewCustomError(InvalidNoneList, fmt.Sprintf("invalid principal %q", none), nil)
		}
	}
	return nil
}

func resolveInitialSupply(token Token, totalSupply string) (*uint256.Int, error) {
	if totalSupply != "" {
		supply, err := ParseAmount("totalSupply", totalSupply)
		if err != nil {
			return nil, err
		}
		if supply.IsZero() {
			return nil, ErrInvalidAmount("totalSupply", totalSupply)
		}
		return supply, nil
	}

	decimals, err := token.Decimals()
	if err != nil {
		return nil, err
	}
	return TotalSupplyForDecimals(decimals)
}

// setAllocations moves each allocation out of the pool, checks the
// beneficiary holds exactly that amount afterwards and seeds the record and
// status of the category. Zero allocations are checked too.
func setAllocations(ctx TransactionContext, token Token, allocations []VestingAllocation, startTime uint64) error {
	for _, allocation := range allocations {
		log := categoryLogger(allocation.VestingType).WithField("amount", allocation.VestingAmount.Dec())

		if !allocation.VestingAmount.IsZero() {
			if err := token.Transfer(allocation.VestingAddress, allocation.VestingAmount); err != nil {
				return err
			}
		}
		balance, err := token.BalanceOf(allocation.VestingAddress)
		if err != nil {
			return err
		}
		if !balance.Eq(allocation.VestingAmount) {
			return NewCustomError(InvalidRecepientAllocation,
				fmt.Sprintf("%s holds %s after receiving %s for %s", allocation.VestingAddress, balance.Dec(), allocation.VestingAmount.Dec(), allocation.VestingType), nil)
		}

		record := &VestingRecord{
			VestingType:        allocation.VestingType,
			BeneficiaryAddress: allocation.VestingAddress,
			StartTime:          startTime,
			TotalAllocated:     allocation.VestingAmount.Clone(),
			ReleasedAmount:     new(uint256.Int),
		}
		if err := SetVestingRecord(ctx, record); err != nil {
			return err
		}
		if _, err := refreshStatus(ctx, record, startTime); err != nil {
			return err
		}

		log.Info("vesting allocation distributed")
	}
	return nil
}

func setVestingInfos(ctx TransactionContext, addresses map[VestingType]string) error {
	for _, vestingType := range Categories {
		info, err := NewVestingInfo(vestingType, addresses[vestingType])
		if err != nil {
			return err
		}
		if err := SetVestingInfo(ctx, info); err != nil {
			return err
		}
	}
	return nil
}

// checkInstallerSupply requires the token supply to match what was minted
// and the pool to be fully drained.
func checkInstallerSupply(token Token, contractAddress string, minted *uint256.Int) error {
	totalSupply, err := token.TotalSupply()
	if err != nil {
		return err
	}
	if !totalSupply.Eq(minted) {
		return NewCustomError(InvalidInstallerTotalSupply, fmt.Sprintf("token total supply %s differs from minted %s", totalSupply.Dec(), minted.Dec()), nil)
	}

	remaining, err := token.BalanceOf(contractAddress)
	if err != nil {
		return err
	}
	if !remaining.IsZero() {
		return NewCustomError(InvalidInstallerTotalSupply, fmt.Sprintf("%s left undistributed in %s", remaining.Dec(), contractAddress), nil)
	}
	return nil
}

func installRoles(ctx TransactionContext, caller Caller, adminList, noneList []string) error {
	if len(adminList) == 0 {
		adminList = []string{caller.ID}
	}
	for _, admin := range adminList {
		if err := setSecurityBadge(ctx, admin, Admin); err != nil {
			return err
		}
	}
	for _, none := range noneList {
		if err := setSecurityBadge(ctx, none, None); err != nil {
			return err
		}
	}
	return nil
}

// refreshStatus computes the status of record at now and writes it to the
// status cache.
func refreshStatus(ctx TransactionContext, record *VestingRecord, now uint64) (*VestingStatus, error) {
	info, err := NewVestingInfo(record.VestingType, record.BeneficiaryAddress)
	if err != nil {
		return nil, err
	}
	status := ComputeStatus(info, record.StartTime, record.TotalAllocated, record.ReleasedAmount, now)
	if err := SetVestingStatus(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}
