package vesting

import (
	"fmt"

	"github.com/holiman/uint256"
)

var hundred = uint256.NewInt(100)

type VestingAllocation struct {
	VestingType    VestingType  `json:"vestingType"`
	VestingAddress string       `json:"vestingAddress"`
	VestingAmount  *uint256.Int `json:"vestingAmount"`
}

// CalculateVestingAllocations splits initialSupply across every category by
// its percentage, flooring each share. The rounding residue stays
// unallocated.
func CalculateVestingAllocations(initialSupply *uint256.Int, addresses map[VestingType]string) ([]VestingAllocation, error) {
	allocations := make([]VestingAllocation, 0, len(allocationOrder))
	for _, vestingType := range allocationOrder {
		address, ok := addresses[vestingType]
		if !ok || address == "" {
			return nil, NewCustomError(MissingKey, fmt.Sprintf("no vesting address configured for %s", vestingType), nil)
		}

		amount, err := percentageOf(initialSupply, categoryTable[vestingType].Percentage)
		if err != nil {
			return nil, err
		}

		allocations = append(allocations, VestingAllocation{
			VestingType:    vestingType,
			VestingAddress: address,
			VestingAmount:  amount,
		})
	}
	return allocations, nil
}

func percentageOf(amount *uint256.Int, percentage uint8) (*uint256.Int, error) {
	scaled, overflow := new(uint256.Int).MulOverflow(amount, uint256.NewInt(uint64(percentage)))
	if overflow {
		return nil, NewCustomError(Overflow, fmt.Sprintf("%s * %d overflows 256 bits", amount, percentage), nil)
	}
	return scaled.Div(scaled, hundred), nil
}

// UnallocatedRemainder returns the part of supply no allocation received.
func UnallocatedRemainder(supply *uint256.Int, allocations []VestingAllocation) *uint256.Int {
	distributed := new(uint256.Int)
	for _, allocation := range allocations {
		distributed.Add(distributed, allocation.VestingAmount)
	}
	return saturatingSub(supply, distributed)
}

// TotalSupplyForDecimals scales the fixed token supply to its smallest unit.
func TotalSupplyForDecimals(decimals uint8) (*uint256.Int, error) {
	overflowErr := NewCustomError(Overflow, fmt.Sprintf("total supply with %d decimals overflows 256 bits", decimals), nil)
	// 10^78 no longer fits in 256 bits.
	if decimals > 77 {
		return nil, overflowErr
	}
	scale := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
	supply, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(cowlTokenTotalSupply), scale)
	if overflow {
		return nil, overflowErr
	}
	return supply, nil
}
