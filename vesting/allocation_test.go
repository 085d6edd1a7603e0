package vesting_test

import (
	"testing"

	"github.com/cowlnetwork/cowl-vesting/vesting"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func beneficiaries() map[vesting.VestingType]string {
	return initializeRequest().VestingAddresses()
}

func TestCalculateVestingAllocations(t *testing.T) {
	t.Parallel()

	supply := uint256.NewInt(1_000_000_007)
	allocations, err := vesting.CalculateVestingAllocations(supply, beneficiaries())
	require.NoError(t, err)
	require.Len(t, allocations, len(vesting.Categories))

	order := make([]vesting.VestingType, 0, len(allocations))
	amounts := map[vesting.VestingType]uint64{}
	for _, allocation := range allocations {
		order = append(order, allocation.VestingType)
		amounts[allocation.VestingType] = allocation.VestingAmount.Uint64()
		require.Equal(t, beneficiaries()[allocation.VestingType], allocation.VestingAddress)
	}

	require.Equal(t, []vesting.VestingType{
		vesting.Liquidity, vesting.Contributor, vesting.Development,
		vesting.Treasury, vesting.Community, vesting.Staking,
	}, order)
	require.Equal(t, map[vesting.VestingType]uint64{
		vesting.Liquidity:   200_000_001,
		vesting.Contributor: 100_000_000,
		vesting.Development: 120_000_000,
		vesting.Treasury:    300_000_002,
		vesting.Community:   280_000_001,
		vesting.Staking:     0,
	}, amounts)

	remainder := vesting.UnallocatedRemainder(supply, allocations)
	require.Equal(t, uint256.NewInt(3), remainder)
}

func TestCalculateVestingAllocationsRemainderBound(t *testing.T) {
	t.Parallel()

	for _, supply := range []uint64{1, 99, 100, 12_345_678_901, 5_500_000_000_000_000_000} {
		allocations, err := vesting.CalculateVestingAllocations(uint256.NewInt(supply), beneficiaries())
		require.NoError(t, err)

		remainder := vesting.UnallocatedRemainder(uint256.NewInt(supply), allocations)
		require.True(t, remainder.Lt(uint256.NewInt(uint64(len(vesting.Categories)))), "supply %d leaves %s", supply, remainder.Dec())
	}
}

func TestCalculateVestingAllocationsMissingAddress(t *testing.T) {
	t.Parallel()

	addresses := beneficiaries()
	delete(addresses, vesting.Development)
	_, err := vesting.CalculateVestingAllocations(uint256.NewInt(100), addresses)
	require.ErrorIs(t, err, vesting.ErrMissingKey)

	addresses = beneficiaries()
	addresses[vesting.Staking] = ""
	_, err = vesting.CalculateVestingAllocations(uint256.NewInt(100), addresses)
	require.ErrorIs(t, err, vesting.ErrMissingKey)
}

func TestCalculateVestingAllocationsOverflow(t *testing.T) {
	t.Parallel()

	maxUint256 := new(uint256.Int).SetAllOne()
	_, err := vesting.CalculateVestingAllocations(maxUint256, beneficiaries())
	require.ErrorIs(t, err, vesting.ErrOverflow)

	// The largest supply that still scales by 30 without overflow.
	limit := new(uint256.Int).Div(maxUint256, uint256.NewInt(30))
	_, err = vesting.CalculateVestingAllocations(limit, beneficiaries())
	require.NoError(t, err)
}

func TestTotalSupplyForDecimals(t *testing.T) {
	t.Parallel()

	supply, err := vesting.TotalSupplyForDecimals(0)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(5_500_000_000), supply)

	supply, err = vesting.TotalSupplyForDecimals(18)
	require.NoError(t, err)
	require.Equal(t, "5500000000000000000000000000", supply.Dec())

	_, err = vesting.TotalSupplyForDecimals(67)
	require.NoError(t, err)

	for _, decimals := range []uint8{68, 77, 78, 255} {
		_, err = vesting.TotalSupplyForDecimals(decimals)
		require.ErrorIs(t, err, vesting.ErrOverflow, "decimals %d", decimals)
	}
}

func TestPercentagesSumToHundred(t *testing.T) {
	t.Parallel()

	var total uint
	for _, vestingType := range vesting.Categories {
		cfg, ok := vestingType.Config()
		require.True(t, ok)
		total += uint(cfg.Percentage)
	}
	require.Equal(t, uint(100), total)
}
