package vesting_test

import (
	"testing"

	"github.com/cowlnetwork/cowl-vesting/vesting"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func infoFor(t *testing.T, vestingType vesting.VestingType) *vesting.VestingInfo {
	t.Helper()
	info, err := vesting.NewVestingInfo(vestingType, "")
	require.NoError(t, err)
	return info
}

func TestComputeStatusLockedCategory(t *testing.T) {
	t.Parallel()

	info := infoFor(t, vesting.Contributor)
	total := uint256.NewInt(1_200_000)
	month := vesting.MonthInSeconds

	tests := []struct {
		name          string
		elapsed       uint64
		released      uint64
		vested        uint64
		available     uint64
		periods       uint64
		untilNext     uint64
		isFullyVested bool
	}{
		{name: "at start", elapsed: 0, vested: 0, available: 0, periods: 0, untilNext: month},
		{name: "inside first period", elapsed: month - 1, vested: 0, available: 0, periods: 0, untilNext: 1},
		{name: "one period", elapsed: month, vested: 100_000, available: 100_000, periods: 1, untilNext: month},
		{name: "one period released", elapsed: month + 10, released: 100_000, vested: 100_000, available: 0, periods: 1, untilNext: month - 10},
		{name: "over released", elapsed: 2 * month, released: 500_000, vested: 200_000, available: 0, periods: 2},
		{name: "eleven periods", elapsed: 11 * month, released: 300_000, vested: 1_100_000, available: 800_000, periods: 11, untilNext: month},
		{name: "fully vested", elapsed: vesting.YearInSeconds, released: 300_000, vested: 1_200_000, available: 900_000, periods: 12, isFullyVested: true},
		{name: "long after", elapsed: 5 * vesting.YearInSeconds, vested: 1_200_000, available: 1_200_000, periods: 60, isFullyVested: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status := vesting.ComputeStatus(info, StartTime, total, uint256.NewInt(tt.released), StartTime+tt.elapsed)

			require.Equal(t, vesting.Contributor, status.VestingType)
			require.Equal(t, vesting.YearInSeconds, status.VestingDuration)
			require.Equal(t, StartTime, status.StartTime)
			require.Equal(t, uint256.NewInt(100_000), status.ReleaseAmountPerPeriod)
			require.Equal(t, uint256.NewInt(tt.vested), status.VestedAmount)
			require.Equal(t, uint256.NewInt(tt.available), status.AvailableForReleaseAmount)
			require.Equal(t, tt.periods, status.ElapsedPeriods)
			require.Equal(t, tt.isFullyVested, status.IsFullyVested)
			if tt.isFullyVested {
				require.Zero(t, status.TimeUntilNextRelease)
			} else if tt.released <= tt.vested {
				require.Equal(t, tt.untilNext, status.TimeUntilNextRelease)
			}
			require.Equal(t, uint256.NewInt(1_200_000-min(tt.released, 1_200_000)), status.TotalToReleaseAmount)
		})
	}
}

func TestComputeStatusUnlockedCategory(t *testing.T) {
	t.Parallel()

	info := infoFor(t, vesting.Liquidity)
	total := uint256.NewInt(2_400_000)

	for _, elapsed := range []uint64{0, 1, vesting.MonthInSeconds, 10 * vesting.YearInSeconds} {
		status := vesting.ComputeStatus(info, StartTime, total, uint256.NewInt(400_000), StartTime+elapsed)

		require.True(t, status.IsFullyVested)
		require.True(t, status.VestedAmount.IsZero())
		require.Zero(t, status.VestingDuration)
		require.Zero(t, status.TimeUntilNextRelease)
		require.True(t, status.ReleaseAmountPerPeriod.IsZero())
		require.Equal(t, uint256.NewInt(2_000_000), status.AvailableForReleaseAmount)
		require.Equal(t, uint256.NewInt(2_000_000), status.TotalToReleaseAmount)
	}
}

func TestComputeStatusClockBeforeStart(t *testing.T) {
	t.Parallel()

	status := vesting.ComputeStatus(infoFor(t, vesting.Treasury), StartTime, uint256.NewInt(48_000), nil, StartTime-100)
	require.Zero(t, status.ElapsedPeriods)
	require.True(t, status.VestedAmount.IsZero())
	require.True(t, status.ReleasedAmount.IsZero())
	require.Equal(t, vesting.MonthInSeconds, status.TimeUntilNextRelease)
}

func TestComputeStatusZeroTotal(t *testing.T) {
	t.Parallel()

	status := vesting.ComputeStatus(infoFor(t, vesting.Community), StartTime, new(uint256.Int), new(uint256.Int), StartTime+vesting.MonthInSeconds)
	require.True(t, status.ReleaseAmountPerPeriod.IsZero())
	require.True(t, status.VestedAmount.IsZero())
	require.True(t, status.IsFullyVested)
	require.True(t, status.AvailableForReleaseAmount.IsZero())
}

func TestVestedAmountProperties(t *testing.T) {
	t.Parallel()

	totals := []*uint256.Int{
		uint256.NewInt(1),
		uint256.NewInt(47),
		uint256.NewInt(1_200_000),
		uint256.NewInt(1_650_000_000_000_000_001),
		new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 255), uint256.NewInt(3)),
	}
	durations := []uint64{vesting.YearInSeconds, 4 * vesting.YearInSeconds, vesting.MonthInSeconds / 2, vesting.MonthInSeconds + 1}

	for _, total := range totals {
		for _, duration := range durations {
			require.True(t, vesting.LinearVestedAmount(duration, total, 0).IsZero())
			require.Equal(t, total, vesting.LinearVestedAmount(duration, total, duration))
			require.Equal(t, total, vesting.LinearVestedAmount(duration, total, duration+vesting.MonthInSeconds))

			perPeriod := vesting.ReleasePerPeriod(total, duration)
			allPeriods := new(uint256.Int).Mul(perPeriod, uint256.NewInt(duration/vesting.MonthInSeconds))
			require.False(t, allPeriods.Gt(total))

			previous := new(uint256.Int)
			for elapsed := uint64(0); elapsed <= duration+vesting.MonthInSeconds; elapsed += vesting.MonthInSeconds / 4 {
				vested := vesting.LinearVestedAmount(duration, total, elapsed)
				require.False(t, vested.Lt(previous), "vested amount decreased at %d", elapsed)
				if elapsed >= duration {
					require.True(t, vested.Eq(total))
				} else if duration%vesting.MonthInSeconds == 0 {
					require.True(t, vested.Lt(total), "fully vested early at %d", elapsed)
				}
				previous = vested
			}
		}
	}
}

func TestAvailablePlusReleasedNeverExceedsTotal(t *testing.T) {
	t.Parallel()

	info := infoFor(t, vesting.Treasury)
	total := uint256.NewInt(7_777_777)
	released := new(uint256.Int)

	for now := StartTime; now < StartTime+4*vesting.YearInSeconds; now += vesting.MonthInSeconds / 3 {
		status := vesting.ComputeStatus(info, StartTime, total, released, now)
		require.False(t, status.IsFullyVested)

		sum := new(uint256.Int).Add(status.AvailableForReleaseAmount, released)
		require.False(t, sum.Gt(total))

		// Release half of what is available each step.
		released = new(uint256.Int).Add(released, new(uint256.Int).Rsh(status.AvailableForReleaseAmount, 1))
	}
}

func TestReleasePerPeriodShortDuration(t *testing.T) {
	t.Parallel()

	require.True(t, vesting.ReleasePerPeriod(uint256.NewInt(1_000), vesting.MonthInSeconds-1).IsZero())
	require.Equal(t, uint256.NewInt(1_000), vesting.ReleasePerPeriod(uint256.NewInt(1_000), vesting.MonthInSeconds))
	require.Equal(t, uint256.NewInt(20), vesting.ReleasePerPeriod(uint256.NewInt(1_000), 48*vesting.MonthInSeconds))
}

func TestTimeUntilNextRelease(t *testing.T) {
	t.Parallel()

	duration := vesting.YearInSeconds
	require.Equal(t, vesting.MonthInSeconds, vesting.TimeUntilNextRelease(duration, 0))
	require.Equal(t, uint64(1), vesting.TimeUntilNextRelease(duration, vesting.MonthInSeconds-1))
	require.Equal(t, vesting.MonthInSeconds, vesting.TimeUntilNextRelease(duration, 3*vesting.MonthInSeconds))
	require.Zero(t, vesting.TimeUntilNextRelease(duration, duration))
	require.Zero(t, vesting.TimeUntilNextRelease(duration, duration+5))
}

func TestElapsedPeriods(t *testing.T) {
	t.Parallel()

	require.Zero(t, vesting.ElapsedPeriods(0))
	require.Zero(t, vesting.ElapsedPeriods(vesting.MonthInSeconds-1))
	require.Equal(t, uint64(1), vesting.ElapsedPeriods(vesting.MonthInSeconds))
	require.Equal(t, uint64(12), vesting.ElapsedPeriods(vesting.YearInSeconds))
}

func TestNewVestingInfo(t *testing.T) {
	t.Parallel()

	info, err := vesting.NewVestingInfo(vesting.Community, CommunityAddress)
	require.NoError(t, err)
	require.Equal(t, CommunityAddress, info.VestingAddress)
	require.Equal(t, 4*vesting.YearInSeconds, *info.VestingDuration)
	require.Equal(t, uint64(2_628_000), info.VestingPeriod)

	_, err = vesting.NewVestingInfo(vesting.VestingType(5), "")
	requireCode(t, err, vesting.InvalidVestingType)
}
