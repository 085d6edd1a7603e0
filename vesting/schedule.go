package vesting

import (
	"github.com/holiman/uint256"
)

var periodSeconds = MonthInSeconds

// VestingInfo describes a category: who receives it and how long it is locked.
type VestingInfo struct {
	VestingType     VestingType `json:"vestingType"`
	VestingAddress  string      `json:"vestingAddress,omitempty"`
	VestingDuration *uint64     `json:"vestingDuration,omitempty"`
	VestingPeriod   uint64      `json:"vestingPeriod"`
}

// VestingStatus is the snapshot of a category at a point in time. Durations
// and times are whole seconds.
type VestingStatus struct {
	VestingType               VestingType  `json:"vestingType"`
	TotalAmount               *uint256.Int `json:"totalAmount"`
	VestedAmount              *uint256.Int `json:"vestedAmount"`
	IsFullyVested             bool         `json:"isFullyVested"`
	VestingDuration           uint64       `json:"vestingDuration"`
	StartTime                 uint64       `json:"startTime"`
	TimeUntilNextRelease      uint64       `json:"timeUntilNextRelease"`
	ReleaseAmountPerPeriod    *uint256.Int `json:"releaseAmountPerPeriod"`
	ReleasedAmount            *uint256.Int `json:"releasedAmount"`
	ElapsedPeriods            uint64       `json:"elapsedPeriods"`
	AvailableForReleaseAmount *uint256.Int `json:"availableForReleaseAmount"`
	TotalToReleaseAmount      *uint256.Int `json:"totalToReleaseAmount"`
}

// NewVestingInfo builds the info of a category from its static configuration.
func NewVestingInfo(vestingType VestingType, vestingAddress string) (*VestingInfo, error) {
	cfg, ok := vestingType.Config()
	if !ok {
		return nil, NewCustomError(InvalidVestingType, "unknown vesting type "+vestingType.String(), nil)
	}
	info := &VestingInfo{
		VestingType:    vestingType,
		VestingAddress: vestingAddress,
		VestingPeriod:  periodSeconds,
	}
	if seconds, locked := cfg.DurationSeconds(); locked {
		info.VestingDuration = &seconds
	}
	return info, nil
}

// ComputeStatus derives the status of a category at now. It has no side
// effects; callers decide whether to persist the result.
func ComputeStatus(info *VestingInfo, startTime uint64, totalAmount, releasedAmount *uint256.Int, now uint64) *VestingStatus {
	total := orZero(totalAmount)
	released := orZero(releasedAmount)
	elapsed := elapsedSeconds(startTime, now)

	status := &VestingStatus{
		VestingType:            info.VestingType,
		TotalAmount:            total.Clone(),
		VestedAmount:           new(uint256.Int),
		StartTime:              startTime,
		ReleaseAmountPerPeriod: new(uint256.Int),
		ReleasedAmount:         released.Clone(),
		ElapsedPeriods:         ElapsedPeriods(elapsed),
	}

	if info.VestingDuration == nil {
		// Unlocked categories report fully vested while keeping the vested
		// amount at zero.
		status.IsFullyVested = true
	} else {
		duration := *info.VestingDuration
		status.VestingDuration = duration
		status.VestedAmount = LinearVestedAmount(duration, total, elapsed)
		status.ReleaseAmountPerPeriod = ReleasePerPeriod(total, duration)
		status.IsFullyVested = status.VestedAmount.Eq(total)
		if !status.IsFullyVested {
			status.TimeUntilNextRelease = TimeUntilNextRelease(duration, elapsed)
		}
	}

	var expectedReleased *uint256.Int
	if status.IsFullyVested {
		expectedReleased = total.Clone()
	} else {
		expectedReleased = new(uint256.Int).Mul(status.ReleaseAmountPerPeriod, uint256.NewInt(status.ElapsedPeriods))
	}

	switch {
	case status.IsFullyVested:
		status.AvailableForReleaseAmount = minUint256(saturatingSub(expectedReleased, released), total)
	case !expectedReleased.Lt(released):
		status.AvailableForReleaseAmount = saturatingSub(expectedReleased, released)
	default:
		status.AvailableForReleaseAmount = new(uint256.Int)
	}
	status.TotalToReleaseAmount = saturatingSub(total, released)

	return status
}

// ElapsedPeriods returns the number of whole vesting periods in elapsed.
func ElapsedPeriods(elapsed uint64) uint64 {
	if elapsed < periodSeconds {
		return 0
	}
	return elapsed / periodSeconds
}

// ReleasePerPeriod splits total evenly over the whole periods of duration.
// A duration shorter than one period releases nothing per period.
func ReleasePerPeriod(total *uint256.Int, duration uint64) *uint256.Int {
	periods := duration / periodSeconds
	if periods == 0 || total.IsZero() {
		return new(uint256.Int)
	}
	return new(uint256.Int).Div(total, uint256.NewInt(periods))
}

// LinearVestedAmount is the amount vested after elapsed seconds of a lock of
// duration seconds, released in whole periods.
func LinearVestedAmount(duration uint64, total *uint256.Int, elapsed uint64) *uint256.Int {
	if elapsed == 0 {
		return new(uint256.Int)
	}
	if elapsed >= duration {
		return total.Clone()
	}
	perPeriod := ReleasePerPeriod(total, duration)
	return new(uint256.Int).Mul(perPeriod, uint256.NewInt(elapsed/periodSeconds))
}

// TimeUntilNextRelease returns the seconds left in the current period, or
// zero once the lock has run its course.
func TimeUntilNextRelease(duration, elapsed uint64) uint64 {
	if elapsed >= duration {
		return 0
	}
	return periodSeconds - elapsed%periodSeconds
}

func elapsedSeconds(startTime, now uint64) uint64 {
	if now <= startTime {
		return 0
	}
	return now - startTime
}

func saturatingSub(x, y *uint256.Int) *uint256.Int {
	z, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return new(uint256.Int)
	}
	return z
}

func minUint256(x, y *uint256.Int) *uint256.Int {
	if x.Lt(y) {
		return x.Clone()
	}
	return y.Clone()
}

func orZero(x *uint256.Int) *uint256.Int {
	if x == nil {
		return new(uint256.Int)
	}
	return x
}
