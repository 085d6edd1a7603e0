package vesting

import (
	"fmt"
	"time"
)

type VestingType uint8

const (
	Treasury    VestingType = 0
	Contributor VestingType = 1
	Development VestingType = 2
	Liquidity   VestingType = 3
	Community   VestingType = 4
	Staking     VestingType = 128
)

type EventsMode uint8

const (
	NoEvents EventsMode = 0
	Emit     EventsMode = 1
)

type TransferFilterResult uint8

const (
	DenyTransfer TransferFilterResult = iota
	ProceedTransfer
)

const (
	// Token units, scaled by the token decimals at bootstrap.
	cowlTokenTotalSupply = 5_500_000_000

	// Only this signer may bootstrap the contract.
	installerAddress = "0b87970433b22494faff1cc7a819e71bddc7880c"

	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`
	hexAddressRegex      = `^[0-9a-fA-F]{40}$`
	mspIDRegex           = `^[A-Za-z0-9][A-Za-z0-9.-]*MSP$`

	checkTransferMethod = "CheckVestingTransfer"

	// State keys
	ContractAddressKey = "contract_address"
	TokenContractKey   = "token_contract"
	EventsModeKey      = "events_mode"
	ContractVersionKey = "contract_version"

	vestingRecordPrefix = "vesting_record"
	vestingStatusPrefix = "vesting_status"
	vestingInfoPrefix   = "vesting_info"
	securityBadgePrefix = "security_badges"

	// Events Keys
	ChangeSecurityEvent      = "ChangeSecurity"
	SetModalitiesEvent       = "SetModalities"
	UpgradeEvent             = "Upgrade"
	CheckTransferEvent       = "CheckTransfer"
	TokenContractUpdateEvent = "TokenContractUpdate"
)

const (
	HourInSeconds  uint64 = 60 * 60
	YearInSeconds  uint64 = 365 * 24 * HourInSeconds
	MonthInSeconds uint64 = YearInSeconds / 12
)

// CategoryConfig is the static configuration of a vesting category. A nil
// Duration means the category is not locked.
type CategoryConfig struct {
	Type       VestingType
	Percentage uint8
	Duration   *time.Duration
}

func lockFor(d time.Duration) *time.Duration {
	return &d
}

var (
	oneYear   = time.Duration(YearInSeconds) * time.Second
	fourYears = 4 * oneYear
)

// Categories lists every category in declaration order. Beneficiary lookups
// walk this order and stop at the first match.
var Categories = []VestingType{Treasury, Contributor, Development, Liquidity, Community, Staking}

var categoryTable = map[VestingType]CategoryConfig{
	Treasury:    {Type: Treasury, Percentage: 30, Duration: lockFor(fourYears)},
	Contributor: {Type: Contributor, Percentage: 10, Duration: lockFor(oneYear)},
	Development: {Type: Development, Percentage: 12, Duration: lockFor(oneYear)},
	Liquidity:   {Type: Liquidity, Percentage: 20},
	Community:   {Type: Community, Percentage: 28, Duration: lockFor(fourYears)},
	Staking:     {Type: Staking, Percentage: 0},
}

// allocationOrder is the order in which the supply is split and distributed.
var allocationOrder = []VestingType{Liquidity, Contributor, Development, Treasury, Community, Staking}

func init() {
	if err := validatePercentages(); err != nil {
		panic(err)
	}
}

func validatePercentages() error {
	var total uint
	for _, vestingType := range allocationOrder {
		total += uint(categoryTable[vestingType].Percentage)
	}
	if total != 100 {
		return fmt.Errorf("vesting percentages sum to %d, expected 100", total)
	}
	return nil
}

// Config returns the static configuration of the category.
func (t VestingType) Config() (CategoryConfig, bool) {
	cfg, ok := categoryTable[t]
	return cfg, ok
}

// DurationSeconds returns the lock duration in whole seconds and whether the
// category is locked at all.
func (c CategoryConfig) DurationSeconds() (uint64, bool) {
	if c.Duration == nil {
		return 0, false
	}
	return uint64(*c.Duration / time.Second), true
}

func (t VestingType) String() string {
	switch t {
	case Treasury:
		return "Treasury"
	case Contributor:
		return "Contributor"
	case Development:
		return "Development"
	case Liquidity:
		return "Liquidity"
	case Community:
		return "Community"
	case Staking:
		return "Staking"
	}
	return fmt.Sprintf("VestingType(%d)", uint8(t))
}

func ParseVestingType(name string) (VestingType, error) {
	for _, vestingType := range Categories {
		if vestingType.String() == name {
			return vestingType, nil
		}
	}
	return 0, NewCustomError(InvalidVestingType, fmt.Sprintf("unknown vesting type %q", name), nil)
}

func (t VestingType) MarshalText() ([]byte, error) {
	if _, ok := categoryTable[t]; !ok {
		return nil, NewCustomError(InvalidVestingType, fmt.Sprintf("unknown vesting type id %d", uint8(t)), nil)
	}
	return []byte(t.String()), nil
}

func (t *VestingType) UnmarshalText(text []byte) error {
	vestingType, err := ParseVestingType(string(text))
	if err != nil {
		return err
	}
	*t = vestingType
	return nil
}

func (m EventsMode) valid() bool {
	return m == NoEvents || m == Emit
}

func (r TransferFilterResult) String() string {
	if r == ProceedTransfer {
		return "ProceedTransfer"
	}
	return "DenyTransfer"
}
