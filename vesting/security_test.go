package vesting_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/cowlnetwork/cowl-vesting/vesting"
	"github.com/stretchr/testify/require"
)

func grant(t *testing.T, c *chain, principal string, badge vesting.SecurityBadge) {
	t.Helper()
	c.worldState["security_badges_"+principal] = []byte(strconv.FormatUint(uint64(badge), 10))
}

func requireBadge(t *testing.T, c *chain, principal string, want vesting.SecurityBadge) {
	t.Helper()
	badge, found, err := vesting.GetSecurityBadge(c.ctx, principal)
	require.NoError(t, err)
	require.True(t, found, "no badge for %s", principal)
	require.Equal(t, want, badge)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	const contractCaller = "klp-0a1b2c-cc"

	tests := []struct {
		name      string
		setup     func(*testing.T, *chain)
		caller    vesting.Caller
		shouldErr bool
	}{
		{
			name:   "Success - direct admin",
			setup:  func(t *testing.T, c *chain) {},
			caller: vesting.Caller{ID: AdminAddress},
		},
		{
			name: "Success - admin package",
			setup: func(t *testing.T, c *chain) {
				grant(t, c, "TrustedOrgMSP", vesting.Admin)
			},
			caller: vesting.Caller{ID: contractCaller, Package: "TrustedOrgMSP"},
		},
		{
			name: "Failure - direct badge wins over package",
			setup: func(t *testing.T, c *chain) {
				grant(t, c, contractCaller, vesting.None)
				grant(t, c, "TrustedOrgMSP", vesting.Admin)
			},
			caller:    vesting.Caller{ID: contractCaller, Package: "TrustedOrgMSP"},
			shouldErr: true,
		},
		{
			name: "Failure - demoted admin",
			setup: func(t *testing.T, c *chain) {
				grant(t, c, AdminAddress, vesting.None)
			},
			caller:    vesting.Caller{ID: AdminAddress},
			shouldErr: true,
		},
		{
			name:      "Failure - unknown caller",
			setup:     func(t *testing.T, c *chain) {},
			caller:    vesting.Caller{ID: OutsiderAddress, Package: "OutsiderOrgMSP"},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newChain(t)
			grant(t, c, AdminAddress, vesting.Admin)
			tt.setup(t, c)

			err := vesting.RequireRole(c.ctx, tt.caller, vesting.Admin)
			if tt.shouldErr {
				require.ErrorIs(t, err, vesting.ErrInsufficientRights)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetSecurityBadgeCorrupted(t *testing.T) {
	t.Parallel()

	c := newChain(t)
	c.worldState["security_badges_"+AdminAddress] = []byte("7")

	_, _, err := vesting.GetSecurityBadge(c.ctx, AdminAddress)
	requireCode(t, err, vesting.InvalidStorageValue)
}

func TestChangeSecurity(t *testing.T) {
	t.Parallel()

	c := newChain(t)
	grant(t, c, AdminAddress, vesting.Admin)
	require.NoError(t, vesting.SetEventsMode(c.ctx, vesting.Emit))

	err := vesting.ChangeSecurity(c.ctx, c.caller(),
		[]string{TreasuryAddress, CommunityAddress, AdminAddress},
		[]string{CommunityAddress, AdminAddress, StakingAddress},
	)
	require.NoError(t, err)

	requireBadge(t, c, TreasuryAddress, vesting.Admin)
	// Listed in both: the none list is applied last.
	requireBadge(t, c, CommunityAddress, vesting.None)
	requireBadge(t, c, StakingAddress, vesting.None)
	// The caller never changes its own badge.
	requireBadge(t, c, AdminAddress, vesting.Admin)

	var event vesting.ChangeSecurityEventData
	require.NoError(t, json.Unmarshal(c.events[vesting.ChangeSecurityEvent], &event))
	require.Equal(t, AdminAddress, event.Admin)
	require.Equal(t, []vesting.BadgeChange{
		{Principal: TreasuryAddress, Badge: vesting.Admin},
		{Principal: CommunityAddress, Badge: vesting.None},
		{Principal: StakingAddress, Badge: vesting.None},
	}, event.Changes)

	// The new admin can now act.
	SetUserID(c.ctx, TreasuryAddress)
	require.NoError(t, vesting.ChangeSecurity(c.ctx, c.caller(), nil, []string{AdminAddress}))
	requireBadge(t, c, AdminAddress, vesting.None)
}

func TestChangeSecurityInvalidLists(t *testing.T) {
	t.Parallel()

	c := newChain(t)
	grant(t, c, AdminAddress, vesting.Admin)

	err := vesting.ChangeSecurity(c.ctx, c.caller(), []string{"not-an-address"}, nil)
	requireCode(t, err, vesting.InvalidAdminList)

	err = vesting.ChangeSecurity(c.ctx, c.caller(), nil, []string{TreasuryAddress, "zz"})
	requireCode(t, err, vesting.InvalidNoneList)

	_, found, err := vesting.GetSecurityBadge(c.ctx, TreasuryAddress)
	require.NoError(t, err)
	require.False(t, found)
}

func TestChangeSecurityGrantsPackage(t *testing.T) {
	t.Parallel()

	const contractCaller = "klp-0a1b2c-cc"

	c := newChain(t)
	grant(t, c, AdminAddress, vesting.Admin)

	require.NoError(t, vesting.ChangeSecurity(c.ctx, c.caller(), []string{"TrustedOrgMSP"}, nil))
	requireBadge(t, c, "TrustedOrgMSP", vesting.Admin)

	SetCaller(c.ctx, contractCaller, "TrustedOrgMSP")
	require.NoError(t, vesting.RequireRole(c.ctx, c.caller(), vesting.Admin))

	SetCaller(c.ctx, contractCaller, "OtherOrgMSP")
	require.ErrorIs(t, vesting.RequireRole(c.ctx, c.caller(), vesting.Admin), vesting.ErrInsufficientRights)

	SetUserID(c.ctx, AdminAddress)
	require.NoError(t, vesting.ChangeSecurity(c.ctx, c.caller(), nil, []string{"TrustedOrgMSP"}))
	SetCaller(c.ctx, contractCaller, "TrustedOrgMSP")
	require.ErrorIs(t, vesting.RequireRole(c.ctx, c.caller(), vesting.Admin), vesting.ErrInsufficientRights)
}
