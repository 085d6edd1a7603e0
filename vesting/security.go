package vesting

import (
	"fmt"
	"strconv"
)

type SecurityBadge uint8

const (
	Admin SecurityBadge = 0
	None  SecurityBadge = 99
)

func (b SecurityBadge) String() string {
	switch b {
	case Admin:
		return "Admin"
	case None:
		return "None"
	}
	return fmt.Sprintf("SecurityBadge(%d)", uint8(b))
}

func (b SecurityBadge) valid() bool {
	return b == Admin || b == None
}

// BadgeChange is one entry of a role batch.
type BadgeChange struct {
	Principal string        `json:"principal"`
	Badge     SecurityBadge `json:"badge"`
}

func securityBadgeKey(principal string) string {
	return fmt.Sprintf("%s_%s", securityBadgePrefix, principal)
}

// GetSecurityBadge returns the badge held by principal and whether one is
// recorded at all.
func GetSecurityBadge(ctx TransactionContext, principal string) (SecurityBadge, bool, error) {
	if principal == "" {
		return None, false, nil
	}
	badgeAsBytes, err := ctx.GetState(securityBadgeKey(principal))
	if err != nil {
		return None, false, NewCustomError(MissingStorageValue, fmt.Sprintf("failed to get security badge of %s", principal), err)
	}
	if badgeAsBytes == nil {
		return None, false, nil
	}
	badge, err := strconv.ParseUint(string(badgeAsBytes), 10, 8)
	if err != nil || !SecurityBadge(badge).valid() {
		return None, false, NewCustomError(InvalidStorageValue, fmt.Sprintf("invalid security badge %q for %s", badgeAsBytes, principal), err)
	}
	return SecurityBadge(badge), true, nil
}

func setSecurityBadge(ctx TransactionContext, principal string, badge SecurityBadge) error {
	err := ctx.PutState(securityBadgeKey(principal), []byte(strconv.FormatUint(uint64(badge), 10)))
	if err != nil {
		return NewCustomError(InvalidStorageValue, fmt.Sprintf("failed to set security badge of %s", principal), err)
	}
	return nil
}

// RequireRole fails with InsufficientRights unless the caller holds one of
// allowed. The badge of the caller itself wins over the badge of its package.
func RequireRole(ctx TransactionContext, caller Caller, allowed ...SecurityBadge) error {
	badge, found, err := GetSecurityBadge(ctx, caller.ID)
	if err != nil {
		return err
	}
	if !found {
		badge, found, err = GetSecurityBadge(ctx, caller.Package)
		if err != nil {
			return err
		}
	}
	if !found {
		return NewCustomError(InsufficientRights, fmt.Sprintf("no security badge for %s", caller.ID), nil)
	}
	for _, role := range allowed {
		if badge == role {
			return nil
		}
	}
	return NewCustomError(InsufficientRights, fmt.Sprintf("%s holds %s", caller.ID, badge), nil)
}

// buildBadgeChanges applies admins first and nones second so that a principal
// listed in both ends up as None. The caller's own entry is dropped.
func buildBadgeChanges(caller Caller, adminList, noneList []string) ([]BadgeChange, error) {
	order := make([]string, 0, len(adminList)+len(noneList))
	badges := make(map[string]SecurityBadge, len(adminList)+len(noneList))

	apply := func(list []string, badge SecurityBadge, code ErrorCode) error {
		for _, principal := range list {
			if !IsPrincipalValid(principal) {
				return NewCustomError(code, fmt.Sprintf("invalid principal %q", principal), nil)
			}
			if _, seen := badges[principal]; !seen {
				order = append(order, principal)
			}
			badges[principal] = badge
		}
		return nil
	}
	if err := apply(adminList, Admin, InvalidAdminList); err != nil {
		return nil, err
	}
	if err := apply(noneList, None, InvalidNoneList); err != nil {
		return nil, err
	}

	changes := make([]BadgeChange, 0, len(order))
	for _, principal := range order {
		if principal == caller.ID {
			continue
		}
		changes = append(changes, BadgeChange{Principal: principal, Badge: badges[principal]})
	}
	return changes, nil
}

func applyBadgeChanges(ctx TransactionContext, changes []BadgeChange) error {
	for _, change := range changes {
		if err := setSecurityBadge(ctx, change.Principal, change.Badge); err != nil {
			return err
		}
	}
	return nil
}

// ChangeSecurity grants Admin to adminList and None to noneList. Only an
// Admin may call it and it never changes the caller's own badge.
func ChangeSecurity(ctx TransactionContext, caller Caller, adminList, noneList []string) error {
	if err := RequireRole(ctx, caller, Admin); err != nil {
		return err
	}

	changes, err := buildBadgeChanges(caller, adminList, noneList)
	if err != nil {
		return err
	}
	if err := applyBadgeChanges(ctx, changes); err != nil {
		return err
	}

	Logger.WithField("caller", caller.ID).WithField("changes", len(changes)).Info("security badges changed")

	return EmitChangeSecurity(ctx, caller.ID, changes)
}
