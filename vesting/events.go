package vesting

import (
	"encoding/json"
	"fmt"
)

type ChangeSecurityEventData struct {
	Admin   string        `json:"admin"`
	Changes []BadgeChange `json:"changes"`
}

type SetModalitiesEventData struct {
	EventsMode EventsMode `json:"eventsMode"`
}

type UpgradeEventData struct {
	Version string `json:"version"`
}

type CheckTransferEventData struct {
	Operator string `json:"operator"`
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   string `json:"amount"`
	Data     string `json:"data,omitempty"`
	Result   string `json:"result"`
}

type TokenContractUpdateEventData struct {
	TokenContract string `json:"tokenContract"`
}

// recordEvent sets the event on the transaction unless events are switched
// off.
func recordEvent(ctx TransactionContext, name string, payload interface{}) error {
	mode, err := GetEventsMode(ctx)
	if err != nil {
		return err
	}
	if mode != Emit {
		return nil
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitChangeSecurity(ctx TransactionContext, admin string, changes []BadgeChange) error {
	return recordEvent(ctx, ChangeSecurityEvent, ChangeSecurityEventData{
		Admin:   admin,
		Changes: changes,
	})
}

func EmitSetModalities(ctx TransactionContext, mode EventsMode) error {
	return recordEvent(ctx, SetModalitiesEvent, SetModalitiesEventData{EventsMode: mode})
}

func EmitUpgrade(ctx TransactionContext, version string) error {
	return recordEvent(ctx, UpgradeEvent, UpgradeEventData{Version: version})
}

func EmitCheckTransfer(ctx TransactionContext, operator, from, to, amount, data string, result TransferFilterResult) error {
	return recordEvent(ctx, CheckTransferEvent, CheckTransferEventData{
		Operator: operator,
		From:     from,
		To:       to,
		Amount:   amount,
		Data:     data,
		Result:   result.String(),
	})
}

func EmitTokenContractUpdate(ctx TransactionContext, tokenContract string) error {
	return recordEvent(ctx, TokenContractUpdateEvent, TokenContractUpdateEventData{TokenContract: tokenContract})
}
