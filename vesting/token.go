package vesting

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

const (
	tokenDecimals          = "Decimals"
	tokenMint              = "Mint"
	tokenTransfer          = "Transfer"
	tokenBalanceOf         = "BalanceOf"
	tokenTotalSupply       = "TotalSupply"
	tokenSetTransferFilter = "SetTransferFilter"
	tokenChangeSecurity    = "ChangeSecurity"
)

// Token is the companion fungible-token contract as seen by the bootstrap.
type Token interface {
	Decimals() (uint8, error)
	Mint(recipient string, amount *uint256.Int) error
	Transfer(recipient string, amount *uint256.Int) error
	BalanceOf(account string) (*uint256.Int, error)
	TotalSupply() (*uint256.Int, error)
	SetTransferFilter(contractAddress, method string) error
	ChangeSecurity(minterList, noneList []string) error
}

// TokenContract calls the token chaincode on the channel of the running
// transaction.
type TokenContract struct {
	ctx  TransactionContext
	name string
}

var _ Token = (*TokenContract)(nil)

func NewTokenContract(ctx TransactionContext, name string) *TokenContract {
	return &TokenContract{ctx: ctx, name: name}
}

func (t *TokenContract) invoke(function string, args ...string) ([]byte, error) {
	callArgs := make([][]byte, 0, len(args)+1)
	callArgs = append(callArgs, []byte(function))
	for _, arg := range args {
		callArgs = append(callArgs, []byte(arg))
	}

	res := t.ctx.InvokeChaincode(t.name, callArgs, t.ctx.GetChannelID())
	if res.Status != http.StatusOK {
		return nil, NewCustomError(TokenContractCall, fmt.Sprintf("%s on %s failed with status %d: %s", function, t.name, res.Status, res.Message), nil)
	}
	return res.Payload, nil
}

func (t *TokenContract) invokeAmount(function string, args ...string) (*uint256.Int, error) {
	payload, err := t.invoke(function, args...)
	if err != nil {
		return nil, err
	}
	amount, err := ParseAmount(function, strings.Trim(strings.TrimSpace(string(payload)), `"`))
	if err != nil {
		return nil, NewCustomError(TokenContractCall, fmt.Sprintf("%s returned %q", function, payload), err)
	}
	return amount, nil
}

func (t *TokenContract) Decimals() (uint8, error) {
	payload, err := t.invoke(tokenDecimals)
	if err != nil {
		return 0, err
	}
	decimals, err := strconv.ParseUint(strings.TrimSpace(string(payload)), 10, 8)
	if err != nil {
		return 0, NewCustomError(TokenContractCall, fmt.Sprintf("%s returned %q", tokenDecimals, payload), err)
	}
	return uint8(decimals), nil
}

func (t *TokenContract) Mint(recipient string, amount *uint256.Int) error {
	_, err := t.invoke(tokenMint, recipient, amount.Dec())
	return err
}

func (t *TokenContract) Transfer(recipient string, amount *uint256.Int) error {
	_, err := t.invoke(tokenTransfer, recipient, amount.Dec())
	return err
}

func (t *TokenContract) BalanceOf(account string) (*uint256.Int, error) {
	return t.invokeAmount(tokenBalanceOf, account)
}

func (t *TokenContract) TotalSupply() (*uint256.Int, error) {
	return t.invokeAmount(tokenTotalSupply)
}

func (t *TokenContract) SetTransferFilter(contractAddress, method string) error {
	_, err := t.invoke(tokenSetTransferFilter, contractAddress, method)
	return err
}

func (t *TokenContract) ChangeSecurity(minterList, noneList []string) error {
	minters, err := json.Marshal(nonNil(minterList))
	if err != nil {
		return NewCustomError(TokenContractCall, "failed to marshal minter list", err)
	}
	nones, err := json.Marshal(nonNil(noneList))
	if err != nil {
		return NewCustomError(TokenContractCall, "failed to marshal none list", err)
	}
	_, err = t.invoke(tokenChangeSecurity, string(minters), string(nones))
	return err
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
