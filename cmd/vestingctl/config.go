package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/cowlnetwork/cowl-vesting/vesting"
	"github.com/holiman/uint256"
	"github.com/naoina/toml"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type tokenConfig struct {
	// TotalSupply overrides the fixed supply when set.
	TotalSupply string
	Decimals    uint8
}

type beneficiariesConfig struct {
	Treasury    string
	Contributor string
	Development string
	Liquidity   string
	Community   string
	Staking     string
}

type vestingctlConfig struct {
	Token         tokenConfig
	Beneficiaries beneficiariesConfig
}

func loadConfig(file string, cfg *vestingctlConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func (c *vestingctlConfig) supply() (*uint256.Int, error) {
	if c.Token.TotalSupply != "" {
		return vesting.ParseAmount("Token.TotalSupply", c.Token.TotalSupply)
	}
	return vesting.TotalSupplyForDecimals(c.Token.Decimals)
}

func (c *vestingctlConfig) addresses() map[vesting.VestingType]string {
	return map[vesting.VestingType]string{
		vesting.Treasury:    c.Beneficiaries.Treasury,
		vesting.Contributor: c.Beneficiaries.Contributor,
		vesting.Development: c.Beneficiaries.Development,
		vesting.Liquidity:   c.Beneficiaries.Liquidity,
		vesting.Community:   c.Beneficiaries.Community,
		vesting.Staking:     c.Beneficiaries.Staking,
	}
}
