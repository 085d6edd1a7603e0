// vestingctl previews the COWL vesting allocations and release schedules
// offline, using the same arithmetic as the chaincode.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML file with the token supply and the beneficiaries",
		Required: true,
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output JSON instead of a table",
	}
	categoryFlag = &cli.StringFlag{
		Name:     "category",
		Usage:    "vesting category (Treasury, Contributor, Development, Liquidity, Community, Staking)",
		Required: true,
	}
	totalFlag = &cli.StringFlag{
		Name:     "total",
		Usage:    "total amount allocated to the category, in token units",
		Required: true,
	}
	startFlag = &cli.Uint64Flag{
		Name:  "start",
		Usage: "vesting start time in unix seconds",
	}
	releasedFlag = &cli.StringFlag{
		Name:  "released",
		Usage: "amount already released from the category",
		Value: "0",
	}
	atFlag = &cli.Uint64Flag{
		Name:     "at",
		Usage:    "unix seconds at which to compute the status",
		Required: true,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "vestingctl",
		Usage: "inspect COWL vesting allocations and schedules",
		Commands: []*cli.Command{
			commandAllocations,
			commandSchedule,
			commandStatus,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
