package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cowlnetwork/cowl-vesting/vesting"
	"github.com/holiman/uint256"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var commandAllocations = &cli.Command{
	Name:  "allocations",
	Usage: "split the configured supply across the vesting categories",
	Description: `
Print the amount every category receives at bootstrap and the remainder
that no category receives because of rounding.`,
	Flags: []cli.Flag{
		configFlag,
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		var cfg vestingctlConfig
		if err := loadConfig(ctx.String(configFlag.Name), &cfg); err != nil {
			return err
		}
		supply, err := cfg.supply()
		if err != nil {
			return err
		}
		allocations, err := vesting.CalculateVestingAllocations(supply, cfg.addresses())
		if err != nil {
			return err
		}
		remainder := vesting.UnallocatedRemainder(supply, allocations)

		if ctx.Bool(jsonFlag.Name) {
			return writeJSON(ctx.App.Writer, struct {
				TotalSupply *uint256.Int                `json:"totalSupply"`
				Allocations []vesting.VestingAllocation `json:"allocations"`
				Remainder   *uint256.Int                `json:"remainder"`
			}{supply, allocations, remainder})
		}

		table := tablewriter.NewWriter(ctx.App.Writer)
		table.SetHeader([]string{"Category", "Percent", "Lock", "Beneficiary", "Amount"})
		for _, allocation := range allocations {
			category, _ := allocation.VestingType.Config()
			table.Append([]string{
				allocation.VestingType.String(),
				strconv.Itoa(int(category.Percentage)) + "%",
				lockString(category),
				allocation.VestingAddress,
				allocation.VestingAmount.Dec(),
			})
		}
		table.SetFooter([]string{"", "", "", "Unallocated", remainder.Dec()})
		table.Render()
		return nil
	},
}

var commandSchedule = &cli.Command{
	Name:  "schedule",
	Usage: "print the status of a category after every vesting period",
	Flags: []cli.Flag{
		categoryFlag,
		totalFlag,
		startFlag,
		releasedFlag,
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		info, total, released, err := statusInputs(ctx)
		if err != nil {
			return err
		}
		start := ctx.Uint64(startFlag.Name)

		var periods uint64
		if info.VestingDuration != nil {
			periods = *info.VestingDuration / info.VestingPeriod
			if *info.VestingDuration%info.VestingPeriod != 0 {
				periods++
			}
		}
		statuses := make([]*vesting.VestingStatus, 0, periods+1)
		for period := uint64(0); period <= periods; period++ {
			statuses = append(statuses, vesting.ComputeStatus(info, start, total, released, start+period*info.VestingPeriod))
		}

		if ctx.Bool(jsonFlag.Name) {
			return writeJSON(ctx.App.Writer, statuses)
		}

		table := tablewriter.NewWriter(ctx.App.Writer)
		table.SetHeader([]string{"Period", "Time", "Vested", "Available", "To Release", "Fully Vested"})
		for _, status := range statuses {
			table.Append([]string{
				strconv.FormatUint(status.ElapsedPeriods, 10),
				time.Unix(int64(status.StartTime+status.ElapsedPeriods*info.VestingPeriod), 0).UTC().Format(time.RFC3339),
				status.VestedAmount.Dec(),
				status.AvailableForReleaseAmount.Dec(),
				status.TotalToReleaseAmount.Dec(),
				strconv.FormatBool(status.IsFullyVested),
			})
		}
		table.Render()
		return nil
	},
}

var commandStatus = &cli.Command{
	Name:  "status",
	Usage: "compute the status of a category at a given time",
	Flags: []cli.Flag{
		categoryFlag,
		totalFlag,
		startFlag,
		releasedFlag,
		atFlag,
	},
	Action: func(ctx *cli.Context) error {
		info, total, released, err := statusInputs(ctx)
		if err != nil {
			return err
		}
		status := vesting.ComputeStatus(info, ctx.Uint64(startFlag.Name), total, released, ctx.Uint64(atFlag.Name))
		return writeJSON(ctx.App.Writer, status)
	},
}

func statusInputs(ctx *cli.Context) (*vesting.VestingInfo, *uint256.Int, *uint256.Int, error) {
	vestingType, err := vesting.ParseVestingType(ctx.String(categoryFlag.Name))
	if err != nil {
		return nil, nil, nil, err
	}
	info, err := vesting.NewVestingInfo(vestingType, "")
	if err != nil {
		return nil, nil, nil, err
	}
	total, err := vesting.ParseAmount(totalFlag.Name, ctx.String(totalFlag.Name))
	if err != nil {
		return nil, nil, nil, err
	}
	released, err := vesting.ParseAmount(releasedFlag.Name, ctx.String(releasedFlag.Name))
	if err != nil {
		return nil, nil, nil, err
	}
	return info, total, released, nil
}

func lockString(cfg vesting.CategoryConfig) string {
	seconds, locked := cfg.DurationSeconds()
	if !locked {
		return "none"
	}
	years := float64(seconds) / float64(vesting.YearInSeconds)
	return strconv.FormatFloat(years, 'f', -1, 64) + "y"
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
