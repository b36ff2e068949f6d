package main

import (
	"context"
	"fmt"
	"io"
)

// example is one worked calculation from the game guide
type example struct {
	title   string
	command string
	args    []string
}

var guideExamples = []example{
	{"Max brown crate reward for a max size of 7,000,000", "crate", []string{"brown", "7000000"}},
	{"Max yellow crate reward for a max size of 7,000,000", "crate", []string{"yellow", "7000000"}},
	{"Max purple crate reward for a max size of 7,000,000", "crate", []string{"purple", "7000000"}},
	{"Max jackpot amount for a max size of 7,000,000", "crate", []string{"jackpot", "7000000"}},
	{"Walk speed level for a walk speed value of 300", "walk-level", []string{"300"}},
	{"Walk speed value for a walk speed level of 150", "walk-value", []string{"150"}},
	{"Max size at size level 100", "size-at-level", []string{"100"}},
	{"Size level for a max size of 505,000", "level-at-size", []string{"505000"}},
	{"Optimal size level for a multi of 100 using a ratio of 5.5", "threshold", []string{"100", "5.5"}},
	{"Optimal multi for a size level of 550 using a ratio of 5.5", "optimal-multi", []string{"550", "5.5"}},
	{"Size upgrade cost at level 2", "level-cost", []string{"size", "2"}},
	{"Walk speed upgrade cost at level 2", "level-cost", []string{"walk", "2"}},
	{"Multiplier upgrade cost at level 2", "level-cost", []string{"multi", "2"}},
	{"Eat speed upgrade cost at level 2", "level-cost", []string{"eat", "2"}},
	{"Total cost of size upgrades at level 10", "investment", []string{"size", "10"}},
	{"Total cost of walk speed upgrades at level 10", "investment", []string{"walk", "10"}},
	{"Total cost of multi upgrades at level 10", "investment", []string{"multi", "10"}},
	{"Total cost of eat speed upgrades at level 10", "investment", []string{"eat", "10"}},
	{"Total cost of all upgrades at levels 83, 10, 15, and 11", "total-investment", []string{"83", "10", "15", "11"}},
	{"Total cost of all upgrades at levels 1000, 400, 200, and 75", "total-investment", []string{"1000", "400", "200", "75"}},
	{"Cost of size upgrades from level 5 to 10", "range-cost", []string{"size", "5", "10"}},
	{"Cost of walk speed upgrades from level 5 to 10", "range-cost", []string{"walk", "5", "10"}},
	{"Cost of multi upgrades from level 5 to 10", "range-cost", []string{"multi", "5", "10"}},
	{"Cost of eat speed upgrades from level 5 to 10", "range-cost", []string{"eat", "5", "10"}},
	{"Small bite amount at size 505,000 and 100 multi", "bite", []string{"small", "505000", "100"}},
	{"Medium bite amount at size 505,000 and 100 multi", "bite", []string{"medium", "505000", "100"}},
	{"Big bite amount at size 505,000 and 100 multi", "bite", []string{"big", "505000", "100"}},
	{"Multi when a small bite takes size 9,440 to 10,954", "bite-delta", []string{"small", "9440", "10954"}},
	{"Multi when a medium bite takes size 9,440 to 10,954", "bite-delta", []string{"medium", "9440", "10954"}},
	{"Multi when a big bite takes size 9,440 to 10,954", "bite-delta", []string{"big", "9440", "10954"}},
	{"Multi when the first small bite is 270", "first-bite", []string{"small", "270"}},
	{"Multi when the first medium bite is 270", "first-bite", []string{"medium", "270"}},
	{"Multi when the first big bite is 270", "first-bite", []string{"big", "270"}},
	{"Time to max for a size level of 565 at 101 multi", "time-to-max", []string{"565", "101"}},
	{"Time to max for a size level of 140 at 31 multi", "time-to-max", []string{"140", "31"}},
}

type examplesCommand struct {
	registry *Registry
	out      io.Writer
}

func (c *examplesCommand) Name() string        { return "examples" }
func (c *examplesCommand) Description() string { return "Run the worked examples from the game guide" }
func (c *examplesCommand) Usage() string       { return "" }

func (c *examplesCommand) Run(ctx context.Context, _ []string) error {
	for i, ex := range guideExamples {
		if i > 0 {
			fmt.Fprintln(c.out)
		}
		fmt.Fprintf(c.out, "%s:\n", ex.title)
		if err := c.registry.Run(ctx, ex.command, ex.args); err != nil {
			return err
		}
	}
	return nil
}
