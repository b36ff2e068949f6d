package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/osse101/etwmath/internal/config"
	"github.com/osse101/etwmath/internal/domain"
	"github.com/osse101/etwmath/internal/format"
	"github.com/osse101/etwmath/internal/formula"
	"github.com/osse101/etwmath/internal/validation"
)

// formulaCommand wraps one engine call: parse args, evaluate, print the result
type formulaCommand struct {
	name        string
	description string
	usage       string
	eval        func(args []string) (float64, error)
	render      func(value float64) (string, error)
	out         io.Writer
}

func (c *formulaCommand) Name() string        { return c.name }
func (c *formulaCommand) Description() string { return c.description }
func (c *formulaCommand) Usage() string       { return c.usage }

func (c *formulaCommand) Run(_ context.Context, args []string) error {
	value, err := c.eval(args)
	if err != nil {
		return err
	}
	text, err := c.render(value)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, text)
	return nil
}

type helpCommand struct {
	registry *Registry
}

func (c *helpCommand) Name() string        { return "help" }
func (c *helpCommand) Description() string { return "List available commands" }
func (c *helpCommand) Usage() string       { return "" }

func (c *helpCommand) Run(_ context.Context, _ []string) error {
	c.registry.PrintHelp()
	return nil
}

// newRegistry wires every command to the engine
func newRegistry(cfg *config.Config, out io.Writer) *Registry {
	r := NewRegistry(out)
	number := func(v float64) string { return format.Number(v, cfg.UseDecimals) }
	exact := func(v float64) string { return format.Number(v, true) }
	minutes := func(v float64) (string, error) {
		seconds, err := formula.SecondsFromMinutes(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s minutes (%s)", format.Decimal(v), format.Duration(seconds)), nil
	}

	commands := []*formulaCommand{
		{
			name:        "crate",
			description: "Maximum crate or jackpot reward for a maximum size",
			usage:       "<brown|yellow|purple|jackpot> <size>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 2); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.CrateReward(nums[0], domain.Crate(strings.ToLower(args[0])))
			},
		},
		{
			name:        "walk-value",
			description: "Walk speed value for a walk speed level",
			usage:       "<level>",
			eval:        unary(formula.WalkSpeedValue),
		},
		{
			name:        "walk-level",
			description: "Walk speed level for a walk speed value",
			usage:       "<value>",
			eval:        unary(formula.WalkSpeedLevel),
		},
		{
			name:        "size-at-level",
			description: "Maximum size at a size level",
			usage:       "<level>",
			eval:        unary(formula.SizeAtLevel),
		},
		{
			name:        "level-at-size",
			description: "Size level for a maximum size",
			usage:       "<size>",
			eval:        unary(formula.LevelAtSize),
		},
		{
			name:        "threshold",
			description: "Optimal size level threshold for a multiplier level",
			usage:       "<multi-level> [ratio]",
			eval:        withRatio(cfg, formula.OptimalSizeLevelThreshold),
		},
		{
			name:        "optimal-multi",
			description: "Optimal multiplier level for a size level",
			usage:       "<size-level> [ratio]",
			eval:        withRatio(cfg, formula.OptimalMulti),
		},
		{
			name:        "level-cost",
			description: "Cost of a single upgrade level",
			usage:       "<size|walk|multi|eat> <level>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 2); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.LevelCost(track(args[0]), nums[0])
			},
		},
		{
			name:        "investment",
			description: "Total spent on one track to reach a level",
			usage:       "<size|walk|multi|eat> <level>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 2); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.TotalInvestment(track(args[0]), nums[0])
			},
		},
		{
			name:        "total-investment",
			description: "Total spent across all four tracks",
			usage:       "<size-level> <walk-level> <multi-level> <eat-level>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 4); err != nil {
					return 0, err
				}
				nums, err := numbers(args)
				if err != nil {
					return 0, err
				}
				return formula.TotalUpgradeInvestment(formula.Levels{
					Size:  nums[0],
					Walk:  nums[1],
					Multi: nums[2],
					Eat:   nums[3],
				})
			},
		},
		{
			name:        "range-cost",
			description: "Cost of upgrading a track from one level to another",
			usage:       "<size|walk|multi|eat> <start-level> <end-level>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 3); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.RangeCost(track(args[0]), nums[0], nums[1])
			},
		},
		{
			name:        "bite",
			description: "Size gained by one bite",
			usage:       "<small|medium|big> <current-size> <multi>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 3); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.BiteAmount(tier(args[0]), nums[0], nums[1])
			},
		},
		{
			name:        "bite-delta",
			description: "Multiplier implied by the sizes before and after a bite",
			usage:       "<small|medium|big> <start-size> <end-size>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 3); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.BiteDeltaMulti(tier(args[0]), nums[0], nums[1])
			},
		},
		{
			name:        "first-bite",
			description: "Multiplier implied by the first bite amount",
			usage:       "<small|medium|big> <bite-amount>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 2); err != nil {
					return 0, err
				}
				nums, err := numbers(args[1:])
				if err != nil {
					return 0, err
				}
				return formula.FirstBiteMulti(tier(args[0]), nums[0])
			},
		},
		{
			name:        "time-to-max",
			description: "Estimated time to reach a maximum size level",
			usage:       "<size-level> <multi>",
			eval: func(args []string) (float64, error) {
				if err := arity(args, 2); err != nil {
					return 0, err
				}
				nums, err := numbers(args)
				if err != nil {
					return 0, err
				}
				return formula.EstimateTimeToMax(nums[0], nums[1])
			},
			render: minutes,
		},
	}

	for _, cmd := range commands {
		cmd.out = out
		if cmd.render == nil {
			cmd.render = plain(number)
		}
		if cmd.name == "level-at-size" || cmd.name == "walk-level" {
			cmd.render = plain(exactOrWhole(number, exact))
		}
		r.Register(cmd)
	}

	r.Register(&tableCommand{defaultFormat: cfg.TableFormat, out: out})
	r.Register(&examplesCommand{registry: r, out: out})
	r.Register(&helpCommand{registry: r})
	return r
}

// plain adapts a renderer that cannot fail
func plain(render func(float64) string) func(float64) (string, error) {
	return func(v float64) (string, error) {
		return render(v), nil
	}
}

// exactOrWhole keeps a fractional inverse visible instead of truncating it
func exactOrWhole(whole, exact func(float64) string) func(float64) string {
	return func(v float64) string {
		if v == math.Trunc(v) {
			return whole(v)
		}
		return exact(v)
	}
}

func unary(fn func(float64) (float64, error)) func([]string) (float64, error) {
	return func(args []string) (float64, error) {
		if err := arity(args, 1); err != nil {
			return 0, err
		}
		nums, err := numbers(args)
		if err != nil {
			return 0, err
		}
		return fn(nums[0])
	}
}

// withRatio falls back to the configured ratio when the second argument is omitted
func withRatio(cfg *config.Config, fn func(level, ratio float64) (float64, error)) func([]string) (float64, error) {
	return func(args []string) (float64, error) {
		if len(args) == 1 {
			args = []string{args[0], fmt.Sprint(cfg.OptimalRatio)}
		}
		if err := arity(args, 2); err != nil {
			return 0, err
		}
		nums, err := numbers(args)
		if err != nil {
			return 0, err
		}
		return fn(nums[0], nums[1])
	}
}

func arity(args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: expected %d arguments, got %d", domain.ErrInvalidInput, want, len(args))
	}
	return nil
}

func numbers(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, arg := range args {
		v, err := validation.ParseNumber(arg)
		if err != nil {
			return nil, err
		}
		nums[i] = v
	}
	return nums, nil
}

func track(s string) domain.Track   { return domain.Track(strings.ToLower(s)) }
func tier(s string) domain.BiteTier { return domain.BiteTier(strings.ToLower(s)) }
