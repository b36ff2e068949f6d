package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/osse101/etwmath/internal/domain"
	"github.com/osse101/etwmath/internal/schedule"
	"github.com/osse101/etwmath/internal/validation"
)

type tableCommand struct {
	defaultFormat string
	out           io.Writer
}

func (c *tableCommand) Name() string { return "table" }
func (c *tableCommand) Description() string {
	return "Per-level cost table for a track as CSV or YAML"
}
func (c *tableCommand) Usage() string {
	return "<size|walk|multi|eat> <from-level> <to-level> [csv|yaml]"
}

func (c *tableCommand) Run(_ context.Context, args []string) error {
	tableFormat := c.defaultFormat
	if len(args) == 4 {
		tableFormat = args[3]
		args = args[:3]
	}
	if err := arity(args, 3); err != nil {
		return err
	}

	from, err := level(args[1])
	if err != nil {
		return err
	}
	to, err := level(args[2])
	if err != nil {
		return err
	}

	rows, err := schedule.Build(track(args[0]), from, to)
	if err != nil {
		return err
	}
	return schedule.Write(c.out, rows, tableFormat)
}

// level parses a whole level number
func level(arg string) (int, error) {
	if _, err := validation.ParseNumber(arg); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: level %q must be a whole number", domain.ErrInvalidInput, arg)
	}
	return n, nil
}
