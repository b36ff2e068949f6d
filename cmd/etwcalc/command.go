package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/osse101/etwmath/internal/domain"
	"github.com/osse101/etwmath/internal/logger"
)

// Command interface that all etwcalc commands must implement
type Command interface {
	Name() string
	Description() string
	Usage() string
	Run(ctx context.Context, args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
	out      io.Writer
}

// NewRegistry creates a new command registry
func NewRegistry(out io.Writer) *Registry {
	return &Registry{
		commands: make(map[string]Command),
		out:      out,
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Run dispatches to the named command
func (r *Registry) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}

	log := logger.FromContext(ctx)
	log.Debug("Running command", "command", name, "args", args)

	if err := cmd.Run(ctx, args); err != nil {
		log.Warn("Command failed", "command", name, "error", err)
		return fmt.Errorf("%s: %w\nusage: etwcalc %s %s", name, err, name, cmd.Usage())
	}
	return nil
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp() {
	fmt.Fprintln(r.out, "Usage: etwcalc <command> [args...]")
	fmt.Fprintf(r.out, "Formulas version %s\n", domain.Version)
	fmt.Fprintln(r.out, "\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}

	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Fprintf(r.out, "  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}
