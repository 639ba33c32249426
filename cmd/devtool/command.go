package main

import (
	"fmt"
	"sort"
	"text/tabwriter"
)

const (
	defaultAPIURL = "http://localhost:8000"
	envAPIURL     = "API_URL"
)

// Command is one devtool subcommand. Run receives the arguments after the
// command name.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd; registering the same name twice is a programming error.
func (r *Registry) Register(cmd Command) {
	if _, dup := r.commands[cmd.Name()]; dup {
		panic(fmt.Sprintf("devtool: command %q registered twice", cmd.Name()))
	}
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
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

func (r *Registry) PrintHelp() {
	fmt.Fprintln(output, "Usage: devtool <command> [args...]")
	fmt.Fprintln(output, "\nAvailable Commands:")

	tw := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	_ = tw.Flush()
}
