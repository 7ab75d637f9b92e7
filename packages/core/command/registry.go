package command

import (
	"log"
	"slices"
	"strings"
)

type Registry struct {
	commands   map[string]Command
	categories map[string][]Command
}

func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[string]Command),
		categories: make(map[string][]Command),
	}
}

// Register adds cmd under its name and aliases. Names already taken are
// overwritten and the overwrite is logged.
func (r *Registry) Register(cmd Command) {
	for _, key := range append([]string{cmd.Name()}, cmd.Aliases()...) {
		key = strings.ToLower(key)
		if prev, ok := r.commands[key]; ok && prev != cmd {
			log.Printf("command: %q from %q replaced by %q", key, prev.Name(), cmd.Name())
		}
		r.commands[key] = cmd
	}
	cat := cmd.Category()
	if !slices.ContainsFunc(r.categories[cat], func(c Command) bool { return c == cmd }) {
		r.categories[cat] = append(r.categories[cat], cmd)
	}
}

func (r *Registry) Resolve(name string) (Command, bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Names returns every registered name and alias, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Categories returns the category names, sorted.
func (r *Registry) Categories() []string {
	cats := make([]string, 0, len(r.categories))
	for cat := range r.categories {
		cats = append(cats, cat)
	}
	slices.Sort(cats)
	return cats
}

// CommandsIn returns the commands of category sorted by name. Commands
// whose name has since been taken by another registration are left out.
func (r *Registry) CommandsIn(category string) []Command {
	var cmds []Command
	for _, cmd := range r.categories[category] {
		if current, ok := r.commands[strings.ToLower(cmd.Name())]; ok && current == cmd {
			cmds = append(cmds, cmd)
		}
	}
	slices.SortFunc(cmds, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return cmds
}
