package commands

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/assembler"
	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/abdul-hamid-achik/lunarica/packages/stats"
)

const (
	CategorySystem  = "system"
	CategoryNetwork = "network"
	CategoryHeaders = "headers"
	CategoryBody    = "body"
	CategoryQuery   = "query"
	CategoryAuth    = "auth"
	CategoryMisc    = "misc"
	CategoryInspect = "inspect"
)

// Sender sends an assembled request.
type Sender interface {
	Send(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Deps are the collaborators the network and inspect commands need.
type Deps struct {
	Sender    Sender
	Assembler *assembler.Assembler
	Stats     *stats.Recorder
}

// Register adds every console command to reg.
func Register(reg *command.Registry, deps Deps) {
	if deps.Assembler == nil {
		deps.Assembler = assembler.New(nil)
	}
	if deps.Stats == nil {
		deps.Stats = stats.NewRecorder()
	}

	reg.Register(newExitCommand())
	reg.Register(newHelpCommand())
	reg.Register(newCdCommand())

	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		reg.Register(newRequestCommand(method, deps))
	}

	reg.Register(newHeadersCommand())
	reg.Register(newHeaderCommand())
	reg.Register(newRemoveHeaderCommand())
	reg.Register(newLoadHeadersCommand())

	reg.Register(newBodyCommand())
	reg.Register(newBodyParamsCommand())
	reg.Register(newRemoveBodyCommand())
	reg.Register(newClearBodyCommand())
	reg.Register(newLoadBodyCommand())

	reg.Register(newQueryCommand())
	reg.Register(newQueryParamsCommand())
	reg.Register(newRemoveQueryCommand())

	reg.Register(newAuthCommand())

	reg.Register(newClearParamsCommand())
	reg.Register(newTimeoutCommand())
	reg.Register(newParamsCommand())
	reg.Register(newFunctionsCommand(deps))
	reg.Register(newClearScreenCommand())
	reg.Register(newCurlCommand())

	reg.Register(newLastCommand())
	reg.Register(newStatsCommand(deps.Stats))
	reg.Register(newSchemaCommand())
}

// info carries the descriptive half of the command.Command interface.
type info struct {
	name        string
	aliases     []string
	category    string
	description string
	hint        string
	examples    []string
}

func (i *info) Name() string        { return i.name }
func (i *info) Aliases() []string   { return i.aliases }
func (i *info) Category() string    { return i.category }
func (i *info) Description() string { return i.description }
func (i *info) Hint() string        { return i.hint }
func (i *info) Examples() []string  { return i.examples }

// splitPair splits "name<sep>value" and trims spaces and tabs from both sides.
func splitPair(args string, sep string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(args, sep)
	return strings.Trim(name, " \t"), strings.Trim(value, " \t"), ok
}

func withPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// completePath lists files and directories matching partial. Directories
// end with a separator so completion can continue into them.
func completePath(partial string) []string {
	dir, prefix := filepath.Split(partial)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		if entry.IsDir() {
			name += string(filepath.Separator)
		}
		out = append(out, dir+name)
	}
	slices.Sort(out)
	return out
}
