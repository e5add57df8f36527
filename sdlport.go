// This file is part of sdlport.
//
// sdlport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlport.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/abuse-go/sdlport/paths"
	"github.com/abuse-go/sdlport/version"
)

// CLI is the command line of the sdlport program. Any flag can also be set in
// a YAML or TOML configuration file.
type CLI struct {
	Config  string           `help:"Configuration file (YAML or TOML)" type:"path"`
	Version kong.VersionFlag `help:"Print version information and exit"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Run the input demonstration (default)"`
	Bindings BindingsCmd `cmd:"" help:"Write the default key bindings to stdout"`
}

func init() {
	// SDL requires that window and event functions are called from the main
	// thread
	runtime.LockOSThread()
}

func main() {
	yamlPaths, tomlPaths := configCandidatePaths(findUserConfig(os.Args[1:]))

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(version.ApplicationName),
		kong.Description("Event normalisation and touch controls for the Abuse SDL port"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		// flags override configuration file values
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("SDLPORT_CONFIG"); v != "" {
		return v
	}
	return ""
}

// configCandidatePaths returns the configuration files to try for each
// loader. the user's file is routed by extension and tried first.
func configCandidatePaths(userPath string) (yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			yamlPaths = append(yamlPaths, userPath)
		}
	}

	if pth, err := paths.ResourcePath("", "config"); err == nil {
		yamlPaths = append(yamlPaths, pth+".yaml", pth+".yml")
		tomlPaths = append(tomlPaths, pth+".toml")
	}

	return yamlPaths, tomlPaths
}
