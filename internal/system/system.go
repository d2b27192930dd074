// Package system reports facts about the host the CLI runs on.
package system

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zamm-dev/zamm/internal/api"
)

// MethodName is the name of the system info method
const MethodName = "get_system_info"

// Method describes the get_system_info method
var Method = api.NewMethod(MethodName, api.NoArgsFromObject, invoke)

// Shell is a supported login shell
type Shell string

const (
	ShellBash Shell = "Bash"
	ShellZsh  Shell = "Zsh"
)

// Info describes the host shell setup
type Info struct {
	Shell         *Shell  `json:"shell"`
	ShellInitFile *string `json:"shell_init_file"`
}

// ToObject implements api.Encodable
func (i Info) ToObject() api.Object {
	obj := api.Object{"shell": nil, "shell_init_file": nil}
	if i.Shell != nil {
		obj["shell"] = string(*i.Shell)
	}
	if i.ShellInitFile != nil {
		obj["shell_init_file"] = *i.ShellInitFile
	}
	return obj
}

// GetInfo detects the shell from $SHELL and locates its init file
func GetInfo() Info {
	shell := detectShell(os.Getenv("SHELL"))
	if shell == nil {
		return Info{}
	}

	initFile := initFile(*shell)
	return Info{Shell: shell, ShellInitFile: &initFile}
}

func invoke(api.NoArgs) (Info, error) {
	return GetInfo(), nil
}

func detectShell(path string) *Shell {
	var shell Shell
	switch {
	case strings.HasSuffix(path, "/zsh"):
		shell = ShellZsh
	case strings.HasSuffix(path, "/bash"):
		shell = ShellBash
	default:
		return nil
	}
	return &shell
}

// initFile returns the absolute path of the shell's rc file. If the home
// directory is unknown the path keeps its leading ~.
func initFile(shell Shell) string {
	name := ".bashrc"
	if shell == ShellZsh {
		name = ".zshrc"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "~/" + name
	}
	return filepath.Join(home, name)
}
