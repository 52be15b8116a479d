// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	EnvironmentNotFoundId Id = iota + 1
	InterpreterMissingId
	NoActiveEnvironmentId
	PackageQueryFailedId
	CreationFailedId
	ConfigLoadFailedId
	PythonNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	environmentNotFoundIssue = &Issue{
		id: EnvironmentNotFoundId,
		mdMsg: `
# Environment not found!

The environment's directory could not be located under any configured
search path. It was most likely moved, renamed, or deleted after it was
discovered.

## Things you can try:
- Re-list environments to refresh discovery:
~~~
$ venvkit list
~~~

- Check the configured search roots:
~~~
$ venvkit config show
~~~

- If the environment was renamed, activate it by its new identifier.`,
	}

	interpreterMissingIssue = &Issue{
		id: InterpreterMissingId,
		mdMsg: `
# Python interpreter missing!

The environment directory exists, but it has no Python executable at the
expected location (bin/python on POSIX, Scripts\python.exe on Windows).

## Common causes:
- The environment was only partially created
- The base interpreter it was built from was removed
- The directory is not actually a virtual environment

## Things you can try:
- Recreate the environment:
~~~
$ venvkit create /path/to/project/.venv
~~~

- Remove the broken directory so it stops showing up in discovery.`,
	}

	noActiveEnvironmentIssue = &Issue{
		id: NoActiveEnvironmentId,
		mdMsg: `
# No active environment!

Deactivate was called, but no environment is currently active.
This is a no-op notice, not a failure.

## Things you can try:
- See what is active:
~~~
$ venvkit current
~~~

- Activate an environment first:
~~~
$ venvkit activate <id>
~~~`,
	}

	packageQueryFailedIssue = &Issue{
		id: PackageQueryFailedId,
		mdMsg: `
# Package listing failed!

The environment's package manager could not be invoked, or exited with an
error. The raw output is included in the listing itself.

## Common causes:
- pip is not installed inside the environment
- The environment's interpreter is broken
- conda is not on PATH (for conda environments)

## Things you can try:
- Run pip directly to see the full error:
~~~
$ <env>/bin/python -m pip list
~~~`,
	}

	creationFailedIssue = &Issue{
		id: CreationFailedId,
		mdMsg: `
# Environment creation failed!

The new virtual environment could not be created. When the creation
subprocess fails partway, the target directory is left as-is and may need
manual cleanup.

## Common causes:
- The target directory already exists
- No python3/python interpreter on PATH
- The venv module is not available (some distros package it separately)

## Things you can try:
- Pick a directory that does not exist yet
- Install the venv module, e.g. on Debian/Ubuntu:
~~~
$ sudo apt install python3-venv
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the venvkit configuration file.

## Configuration file locations:
- Linux: ~/.config/venvkit/config.cue
- macOS: ~/Library/Application Support/venvkit/config.cue
- Windows: %APPDATA%\venvkit\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ venvkit config init
~~~

- Check the configuration syntax
- Remove the config file to fall back to defaults

## Example configuration:
~~~cue
venv_paths: [
	"/home/user/envs",
]
parent_depth: 3
conda_enabled: true
~~~`,
	}

	pythonNotFoundIssue = &Issue{
		id: PythonNotFoundId,
		mdMsg: `
# No Python interpreter found!

Creating a virtual environment needs a base interpreter, but neither
python3 nor python was found on PATH.

## Things you can try:
- Install Python:
  - Linux: ` + "`sudo apt install python3`" + ` or ` + "`sudo dnf install python3`" + `
  - macOS: ` + "`brew install python`" + `
  - Windows: https://www.python.org/downloads/

- Pass an explicit interpreter:
~~~
$ venvkit create .venv --python /usr/local/bin/python3.12
~~~`,
	}

	issues = map[Id]*Issue{
		environmentNotFoundIssue.Id(): environmentNotFoundIssue,
		interpreterMissingIssue.Id():  interpreterMissingIssue,
		noActiveEnvironmentIssue.Id(): noActiveEnvironmentIssue,
		packageQueryFailedIssue.Id():  packageQueryFailedIssue,
		creationFailedIssue.Id():      creationFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		pythonNotFoundIssue.Id():      pythonNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
