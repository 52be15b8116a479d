// SPDX-License-Identifier: MPL-2.0

package main

import cmd "venvkit/cmd/venvkit"

func main() {
	cmd.Execute()
}
