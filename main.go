// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/ubuntu/ubuntuwsl/cmd/ubuntuwsl"

func main() {
	cmd.Execute()
}
