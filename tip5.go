// Hash calculator over 64-bit field elements.
package main

import "github.com/maxirmx/tip5/cmd"

func main() {
	cmd.Main()
}
