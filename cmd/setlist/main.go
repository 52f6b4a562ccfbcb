// Command setlist manages playlists and steps through them from the shell.
// Every invocation is one command against the saved state: load, apply,
// save.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := &Application{}
	root := app.newRootCommand()
	err := root.Execute()
	app.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
