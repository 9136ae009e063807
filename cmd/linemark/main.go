// linemark inserts a comment marker at the start of every selected line.
package main

import "github.com/thirteen37/linemark/internal/cmd"

func main() {
	cmd.Execute()
}
