package main

import "github.com/eventdesk/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
