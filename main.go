package main

import "github.com/team-loco/workspaces/cmd/workspaces"

func main() {
	workspaces.Cli()
}
