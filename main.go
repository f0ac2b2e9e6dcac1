package main

import "github.com/rocketscienceinc/tictactoe-leaderboard/internal/cli"

func main() {
	cli.Execute()
}
