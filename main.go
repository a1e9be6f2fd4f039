package main

import "github.com/KevinSan9/DataPortfolio/cmd"

func main() {
	cmd.Execute()
}
