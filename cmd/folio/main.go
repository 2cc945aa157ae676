package main

import "github.com/as1coder/portfolioBuilder/cmd/folio/cmd"

func main() {
	cmd.Execute()
}
