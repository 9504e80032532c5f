package main

import (
	"log"
	"os"

	"hskctl/cmd"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "hskctl",
		Usage: "Move HSK vocabulary data between the hsk_words table and CSV files",
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.ExportCommand(),
			cmd.ImportCommand(),
			cmd.VerifyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
