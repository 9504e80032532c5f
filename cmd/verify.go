package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Print the hsk_words row count and per-level breakdown",
		Flags: []cli.Flag{
			envFlag(),
			driverFlag(),
		},
		Action: func(c *cli.Context) error {
			store, _, err := openStore(c)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := store.Verify()
			if err != nil {
				return fmt.Errorf("verifying data: %v", err)
			}
			renderReport(report)

			return nil
		},
	}
}
