package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Replace the contents of the hsk_words table with rows from a CSV file",
		Flags: []cli.Flag{
			envFlag(),
			driverFlag(),
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "CSV file to import",
			},
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "Skip the confirmation prompt",
			},
		},
		Action: func(c *cli.Context) error {
			csvPath := c.String("file")

			// The CSV must exist before anything destructive, or even a
			// connection attempt, happens.
			if _, err := os.Stat(csvPath); err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("CSV file not found: %s", csvPath)
				}
				return fmt.Errorf("checking CSV file: %v", err)
			}

			if !c.Bool("yes") {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return fmt.Errorf("stdin is not a terminal; re-run with --yes to confirm the destructive import")
				}
				fmt.Printf("This will:\n")
				fmt.Printf("  1. DELETE all existing data from the hsk_words table\n")
				fmt.Printf("  2. Import data from: %s\n", csvPath)
				fmt.Print("\nProceed? (y/n): ")

				answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading confirmation: %v", err)
				}
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			store, _, err := openStore(c)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.ImportCSV(csvPath)
			if err != nil {
				return fmt.Errorf("importing data: %v", err)
			}
			fmt.Printf("Completed! Inserted %d records successfully.\n", count)

			report, err := store.Verify()
			if err != nil {
				return fmt.Errorf("verifying data: %v", err)
			}
			renderReport(report)

			return nil
		},
	}
}
