package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	utils "hskctl/internal/utils"

	"github.com/urfave/cli/v2"
)

func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the hsk_words table to a timestamped CSV file",
		Flags: []cli.Flag{
			envFlag(),
			driverFlag(),
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output file path (defaults to <export_dir>/hsk_words_<timestamp>.csv)",
			},
		},
		Action: func(c *cli.Context) error {
			store, tool, err := openStore(c)
			if err != nil {
				return err
			}
			defer store.Close()

			outputPath := c.String("output")
			if outputPath == "" {
				outputPath = filepath.Join(tool.ExportDir, utils.TimestampedName("hsk_words", time.Now()))
			}

			count, err := store.ExportCSV(outputPath)
			if err != nil {
				return fmt.Errorf("exporting data: %v", err)
			}

			if count == 0 {
				fmt.Println("No data found.")
				return nil
			}

			fmt.Printf("Exported %d records to %s\n", count, outputPath)
			return nil
		},
	}
}
