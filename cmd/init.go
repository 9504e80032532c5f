package cmd

import (
	"fmt"
	"os"

	utils "hskctl/internal/utils"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an hskctl.yaml configuration file in the current directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "driver",
				Usage: "Default database driver",
				Value: "mysql",
			},
			&cli.StringFlag{
				Name:  "export-dir",
				Usage: "Directory export files are written to",
				Value: ".",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := utils.ToolConfig{
				Driver:    c.String("driver"),
				ExportDir: c.String("export-dir"),
			}

			yamlData, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("creating yaml: %v", err)
			}

			if err := os.WriteFile("hskctl.yaml", yamlData, 0644); err != nil {
				return fmt.Errorf("writing config file: %v", err)
			}

			if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
				return fmt.Errorf("creating export directory: %v", err)
			}

			fmt.Printf("Created hskctl.yaml (driver: %s, export_dir: %s)\n", cfg.Driver, cfg.ExportDir)
			return nil
		},
	}
}
