package cmd

import (
	"fmt"
	"os"
	"strconv"

	db "hskctl/database"
	"hskctl/internal/config"
	utils "hskctl/internal/utils"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func envFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "env",
		Usage:   "Environment to load appsettings for (development or production; defaults to OS detection)",
		EnvVars: []string{"HSKCTL_ENV"},
	}
}

func driverFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "driver",
		Usage: "Database driver: mysql, postgres or sqlite (overrides hskctl.yaml)",
	}
}

// openStore resolves the tool config and appsettings for the invocation
// and opens the database connection. The caller owns the returned store
// and must close it.
func openStore(c *cli.Context) (*db.Store, *utils.ToolConfig, error) {
	tool, err := utils.LoadToolConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading hskctl.yaml: %v", err)
	}

	driver := tool.Driver
	if c.String("driver") != "" {
		driver = c.String("driver")
	}

	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return nil, nil, err
	}

	store, err := db.Open(driver, cfg)
	if err != nil {
		return nil, nil, err
	}

	return store, tool, nil
}

// renderReport prints the verification summary the way the original
// import script did: total count plus a per-level table.
func renderReport(report *db.VerifyReport) {
	fmt.Printf("Total records: %d\n", report.Total)

	if len(report.Levels) == 0 {
		return
	}

	fmt.Println("\nRecords by HSK level:")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"HSK Level", "Words"})
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	for _, lc := range report.Levels {
		table.Append([]string{strconv.Itoa(lc.Level), strconv.Itoa(lc.Count)})
	}
	table.Render()
}
