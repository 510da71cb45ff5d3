// Package cmd provides command-line interface commands for jiralog
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jiralog/internal/jiralog"
	"jiralog/internal/jiralog/config"
	"jiralog/internal/jiralog/jira"
	"jiralog/internal/log"
)

var (
	rootCSV    string
	rootDryRun bool
	rootLimit  int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jiralog",
	Short: "Log timesheet entries from a CSV file to Jira",
	Long: `jiralog - Batch worklog submission for Jira Cloud

Reads timesheet entries from a CSV file and logs each one as a worklog
against its Jira ticket.

The CSV needs a header row with these columns:
  Date, Jira Ticket Number, Work Description, Hours

Credentials are read from JIRA_EMAIL, JIRA_API_TOKEN, JIRA_DOMAIN and
the optional JIRA_CLOUD_ID, either from the environment or from a .env
file in the working directory. Run 'jiralog init' to create one.

Run settings (CSV path, request delay, day start time) can be tuned per
directory through a ` + config.OptionsFile + ` file.`,
	Example: `  # Log everything in timesheet_data.csv
  jiralog

  # Preview without touching Jira
  jiralog --dry-run

  # Log the first 3 entries of another file
  jiralog --csv sprint-42.csv --limit 3`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Enable debug mode if flag is set
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		runTimesheet(cmd)
	},
}

// runTimesheet wires configuration, the Jira client and the runner
// together. Row-level failures are already tallied by the runner, only
// configuration and file problems exit non-zero.
func runTimesheet(cmd *cobra.Command) {
	opts, err := config.LoadOptions(config.OptionsFile)
	if err != nil {
		log.Fatal(err)
	}

	csvPath := resolveCSV(cmd.Flags().Changed("csv"), rootCSV, opts.CSV)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(fmt.Sprintf("%v\n"+
			"Create a .env file with your Jira credentials or run 'jiralog init'\n"+
			"Get an API token at: https://id.atlassian.com/manage-profile/security/api-tokens", err))
	}

	dayStart, err := opts.DayStartOffset()
	if err != nil {
		log.Fatal(err)
	}

	log.Info("Jira Timesheet Logger")
	log.InfoH2("Site: %s", cfg.Domain)
	log.InfoH2("User: %s", cfg.Email)

	runner := &jiralog.Runner{Client: jira.NewClient(cfg.Domain, cfg.Email, cfg.APIToken)}
	if _, err := runner.Run(jiralog.RunOptions{
		CSVPath:  csvPath,
		DryRun:   rootDryRun,
		Limit:    rootLimit,
		Delay:    opts.Delay(),
		DayStart: dayStart,
	}); err != nil {
		log.Fatal(err)
	}
}

// resolveCSV picks the timesheet path: an explicit --csv flag wins, then the
// options file value, then the flag default.
func resolveCSV(flagSet bool, flagValue, fileValue string) string {
	if flagSet || fileValue == "" {
		return flagValue
	}
	return fileValue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add debug flag to root command
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&rootCSV, "csv", "timesheet_data.csv", "Path to the timesheet CSV file")
	rootCmd.Flags().BoolVar(&rootDryRun, "dry-run", false, "Validate and preview entries without writing to Jira")
	rootCmd.Flags().IntVar(&rootLimit, "limit", 0, "Maximum number of entries to log (0 = no limit)")
}
