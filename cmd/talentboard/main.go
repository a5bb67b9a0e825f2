package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexpand/talentboard/internal/compose"
	"github.com/wexpand/talentboard/internal/config"
	"github.com/wexpand/talentboard/internal/normalize"
	"github.com/wexpand/talentboard/internal/report"
	"github.com/wexpand/talentboard/internal/server"
	"github.com/wexpand/talentboard/internal/source"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "talentboard",
	Short:   "Recruiting funnel reporting",
	Long:    "Talentboard turns the recruiting team's sheet export into hiring velocity, funnel, workload and sourcing-alert reports.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("talentboard", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/talentboard/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to point at your sheet export and tune the thresholds.")
		return nil
	},
}

// --- check command ---

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch the source and summarize what it contains",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(checkFile)
		if err != nil {
			return err
		}

		rows := normalize.Normalize(records)
		fmt.Printf("Source rows: %d (%d dropped for invalid dates)\n", len(rows), len(records)-len(rows))

		min, max, ok := report.DateRange(rows)
		if !ok {
			return report.ErrNoData
		}
		fmt.Printf("Date range: %s to %s\n", min.Format("2006-01-02"), max.Format("2006-01-02"))

		positions := report.Positions(rows)
		fmt.Printf("Positions: %d\n", len(positions))
		for _, p := range positions {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

// --- report command ---

var (
	reportFile     string
	reportPeriod   string
	reportPosition string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run one evaluation pass and print the markdown briefing",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(reportFile)
		if err != nil {
			return err
		}

		period, ok := report.ParsePeriod(reportPeriod)
		if !ok {
			return fmt.Errorf("unknown period %q (use week, month, quarter or year)", reportPeriod)
		}

		rep, err := report.Build(normalize.Normalize(records), report.Options{
			Period:   period,
			Position: reportPosition,
			Now:      time.Now(),
			Policy:   report.PolicyFrom(cfg),
		})
		if err != nil {
			return err
		}

		fmt.Print(compose.Briefing(rep))
		return nil
	},
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		client := source.NewClient(time.Duration(cfg.Source.TimeoutSeconds) * time.Second)
		url := cfg.Source.SheetURL
		load := func() ([]source.Record, error) { return client.Fetch(url) }

		fmt.Printf("Starting dashboard at http://localhost:%d\n", port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(load, report.PolicyFrom(cfg), port)
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Read a local CSV export instead of fetching")
	reportCmd.Flags().StringVar(&reportFile, "file", "", "Read a local CSV export instead of fetching")
	reportCmd.Flags().StringVar(&reportPeriod, "period", "week", "Reporting period: week, month, quarter or year")
	reportCmd.Flags().StringVar(&reportPosition, "position", report.AllPositions, "Filter to one position")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run the server on (default from config)")
}

// loadRecords reads from a local file when given one, otherwise fetches the
// configured sheet export.
func loadRecords(file string) ([]source.Record, error) {
	if file != "" {
		return source.FromFile(file)
	}
	client := source.NewClient(time.Duration(cfg.Source.TimeoutSeconds) * time.Second)
	return client.Fetch(cfg.Source.SheetURL)
}
