package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bitfantasy/nimo-qms/internal/config"
	"github.com/bitfantasy/nimo-qms/internal/qms/export"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
	"github.com/bitfantasy/nimo-qms/internal/qms/repository"
)

var (
	flagPeriod string
	flagOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "qms-report",
		Short:         "Quality report snapshot from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&flagPeriod, "period", "p", "last12months", "reporting period: last3months|last6months|thisyear|last12months")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write xlsx workbook to this path instead of printing tables")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	engine := report.NewEngine(repository.NewStore(db), report.WithFetchTimeout(cfg.Report.FetchTimeout))

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	snap, err := engine.ComputeSnapshot(ctx, report.ParsePeriod(flagPeriod))
	if err != nil {
		return fmt.Errorf("compute snapshot: %w", err)
	}

	if flagOut != "" {
		f, err := export.SnapshotWorkbook(snap)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
		defer f.Close()
		if err := f.SaveAs(flagOut); err != nil {
			return fmt.Errorf("save workbook: %w", err)
		}
		fmt.Printf("Workbook written to %s\n", flagOut)
		return nil
	}

	printSnapshot(snap)
	return nil
}

func yuan(minor int64) string {
	return humanize.CommafWithDigits(float64(minor)/100, 2)
}

func printSnapshot(snap *report.Snapshot) {
	fmt.Printf("Quality Report — %s (generated %s)\n",
		snap.PeriodLabel, snap.GeneratedAt.Format("2006-01-02 15:04"))
	if len(snap.FailedDomains) > 0 {
		fmt.Printf("WARNING: incomplete snapshot, failed domains: %v\n", snap.FailedDomains)
	}
	fmt.Println()

	overview := table.NewWriter()
	overview.SetOutputMirror(os.Stdout)
	overview.SetStyle(table.StyleLight)
	overview.AppendHeader(table.Row{"Metric", "Value"})
	overview.AppendRows([]table.Row{
		{"Issues", humanize.Comma(int64(snap.Issues.Total))},
		{"Open issues", humanize.Comma(int64(snap.Issues.OpenCount))},
		{"Avg closure days", snap.Issues.AvgClosureDays},
		{"Quality cost", yuan(snap.Costs.Total)},
		{"Complaints", snap.Complaints.Total},
		{"SLA overdue complaints", snap.Complaints.SLAOverdue},
		{"Suppliers", snap.Suppliers.Total},
		{"Equipment overdue calibration", snap.Equipment.OverdueCalibrations},
		{"Audits completed", snap.Audits.Completed},
		{"In quarantine", snap.Quarantine.InQuarantine},
		{"Open deviations", snap.Deviations.Open},
	})
	overview.Render()
	fmt.Println()

	if len(snap.HighCostIssues) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.SetTitle("Top Cost Issues")
		t.AppendHeader(table.Row{"No", "Title", "Status", "Total Cost"})
		for _, r := range snap.HighCostIssues {
			t.AppendRow(table.Row{r.Issue.IssueNo, r.Issue.Title, r.Issue.Status, yuan(r.TotalCost)})
		}
		t.Render()
		fmt.Println()
	}

	if len(snap.HighRPNIssues) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.SetTitle("Top RPN Issues")
		t.AppendHeader(table.Row{"No", "Title", "S", "O", "D", "RPN"})
		for _, r := range snap.HighRPNIssues {
			t.AppendRow(table.Row{r.Issue.IssueNo, r.Issue.Title, r.Severity, r.Occurrence, r.Detection, r.RPN})
		}
		t.Render()
		fmt.Println()
	}

	if len(snap.QualityWall.Worst) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.SetTitle("Quality Wall — Needs Improvement")
		t.AppendHeader(table.Row{"Department", "Open", "Closed", "Closure Rate"})
		for _, s := range snap.QualityWall.Worst {
			t.AppendRow(table.Row{s.Name, s.Open, s.Closed, fmt.Sprintf("%.0f%%", s.ClosureRate*100)})
		}
		t.Render()
		fmt.Println()
	}

	alerts := snap.Alerts
	total := len(alerts.StaleIssues) + len(alerts.OverdueCalibrations) + len(alerts.ExpiringDocuments)
	if alerts.CostAnomaly != nil {
		total++
	}
	if total == 0 {
		fmt.Println("No active alerts.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("Alerts (%d)", total))
	t.AppendHeader(table.Row{"Type", "Subject", "Detail"})
	for _, a := range alerts.StaleIssues {
		t.AppendRow(table.Row{"stale issue", a.IssueNo, fmt.Sprintf("%d days old", a.AgeDays)})
	}
	for _, a := range alerts.OverdueCalibrations {
		t.AppendRow(table.Row{"calibration", a.EquipmentName, fmt.Sprintf("%d days overdue", a.DaysOverdue)})
	}
	for _, a := range alerts.ExpiringDocuments {
		t.AppendRow(table.Row{"document", a.Name, fmt.Sprintf("expires in %d days", a.DaysRemaining)})
	}
	if a := alerts.CostAnomaly; a != nil {
		t.AppendRow(table.Row{"cost anomaly", "monthly quality cost", fmt.Sprintf("+%.1f%% vs previous month", a.IncreasePct)})
	}
	t.Render()
}
