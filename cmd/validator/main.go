package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/budgetview/budgetview-go/pkg/budgetview"
)

// ValidatorConfig holds configuration for the validator
type ValidatorConfig struct {
	BaseURL string
	Timeout time.Duration
	Strict  bool
	Verbose bool
	Output  string
}

// ReportCoverage records parse coverage for one report envelope
type ReportCoverage struct {
	Key        string         `json:"key"`
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	Timed      bool           `json:"timed"`
	Buckets    map[string]int `json:"buckets,omitempty"`
	MissingIDs int            `json:"missing_ids"`
}

// CoverageReport is the full validation output
type CoverageReport struct {
	Timestamp           time.Time        `json:"timestamp"`
	RawEnvelopes        int              `json:"raw_envelopes"`
	ParsedReports       int              `json:"parsed_reports"`
	DroppedReports      int              `json:"dropped_reports"`
	RawTransactions     int              `json:"raw_transactions"`
	ParsedTransactions  int              `json:"parsed_transactions"`
	DroppedTransactions int              `json:"dropped_transactions"`
	Reports             []ReportCoverage `json:"reports"`
}

func main() {
	config := parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	report, err := run(ctx, config)
	if err != nil {
		log.Fatalf("Validation failed: %v", err)
	}

	if config.Output != "" {
		if err := saveReport(report, config.Output); err != nil {
			log.Fatalf("Failed to save report: %v", err)
		}
	}

	printSummary(report, config.Verbose)

	if config.Strict && (report.DroppedReports > 0 || report.DroppedTransactions > 0) {
		os.Exit(1)
	}
}

func parseFlags() *ValidatorConfig {
	config := &ValidatorConfig{}
	flag.StringVar(&config.BaseURL, "base-url", "http://localhost:3000", "Budget backend base URL")
	flag.DurationVar(&config.Timeout, "timeout", 30*time.Second, "Fetch timeout")
	flag.BoolVar(&config.Strict, "strict", false, "Exit non-zero when any record is dropped")
	flag.BoolVar(&config.Verbose, "verbose", false, "Print per-report coverage")
	flag.StringVar(&config.Output, "output", "", "Write the JSON coverage report to this file")
	flag.Parse()
	return config
}

func run(ctx context.Context, config *ValidatorConfig) (*CoverageReport, error) {
	report := &CoverageReport{Timestamp: time.Now()}

	// Fetch the raw documents directly so the raw record counts are known;
	// the client would hide dropped entries behind its best-effort parse.
	var rawReports []interface{}
	if err := fetchJSON(ctx, config.BaseURL+budgetview.ReportsPath, &rawReports); err != nil {
		return nil, fmt.Errorf("fetch reports: %w", err)
	}

	var rawTransactions struct {
		Transactions map[string]interface{} `json:"transactions"`
	}
	if err := fetchJSON(ctx, config.BaseURL+budgetview.TransactionsPath, &rawTransactions); err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	reports := budgetview.ParseReports(rawReports)
	transactions := budgetview.ParseTransactions(rawTransactions.Transactions)

	report.RawEnvelopes = len(rawReports)
	report.ParsedReports = len(reports)
	report.DroppedReports = len(rawReports) - len(reports)
	report.RawTransactions = len(rawTransactions.Transactions)
	report.ParsedTransactions = len(transactions)
	report.DroppedTransactions = len(rawTransactions.Transactions) - len(transactions)

	for _, r := range reports {
		report.Reports = append(report.Reports, coverageFor(r, transactions))
	}

	return report, nil
}

func coverageFor(r *budgetview.Report, transactions map[string]*budgetview.Transaction) ReportCoverage {
	coverage := ReportCoverage{
		Key:   r.Key,
		Name:  r.Info.Name,
		Kind:  string(r.Info.Config.Type),
		Timed: r.Timed != nil,
	}

	if r.Timed != nil {
		coverage.Buckets = map[string]int{}
		for _, tf := range r.Timed.Populated() {
			coverage.Buckets[string(tf)] = len(r.Timed.By(tf))
		}
		for _, buckets := range [](map[budgetview.Date]budgetview.ReportData){
			r.Timed.ByWeek, r.Timed.ByMonth, r.Timed.ByQuarter, r.Timed.ByYear,
		} {
			for _, data := range buckets {
				coverage.MissingIDs += missingIDs(data, transactions)
			}
		}
		return coverage
	}

	coverage.MissingIDs = missingIDs(r.Data, transactions)
	return coverage
}

// missingIDs counts referenced transaction ids absent from the fetched
// mapping; those render through the placeholder decode path.
func missingIDs(data budgetview.ReportData, transactions map[string]*budgetview.Transaction) int {
	var ids []string
	switch d := data.(type) {
	case *budgetview.RollingBudgetData:
		ids = d.Transactions
	case *budgetview.CategoriesData:
		for _, c := range d.Categories {
			ids = append(ids, c.Transactions...)
		}
	}

	missing := 0
	for _, id := range ids {
		if _, ok := transactions[id]; !ok {
			missing++
		}
	}
	return missing
}

func fetchJSON(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func saveReport(report *CoverageReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSummary(report *CoverageReport, verbose bool) {
	fmt.Println("=== Parse Coverage ===")
	fmt.Printf("Reports:      %d/%d parsed (%d dropped)\n",
		report.ParsedReports, report.RawEnvelopes, report.DroppedReports)
	fmt.Printf("Transactions: %d/%d parsed (%d dropped)\n",
		report.ParsedTransactions, report.RawTransactions, report.DroppedTransactions)

	if !verbose {
		return
	}
	for _, r := range report.Reports {
		fmt.Printf("  %-20s %-20s timed=%-5v missing_ids=%d", r.Key, r.Kind, r.Timed, r.MissingIDs)
		for tf, count := range r.Buckets {
			fmt.Printf(" %s=%d", tf, count)
		}
		fmt.Println()
	}
}
