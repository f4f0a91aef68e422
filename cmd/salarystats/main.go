package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	"github.com/dmfrolov/salarystats/internal/aggregate"
	"github.com/dmfrolov/salarystats/internal/client"
	"github.com/dmfrolov/salarystats/internal/config"
	"github.com/dmfrolov/salarystats/internal/models"
	"github.com/dmfrolov/salarystats/internal/provider"
	"github.com/dmfrolov/salarystats/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 SalaryStats Usage Examples 📋")
	fmt.Println("\n1. Compare programmer salaries for the default city (Москва):")
	fmt.Println("   salarystats")

	fmt.Println("\n2. Compare salaries in another city over the last week:")
	fmt.Println("   salarystats -city \"Санкт-Петербург\" -period 7")

	fmt.Println("\n3. Compare a custom set of languages and silence the banner:")
	fmt.Println("   salarystats -languages \"Go,Rust,Kotlin\" -silence")

	fmt.Println("\n4. Route API traffic through a proxy with page-by-page logging:")
	fmt.Println("   salarystats -proxy http://localhost:8080 -debug")

	fmt.Println("\nSet SUPERJOB_KEY (env or .env) to include the SuperJob report.")
	os.Exit(0)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Command line flags; environment supplies the defaults
	city := flag.String("city", cfg.City, "City to compare salaries in")
	languages := flag.String("languages", cfg.Languages, "Comma-separated list of languages to compare")
	period := flag.Int("period", cfg.PeriodDays, "Only count HeadHunter vacancies published within this many days (0 to disable)")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	debug := flag.Bool("debug", false, "Enable debug mode")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner and progress bars")
	noBanner := flag.Bool("nobanner", false, "Silence the banner and progress bars (alias for -silence)")

	flag.Parse()

	quiet := *silence || *noBanner
	ui.PrintBanner(quiet)

	if *examples {
		printExamples()
		return
	}

	cfg.Languages = *languages
	languageList := cfg.LanguageList()
	if len(languageList) == 0 {
		log.Fatal("At least one language is required")
	}

	httpClient := client.CreateProxyHTTPClient(*proxyURL)
	ctx := context.Background()

	providers := []provider.Provider{
		provider.NewHeadHunter(httpClient, *period, *debug),
	}
	if cfg.HasSuperJobKey() {
		providers = append(providers, provider.NewSuperJob(httpClient, cfg.SuperJobKey, cfg.CatalogueID, *debug))
	} else {
		fmt.Println("SUPERJOB_KEY is not set, skipping the SuperJob report")
	}

	for _, p := range providers {
		runReport(ctx, p, *city, languageList, quiet)
	}
}

// runReport builds and renders one provider's table. Failures are
// printed and swallowed so the remaining reports still run; the process
// exits 0 either way.
func runReport(ctx context.Context, p provider.Provider, city string, languages []string, quiet bool) {
	progress := &models.ScrapeProgress{}
	if !quiet {
		fmt.Printf("\nSearching %s vacancies in %s...\n", p.Name(), city)
		progress.Bar = pb.StartNew(len(languages))
	}

	report, err := aggregate.BuildReport(ctx, p, city, languages, progress)
	if progress.Bar != nil {
		progress.Bar.Finish()
	}
	if err != nil {
		pterm.Println(pterm.Red(fmt.Sprintf("Error: %v", err)))
		return
	}

	if !quiet {
		fmt.Printf("Found %d vacancies across %d languages\n", progress.FoundVacancies, len(languages))
	}

	if err := ui.RenderReport(report); err != nil {
		pterm.Println(pterm.Red(fmt.Sprintf("Error: %v", err)))
	}
}
