package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"numbeo/internal/config"
	"numbeo/internal/errors"
	"numbeo/internal/interfaces"
	"numbeo/internal/logging"
	"numbeo/internal/numbeo"
	"numbeo/internal/output"
	"numbeo/internal/pricing"
	"numbeo/internal/version"
)

// NoDataMessage is reported when the API returns an empty catalog or price list
const NoDataMessage = "No data returned. Check the city/country and API key."

var (
	// Global flags
	apiKey       string
	outputFormat string
	envFile      string
	baseURL      string
	timeout      time.Duration
	verbose      bool

	// Prices flags
	city    string
	country string

	// Version flags
	shortVersion bool

	// now is replaced in tests for stable timestamps
	now = time.Now

	// Root command
	rootCmd = &cobra.Command{
		Use:   "numbeo --city <city> --country <country>",
		Short: "Numbeo cost-of-living prices",
		Long: `numbeo fetches cost-of-living prices for a city from the Numbeo API and
prints them as a table ordered like the Numbeo website.

The API key is read from --api-key, then NUMBEO_API_KEY in the .env file,
then NUMBEO_API_KEY in the environment.`,
		Example: `  # Prices for a city
  numbeo --city "San Francisco, CA" --country "United States"

  # Output as JSON
  numbeo --city Berlin --country Germany --output json

  # Use an explicit API key and a longer timeout
  numbeo --city Tokyo --country Japan --api-key KEY --timeout 1m`,
		Args:          cobra.NoArgs,
		RunE:          runPrices,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Items command
	itemsCmd = &cobra.Command{
		Use:   "items",
		Short: "List the Numbeo item catalog",
		Long: `List every item of the Numbeo catalog in display order, with the
category each price is grouped under.`,
		Args: cobra.NoArgs,
		RunE: runItems,
	}

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version information for numbeo.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout(), shortVersion)
		},
	}
)

func init() {
	// Add persistent flags to root command
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Numbeo API key (optional if NUMBEO_API_KEY is set)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", config.DefaultOutput, "Output format (table, json, csv, yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Path of the dotenv file holding NUMBEO_API_KEY")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", numbeo.DefaultBaseURL, "Numbeo API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", numbeo.DefaultTimeout, "Timeout for each API request")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and responses to stderr")

	rootCmd.Flags().StringVar(&city, "city", "", "City name, e.g. 'San Francisco, CA'")
	rootCmd.Flags().StringVar(&country, "country", "", "Country name, e.g. 'United States'")
	_ = rootCmd.MarkFlagRequired("city")
	_ = rootCmd.MarkFlagRequired("country")

	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print only the version line")

	// Add subcommands
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(versionCmd)

	// Set help template
	rootCmd.SetHelpTemplate(getHelpTemplate())
	rootCmd.Version = version.GetVersionString()
}

// Execute runs the root command. Command handlers only return typed errors,
// so an untyped error comes from cobra rejecting the command line.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && errors.GetErrorType(err) == "" {
		return errors.UsageError(err.Error()).
			WithSuggestion("Run 'numbeo --help' for usage")
	}
	return err
}

// runPrices handles the root command
func runPrices(cmd *cobra.Command, args []string) error {
	settings, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	query, err := settings.Location()
	if err != nil {
		return err
	}

	factory := output.NewFormatterFactory()
	if _, err := factory.GetFormatter(settings.Output); err != nil {
		return err
	}

	logger.Debug("fetching prices", "query", query, "baseURL", settings.BaseURL)

	client := newPriceClient(settings, logger)
	items, prices, err := client.FetchAll(cmd.Context(), query)
	if err != nil {
		return errors.WrapError(err, "", "failed to fetch Numbeo data").
			WithContext("query", query)
	}

	if len(items) == 0 || len(prices.Prices) == 0 {
		return errors.NoDataError(NoDataMessage).
			WithContext("query", query).
			WithContext("items", len(items)).
			WithContext("prices", len(prices.Prices))
	}

	report := pricing.BuildReport(items, prices, query, now())
	logger.Debug("built report", "city", report.City, "rows", len(report.Rows))

	return writeReport(cmd.OutOrStdout(), factory, report, settings.Output)
}

// runItems handles the items command
func runItems(cmd *cobra.Command, args []string) error {
	settings, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if settings.Output != config.DefaultOutput {
		return errors.ValidationErrorf("the items command only supports table output, got '%s'", settings.Output).
			WithSuggestion("Drop --output or use --output table")
	}

	client := newPriceClient(settings, logger)
	items, err := client.Items(cmd.Context())
	if err != nil {
		return errors.WrapError(err, "", "failed to fetch Numbeo item catalog")
	}

	catalog := pricing.BuildItemIndex(items).SortedCatalog()
	if len(catalog) == 0 {
		return errors.NoDataError(NoDataMessage)
	}

	return writeCatalog(cmd.OutOrStdout(), catalog)
}

// loadSettings resolves the configuration shared by all API commands
func loadSettings(cmd *cobra.Command) (*config.Settings, *slog.Logger, error) {
	env, err := config.LoadEnvFile(envFile)
	if err != nil {
		return nil, nil, err
	}

	settings, err := config.Resolve(config.Flags{
		City:    city,
		Country: country,
		APIKey:  apiKey,
		Output:  outputFormat,
		EnvFile: envFile,
		BaseURL: baseURL,
		Timeout: timeout,
		Verbose: verbose,
	}, env)
	if err != nil {
		return nil, nil, err
	}

	return settings, logging.New(cmd.ErrOrStderr(), settings.Verbose), nil
}

// newPriceClient builds the API client for the resolved settings
func newPriceClient(settings *config.Settings, logger *slog.Logger) interfaces.PriceClient {
	return numbeo.NewClient(settings.APIKey,
		numbeo.WithBaseURL(settings.BaseURL),
		numbeo.WithTimeout(settings.Timeout),
		numbeo.WithLogger(logger),
	)
}

func getHelpTemplate() string {
	return `{{.Long}}

Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}
