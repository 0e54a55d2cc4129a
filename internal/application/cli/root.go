package cli

import (
	"context"
	"fmt"

	"census-etl/internal/domain/model"
	"census-etl/pkg/msg"
	"census-etl/pkg/resource"

	"github.com/spf13/cobra"
)

// RunFunc executes one pipeline run. dryRun skips the load.
type RunFunc func(ctx context.Context, dryRun bool) error

type options struct {
	dryRun         bool
	propertiesFile string
	messagesFile   string
}

// NewRootCommand builds the census-etl command. run is called once per invocation of the root command.
func NewRootCommand(run RunFunc) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "census-etl",
		Short: "Extract U.S. city populations from the census API and load them into the warehouse",
		Long: `census-etl queries the census statistics API once per state-level jurisdiction,
keeps the places above the population threshold and upserts them into the warehouse.

The API key is read from CENSUS_API_KEY.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts.dryRun)
		},
	}

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "extract without loading into the warehouse")
	rootCmd.PersistentFlags().StringVar(&opts.propertiesFile, "properties", "", "properties file (default: $PROPERTIES_FILE_PATH or configs/application.yml)")
	rootCmd.PersistentFlags().StringVar(&opts.messagesFile, "messages", "", "message catalogue (default: $MESSAGES_FILE_PATH or configs/messages.yml)")

	rootCmd.AddCommand(newJurisdictionsCommand())
	return rootCmd
}

func (o *options) loadConfig() error {
	if o.propertiesFile != "" {
		if err := resource.Init(o.propertiesFile); err != nil {
			return fmt.Errorf("failed to load properties: %w", err)
		}
	}
	if o.messagesFile != "" {
		if err := msg.Init(o.messagesFile); err != nil {
			return fmt.Errorf("failed to load messages: %w", err)
		}
	}
	return nil
}

func newJurisdictionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jurisdictions",
		Short: "List the jurisdictions queried by a run",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, jurisdiction := range model.Jurisdictions {
				fmt.Fprintf(out, "%s\t%s\t%s\n", jurisdiction.FIPS(), jurisdiction.Abbreviation, jurisdiction.Name)
			}
		},
	}
}
