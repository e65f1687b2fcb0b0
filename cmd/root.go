package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sestrella/ecsr/client"
	"github.com/sestrella/ecsr/command"
	"github.com/sestrella/ecsr/credentials"
	"github.com/sestrella/ecsr/selector"
	"github.com/spf13/cobra"
)

const (
	themeEnv = "ECSR_THEME"
	quoteEnv = "ECSR_QUOTE"
)

var (
	themeName = defaultThemeName
	theme     *huh.Theme
	quote     bool
)

type cascadeRunner interface {
	Run(ctx context.Context) (selector.Selection, error)
}

var rootCmd = &cobra.Command{
	Use:   "ecsr",
	Short: "Builds an ECS execute-command line interactively",
	Long: `Walks through profile, cluster, service, task and container, then prints
the matching "aws ecs execute-command" line.

Environment:
  ECSR_THEME                   prompt theme (` + defaultThemeName + ` by default)
  ECSR_QUOTE                   quote interpolated values when set
  AWS_SHARED_CREDENTIALS_FILE  credentials file to read profiles from`,
	Example:       `  eval "$(ecsr)"`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		selectedTheme, err := themeByName(themeName)
		if err != nil {
			return err
		}
		theme = selectedTheme
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cascade := selector.NewCascade(
			func() ([]string, error) {
				return credentials.Profiles(credentials.Path())
			},
			client.NewClient,
			selector.NewHuhChooser(theme, cmd.ErrOrStderr()),
		)
		return runRoot(cmd.Context(), cascade, quote, cmd.OutOrStdout())
	},
}

func runRoot(ctx context.Context, cascade cascadeRunner, quote bool, out io.Writer) error {
	selection, err := cascade.Run(ctx)
	if err != nil {
		return err
	}

	line := command.Synthesize(selection)
	if quote {
		line, err = command.SynthesizeQuoted(selection)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(out, line)
	return err
}

func Execute(version string) error {
	rootCmd.Version = strings.TrimSpace(version)
	if name := os.Getenv(themeEnv); name != "" {
		themeName = name
	}
	quote = os.Getenv(quoteEnv) != ""

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
