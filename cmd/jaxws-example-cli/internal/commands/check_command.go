package commands

import (
	"fmt"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"

	"github.com/spf13/cobra"
)

// CheckConfigCmd parses and validates a configuration file without starting anything
func CheckConfigCmd(cmd *cobra.Command, args []string) error {
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("invalid kind flag: %w", err)
	}

	switch kind {
	case "rest":
		_, err = config.InitializeRestConfig(args[0])
	case "grpc":
		_, err = config.InitializeGrpcConfig(args[0])
	default:
		return fmt.Errorf("unknown configuration kind %q (expected rest or grpc)", kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration %s has no errors\n", args[0])
	return nil
}

// InitCheckCommand registers the check command
func InitCheckCommand(rootCmd *cobra.Command) {
	var checkCmd = &cobra.Command{
		Use:   "check <config>",
		Short: "Parse and validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  CheckConfigCmd,
	}
	checkCmd.Flags().StringP("kind", "k", "rest", "Configuration kind: rest or grpc")
	rootCmd.AddCommand(checkCmd)
}
