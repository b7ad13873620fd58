package commands

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"

	"github.com/spf13/cobra"
)

const (
	defaultAddress = "http://localhost:8080" + config.DefaultSoapBasePath
	defaultTimeout = 10 * time.Second
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// InitClientFlags registers the flags shared by every command talking to a SOAP endpoint
func InitClientFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("address", "a", defaultAddress, "Base address of the published SOAP endpoints")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "Timeout of a single SOAP call")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log outbound and inbound SOAP messages")
}

// newSoapClient builds a client for the endpoint published at path below the --address flag
func newSoapClient(cmd *cobra.Command, log logger.Logger, path string, opts ...soap.ClientOption) (*soap.Client, error) {
	address, err := cmd.Flags().GetString("address")
	if err != nil {
		return nil, fmt.Errorf("invalid address flag: %w", err)
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid timeout flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}

	opts = append(opts, soap.WithTimeout(timeout))
	if verbose {
		opts = append(opts,
			soap.WithClientOutInterceptors(soap.NewLoggingOutInterceptor(log)),
			soap.WithClientInInterceptors(soap.NewLoggingInInterceptor(log)),
		)
	}
	return soap.NewClient(address+path, opts...), nil
}
