package commands

import (
	"fmt"

	soapv1 "github.com/MGTheTrain/jaxws-example/internal/api/soap/v1"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"

	"github.com/spf13/cobra"
)

// EchoCommandHandler calls the echo operations of the simple, javafirst and wsdlfirst endpoints
type EchoCommandHandler struct {
	logger logger.Logger
}

// NewEchoCommandHandler initializes a new EchoCommandHandler with logging
func NewEchoCommandHandler() (*EchoCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &EchoCommandHandler{
		logger: loggerInstance,
	}, nil
}

// SimpleEchoCmd calls SimpleService.echo
func (commandHandler *EchoCommandHandler) SimpleEchoCmd(cmd *cobra.Command, args []string) error {
	client, err := newSoapClient(cmd, commandHandler.logger, soapv1.SimplePath)
	if err != nil {
		return err
	}

	result, err := soapv1.NewSimpleClient(client).Echo(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("simple echo failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// JavaFirstEchoCmd calls JavaFirstService.echo with basic auth credentials
func (commandHandler *EchoCommandHandler) JavaFirstEchoCmd(cmd *cobra.Command, args []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	client, err := newSoapClient(cmd, commandHandler.logger, soapv1.JavaFirstPath, soap.WithBasicAuth(username, password))
	if err != nil {
		return err
	}

	result, err := soapv1.NewJavaFirstClient(client).Echo(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("javafirst echo failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// WsdlFirstEchoCmd calls WsdlFirstService.Echo through the client-side handler
func (commandHandler *EchoCommandHandler) WsdlFirstEchoCmd(cmd *cobra.Command, args []string) error {
	client, err := commandHandler.wsdlFirstClient(cmd)
	if err != nil {
		return err
	}

	result, err := client.Echo(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("wsdlfirst echo failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// WsdlFirstNonBlockingEchoCmd calls WsdlFirstService.NonBlockingEcho asynchronously and waits for the result
func (commandHandler *EchoCommandHandler) WsdlFirstNonBlockingEchoCmd(cmd *cobra.Command, args []string) error {
	client, err := commandHandler.wsdlFirstClient(cmd)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Invoking NonBlockingEcho asynchronously")
	select {
	case result := <-client.NonBlockingEchoAsync(cmd.Context(), args[0]):
		if result.Err != nil {
			return fmt.Errorf("wsdlfirst nonblocking echo failed: %w", result.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Value)
		return nil
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}
}

func (commandHandler *EchoCommandHandler) wsdlFirstClient(cmd *cobra.Command) (*soapv1.WsdlFirstClient, error) {
	client, err := newSoapClient(cmd, commandHandler.logger, soapv1.WsdlFirstPath,
		soap.WithClientHandlers(soapv1.NewWsdlFirstClientHandler(commandHandler.logger)))
	if err != nil {
		return nil, err
	}
	return soapv1.NewWsdlFirstClient(client), nil
}

// InitEchoCommands registers the simple, javafirst and wsdlfirst command groups
func InitEchoCommands(rootCmd *cobra.Command) error {
	handler, err := NewEchoCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create echo command handler %w", err)
	}

	addEchoCommands(rootCmd, handler)
	return nil
}

func addEchoCommands(rootCmd *cobra.Command, handler *EchoCommandHandler) {
	var simpleCmd = &cobra.Command{
		Use:   "simple",
		Short: "Call the unauthenticated simple endpoint",
	}
	simpleCmd.AddCommand(&cobra.Command{
		Use:   "echo <input>",
		Short: "Echo the input unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleEchoCmd,
	})
	rootCmd.AddCommand(simpleCmd)

	var javaFirstCmd = &cobra.Command{
		Use:   "javafirst",
		Short: "Call the basic auth protected javafirst endpoint",
	}
	var javaFirstEchoCmd = &cobra.Command{
		Use:   "echo <input>",
		Short: "Echo the input together with the authenticated principal",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.JavaFirstEchoCmd,
	}
	javaFirstEchoCmd.Flags().StringP("username", "u", "", "Basic auth user name")
	javaFirstEchoCmd.Flags().StringP("password", "p", "", "Basic auth password")
	javaFirstCmd.AddCommand(javaFirstEchoCmd)
	rootCmd.AddCommand(javaFirstCmd)

	var wsdlFirstCmd = &cobra.Command{
		Use:   "wsdlfirst",
		Short: "Call the endpoint published from the hand-written WSDL",
	}
	wsdlFirstCmd.AddCommand(&cobra.Command{
		Use:   "echo <value>",
		Short: "Call the Echo operation",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.WsdlFirstEchoCmd,
	})
	wsdlFirstCmd.AddCommand(&cobra.Command{
		Use:   "nonblocking-echo <value>",
		Short: "Call the NonBlockingEcho operation asynchronously",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.WsdlFirstNonBlockingEchoCmd,
	})
	rootCmd.AddCommand(wsdlFirstCmd)
}
