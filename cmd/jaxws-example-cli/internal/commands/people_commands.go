package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	soapv1 "github.com/MGTheTrain/jaxws-example/internal/api/soap/v1"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type personOutput struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	JobTitle        string    `json:"jobTitle"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newPersonOutput(p *people.Person) personOutput {
	return personOutput{ID: p.ID, FullName: p.FullName, JobTitle: p.JobTitle, DateTimeCreated: p.DateTimeCreated}
}

// PersonCommandHandler calls the operations of the hibernate endpoint
type PersonCommandHandler struct {
	logger logger.Logger
}

// NewPersonCommandHandler initializes a new PersonCommandHandler with logging
func NewPersonCommandHandler() (*PersonCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &PersonCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ListPersonsCmd prints every stored person as JSON
func (commandHandler *PersonCommandHandler) ListPersonsCmd(cmd *cobra.Command, _ []string) error {
	client, err := commandHandler.personClient(cmd)
	if err != nil {
		return err
	}

	persons, err := client.GetPersons(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list persons: %w", err)
	}
	output := make([]personOutput, 0, len(persons))
	for _, person := range persons {
		output = append(output, newPersonOutput(person))
	}
	return printJSON(cmd, output)
}

// GetPersonCmd prints the person with the given id as JSON
func (commandHandler *PersonCommandHandler) GetPersonCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid person id %q: %w", args[0], err)
	}

	client, err := commandHandler.personClient(cmd)
	if err != nil {
		return err
	}

	person, err := client.GetPerson(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get person %d: %w", id, err)
	}
	return printJSON(cmd, newPersonOutput(person))
}

// CreatePersonCmd stores a new person and prints it with its generated id
func (commandHandler *PersonCommandHandler) CreatePersonCmd(cmd *cobra.Command, _ []string) error {
	fullName, err := cmd.Flags().GetString("full-name")
	if err != nil {
		return fmt.Errorf("invalid full-name flag: %w", err)
	}
	jobTitle, err := cmd.Flags().GetString("job-title")
	if err != nil {
		return fmt.Errorf("invalid job-title flag: %w", err)
	}

	person := &people.Person{FullName: fullName, JobTitle: jobTitle}
	if err := person.Validate(); err != nil {
		return err
	}

	client, err := commandHandler.personClient(cmd)
	if err != nil {
		return err
	}

	created, err := client.CreatePerson(cmd.Context(), person)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	commandHandler.logger.Info("Created person with id ", created.ID)
	return printJSON(cmd, newPersonOutput(created))
}

func (commandHandler *PersonCommandHandler) personClient(cmd *cobra.Command) (*soapv1.PersonClient, error) {
	client, err := newSoapClient(cmd, commandHandler.logger, soapv1.HibernatePath)
	if err != nil {
		return nil, err
	}
	return soapv1.NewPersonClient(client), nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// InitPeopleCommands registers the people command group
func InitPeopleCommands(rootCmd *cobra.Command) error {
	handler, err := NewPersonCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create person command handler %w", err)
	}

	addPeopleCommands(rootCmd, handler)
	return nil
}

func addPeopleCommands(rootCmd *cobra.Command, handler *PersonCommandHandler) {
	var peopleCmd = &cobra.Command{
		Use:   "people",
		Short: "Manage persons through the hibernate endpoint",
	}

	peopleCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all persons",
		Args:  cobra.NoArgs,
		RunE:  handler.ListPersonsCmd,
	})

	peopleCmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a person by id",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.GetPersonCmd,
	})

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a person",
		Args:  cobra.NoArgs,
		RunE:  handler.CreatePersonCmd,
	}
	createCmd.Flags().StringP("full-name", "", "", "Full name of the person")
	createCmd.Flags().StringP("job-title", "", "", "Job title of the person")
	peopleCmd.AddCommand(createCmd)

	rootCmd.AddCommand(peopleCmd)
}
