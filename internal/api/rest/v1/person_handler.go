package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/gin-gonic/gin"
)

// PersonHandler defines the interface for handling person-related operations
type PersonHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type personHandler struct {
	personService people.PersonService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(personService people.PersonService) PersonHandler {
	return &personHandler{personService: personService}
}

// List handles the GET request listing every person
// @Summary List persons
// @Tags Person
// @Produce json
// @Success 200 {array} PersonResponse
// @Failure 500 {object} ErrorResponse
// @Router /people [get]
func (handler *personHandler) List(ctx *gin.Context) {
	persons, err := handler.personService.GetPersons(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []PersonResponse{}
	for _, person := range persons {
		listResponse = append(listResponse, newPersonResponse(person))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for a single person
// @Summary Get a person by id
// @Tags Person
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /people/{id} [get]
func (handler *personHandler) GetByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id < 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid person id %s", idParam)})
		return
	}

	person, err := handler.personService.GetPerson(ctx.Request.Context(), id)
	if errors.Is(err, people.ErrPersonNotFound) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("person with id %d not found", id)})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("could not get person %d: %v", id, err)})
		return
	}

	ctx.JSON(http.StatusOK, newPersonResponse(person))
}

// Create handles the POST request storing a new person
// @Summary Create a person
// @Tags Person
// @Accept json
// @Produce json
// @Param requestBody body CreatePersonRequest true "Person data"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} ErrorResponse
// @Router /people [post]
func (handler *personHandler) Create(ctx *gin.Context) {
	var request CreatePersonRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid person data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	person, err := handler.personService.CreatePerson(ctx.Request.Context(), &people.Person{
		FullName: request.FullName,
		JobTitle: request.JobTitle,
	})
	if errors.Is(err, people.ErrInvalidPerson) {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error creating person: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, newPersonResponse(person))
}
