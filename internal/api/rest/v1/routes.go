package v1

import (
	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r gin.IRouter,
	wsdlFirstClient echo.WsdlFirstAsyncService,
	javaFirstClient echo.JavaFirstService,
	personService people.PersonService) {

	v1 := r.Group(BasePath)

	// SOAP client resources
	echoClientHandler := NewEchoClientHandler(wsdlFirstClient, javaFirstClient)
	v1.GET("/wsdlfirstclient", echoClientHandler.WsdlFirstEcho)
	v1.GET("/wsdlfirstclient/nonblocking", echoClientHandler.WsdlFirstNonBlockingEcho)
	v1.GET("/javafirstclient", echoClientHandler.JavaFirstEcho)

	// People
	personHandler := NewPersonHandler(personService)
	v1.GET("/people", personHandler.List)
	v1.GET("/people/:id", personHandler.GetByID)
	v1.POST("/people", personHandler.Create)
}
