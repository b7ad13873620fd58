//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/auth"
	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	simple        *MockSimpleService
	javaFirst     *MockJavaFirstService
	wsdlFirst     *MockWsdlFirstService
	persons       *MockPersonService
	authenticator *MockAuthenticator
	uow           *MockUnitOfWork
	log           *testutil.RecordingLogger
	bundle        *soap.Bundle
	server        *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		simple:        new(MockSimpleService),
		javaFirst:     new(MockJavaFirstService),
		wsdlFirst:     new(MockWsdlFirstService),
		persons:       new(MockPersonService),
		authenticator: new(MockAuthenticator),
		uow:           new(MockUnitOfWork),
		log:           testutil.NewRecordingLogger(),
	}

	bundle, err := soap.NewBundle(&config.SoapSettings{BasePath: config.DefaultSoapBasePath}, f.log)
	require.NoError(t, err)
	f.bundle = bundle

	err = SetupEndpoints(bundle, Services{
		Simple:         f.simple,
		JavaFirst:      f.javaFirst,
		WsdlFirst:      f.wsdlFirst,
		Persons:        f.persons,
		Authentication: soap.NewBasicAuthentication(f.authenticator, "TOP_SECRET"),
		UnitOfWork:     f.uow,
	}, f.log)
	require.NoError(t, err)

	router := gin.New()
	bundle.RegisterRoutes(router)
	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fixture) client(path string, opts ...soap.ClientOption) *soap.Client {
	return f.bundle.NewClient(f.server.URL+config.DefaultSoapBasePath+path, opts...)
}

func TestSetupEndpoints_PublishesAllServices(t *testing.T) {
	f := newFixture(t)

	var paths []string
	for _, e := range f.bundle.Endpoints() {
		paths = append(paths, e.Path())
	}
	assert.Equal(t, []string{HibernatePath, JavaFirstPath, SimplePath, WsdlFirstPath}, paths)

	err := SetupEndpoints(f.bundle, Services{}, f.log)
	assert.Error(t, err, "paths are already taken")
}

func TestSimpleEndpoint_Echo(t *testing.T) {
	f := newFixture(t)
	f.simple.On("Echo", mock.Anything, "Hello").Return("Hello", nil)

	out, err := NewSimpleClient(f.client(SimplePath)).Echo(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
	f.simple.AssertExpectations(t)
}

func TestJavaFirstEndpoint(t *testing.T) {
	f := newFixture(t)
	f.authenticator.On("Authenticate", mock.Anything, auth.Credentials{Username: "johndoe", Password: "secret"}).
		Return(&auth.User{Name: "johndoe"}, nil)
	f.authenticator.On("Authenticate", mock.Anything, mock.Anything).Return(nil, nil)

	hasPrincipal := mock.MatchedBy(func(ctx context.Context) bool {
		user, ok := soap.PrincipalFromContext(ctx)
		return ok && user.Name == "johndoe"
	})
	f.javaFirst.On("Echo", hasPrincipal, "Hello from the protected service!").
		Return("Hello from the protected service!; principal: johndoe", nil)
	f.javaFirst.On("Echo", hasPrincipal, " ").Return("", echo.ErrInvalidParameter)

	client := NewJavaFirstClient(f.client(JavaFirstPath, soap.WithBasicAuth("johndoe", "secret")))

	t.Run("echo with principal", func(t *testing.T) {
		out, err := client.Echo(context.Background(), "Hello from the protected service!")
		require.NoError(t, err)
		assert.Equal(t, "Hello from the protected service!; principal: johndoe", out)
	})

	t.Run("invalid parameter", func(t *testing.T) {
		_, err := client.Echo(context.Background(), " ")
		assert.ErrorIs(t, err, echo.ErrInvalidParameter)

		var fault *soap.Fault
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, "Invalid parameter", fault.String)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		intruder := NewJavaFirstClient(f.client(JavaFirstPath, soap.WithBasicAuth("johndoe", "guess")))
		_, err := intruder.Echo(context.Background(), "Hello")
		assert.ErrorIs(t, err, soap.ErrUnauthorized)
	})
}

func TestWsdlFirstEndpoint(t *testing.T) {
	f := newFixture(t)
	f.wsdlFirst.On("Echo", mock.Anything, "1234567890").Return("1234567890", nil)
	f.wsdlFirst.On("Echo", mock.Anything, "").Return("", echo.ErrInvalidParameter)
	f.wsdlFirst.On("NonBlockingEcho", mock.Anything, "async").Return("async", nil)

	client := NewWsdlFirstClient(f.client(WsdlFirstPath, soap.WithClientHandlers(NewWsdlFirstClientHandler(f.log))))

	t.Run("echo", func(t *testing.T) {
		out, err := client.Echo(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, "1234567890", out)

		assert.True(t, f.log.Contains("Inbound Message"))
		assert.True(t, f.log.Contains("Outbound Message"))
		assert.True(t, f.log.Contains("WsdlFirstServiceHandler: Inbound Echo"))
		assert.True(t, f.log.Contains("WsdlFirstClientHandler: sending Echo"))
	})

	t.Run("fault", func(t *testing.T) {
		_, err := client.Echo(context.Background(), "")
		assert.ErrorIs(t, err, echo.ErrInvalidParameter)
	})

	t.Run("non-blocking echo", func(t *testing.T) {
		select {
		case result := <-client.NonBlockingEchoAsync(context.Background(), "async"):
			require.NoError(t, result.Err)
			assert.Equal(t, "async", result.Value)
		case <-time.After(5 * time.Second):
			t.Fatal("no result from NonBlockingEchoAsync")
		}

		out, err := client.NonBlockingEcho(context.Background(), "async")
		require.NoError(t, err)
		assert.Equal(t, "async", out)
	})

	t.Run("wsdl with actual address", func(t *testing.T) {
		resp, err := http.Get(f.server.URL + "/soap/wsdlfirst?wsdl")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `<soap:address location="`+f.server.URL+`/soap/wsdlfirst"/>`)
		assert.NotContains(t, string(body), soap.AddressPlaceholder)
	})
}

func TestHibernateEndpoint(t *testing.T) {
	f := newFixture(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	john := &people.Person{ID: 1, FullName: "John Doe", JobTitle: "Engineer", DateTimeCreated: created}

	f.uow.On("Run", mock.Anything)
	f.persons.On("GetPersons", mock.Anything).Return([]*people.Person{john}, nil)
	f.persons.On("GetPerson", mock.Anything, int64(1)).Return(john, nil)
	f.persons.On("GetPerson", mock.Anything, int64(42)).Return(nil, people.ErrPersonNotFound)
	f.persons.On("CreatePerson", mock.Anything, mock.MatchedBy(func(p *people.Person) bool { return p.FullName == "Jane Doe" })).
		Return(&people.Person{ID: 2, FullName: "Jane Doe", JobTitle: "Manager", DateTimeCreated: created}, nil)
	f.persons.On("CreatePerson", mock.Anything, mock.Anything).Return(nil, people.ErrInvalidPerson)
	f.persons.On("GetPerson", mock.Anything, int64(7)).Return(nil, errors.New("connection reset"))

	client := NewPersonClient(f.client(HibernatePath))
	ctx := context.Background()

	persons, err := client.GetPersons(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "John Doe", persons[0].FullName)
	assert.True(t, created.Equal(persons[0].DateTimeCreated))

	person, err := client.GetPerson(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", person.JobTitle)

	_, err = client.GetPerson(ctx, 42)
	assert.ErrorIs(t, err, people.ErrPersonNotFound)

	jane, err := client.CreatePerson(ctx, &people.Person{FullName: "Jane Doe", JobTitle: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), jane.ID)

	_, err = client.CreatePerson(ctx, &people.Person{FullName: "", JobTitle: "Nobody"})
	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.True(t, fault.IsClient())

	_, err = client.GetPerson(ctx, 7)
	require.ErrorAs(t, err, &fault)
	assert.True(t, fault.IsServer())

	f.uow.AssertNumberOfCalls(t, "Run", 6)
}
