package v1

import (
	"encoding/xml"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
)

// Target namespaces of the published services
const (
	SimpleServiceNamespace    = "http://jaxws.example.mgthetrain.github.com/SimpleService"
	JavaFirstServiceNamespace = "http://jaxws.example.mgthetrain.github.com/JavaFirstService"
	WsdlFirstServiceNamespace = "http://jaxws.example.mgthetrain.github.com/WsdlFirstService"
	HibernateServiceNamespace = "http://jaxws.example.mgthetrain.github.com/HibernateExampleService"
)

// SimpleEcho is the request of SimpleService.echo
type SimpleEcho struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/SimpleService echo"`
	Input   string   `xml:"input"`
}

// SimpleEchoResponse is the response of SimpleService.echo
type SimpleEchoResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/SimpleService echoResponse"`
	Return  string   `xml:"return"`
}

// JavaFirstEcho is the request of JavaFirstService.echo
type JavaFirstEcho struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/JavaFirstService echo"`
	In      string   `xml:"in"`
}

// JavaFirstEchoResponse is the response of JavaFirstService.echo
type JavaFirstEchoResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/JavaFirstService echoResponse"`
	Return  string   `xml:"return"`
}

// JavaFirstServiceException is the fault detail of JavaFirstService
type JavaFirstServiceException struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/JavaFirstService JavaFirstServiceException"`
	Message string   `xml:"message"`
}

// WsdlFirstEcho is the request of WsdlFirstService.Echo
type WsdlFirstEcho struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/WsdlFirstService Echo"`
	Value   string   `xml:"value"`
}

// WsdlFirstEchoResponse is the response of WsdlFirstService.Echo
type WsdlFirstEchoResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/WsdlFirstService EchoResponse"`
	Value   string   `xml:"value"`
}

// NonBlockingEcho is the request of WsdlFirstService.NonBlockingEcho
type NonBlockingEcho struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/WsdlFirstService NonBlockingEcho"`
	Value   string   `xml:"value"`
}

// NonBlockingEchoResponse is the response of WsdlFirstService.NonBlockingEcho
type NonBlockingEchoResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/WsdlFirstService NonBlockingEchoResponse"`
	Value   string   `xml:"value"`
}

// WsdlFirstServiceFault is the fault detail of WsdlFirstService
type WsdlFirstServiceFault struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/WsdlFirstService WsdlFirstServiceFault"`
	Message string   `xml:"message"`
}

// Person is the XML form of people.Person
type Person struct {
	ID              int64      `xml:"id"`
	FullName        string     `xml:"fullName"`
	JobTitle        string     `xml:"jobTitle"`
	DateTimeCreated *time.Time `xml:"dateTimeCreated,omitempty"`
}

// GetPersons is the request of HibernateExampleService.getPersons
type GetPersons struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService getPersons"`
}

// GetPersonsResponse is the response of HibernateExampleService.getPersons
type GetPersonsResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService getPersonsResponse"`
	Persons []Person `xml:"return"`
}

// GetPerson is the request of HibernateExampleService.getPerson
type GetPerson struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService getPerson"`
	ID      int64    `xml:"id"`
}

// GetPersonResponse is the response of HibernateExampleService.getPerson
type GetPersonResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService getPersonResponse"`
	Person  Person   `xml:"return"`
}

// CreatePerson is the request of HibernateExampleService.createPerson
type CreatePerson struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService createPerson"`
	Person  Person   `xml:"person"`
}

// CreatePersonResponse is the response of HibernateExampleService.createPerson
type CreatePersonResponse struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService createPersonResponse"`
	Person  Person   `xml:"return"`
}

// PersonNotFound is the fault detail of getPerson for an unknown id
type PersonNotFound struct {
	XMLName xml.Name `xml:"http://jaxws.example.mgthetrain.github.com/HibernateExampleService PersonNotFound"`
	ID      int64    `xml:"id"`
}

func personFromDomain(p *people.Person) Person {
	out := Person{ID: p.ID, FullName: p.FullName, JobTitle: p.JobTitle}
	if !p.DateTimeCreated.IsZero() {
		created := p.DateTimeCreated
		out.DateTimeCreated = &created
	}
	return out
}

func (p *Person) toDomain() *people.Person {
	out := &people.Person{ID: p.ID, FullName: p.FullName, JobTitle: p.JobTitle}
	if p.DateTimeCreated != nil {
		out.DateTimeCreated = *p.DateTimeCreated
	}
	return out
}
