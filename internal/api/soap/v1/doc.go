// Package v1 publishes the example web services on a soap.Bundle and
// provides typed clients for them.
//
//	/simple      SimpleService, no security
//	/javafirst   JavaFirstService, HTTP basic authentication
//	/wsdlfirst   WsdlFirstService, hand-written WSDL, logging interceptors and a handler
//	/hibernate   HibernateExampleService, each call in a database transaction
package v1
