// Package soap publishes and consumes SOAP 1.1 document/literal web services
// on top of gin.
//
// A Bundle owns every published Endpoint under a common base path. An
// endpoint couples a Service (a named set of typed operations) with optional
// HTTP basic authentication, interceptors, message handlers and a unit of
// work wrapping each invocation. The operation to run is selected by the
// local name of the first element inside soap:Body.
//
// Client posts envelopes to a published endpoint and decodes either the
// response payload or a *Fault. CallAsync runs a call on its own goroutine.
//
// Only the subset of SOAP needed by this application is implemented: no
// SOAP 1.2 binding, no WS-* headers, no attachments.
package soap
