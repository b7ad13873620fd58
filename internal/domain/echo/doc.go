// Package echo defines the contracts of the echo style web services:
// an unauthenticated echo, a basic-auth protected echo and an echo
// whose contract is dictated by a hand-written WSDL document.
package echo
