// Package people holds the Person entity persisted by the relational store
// and the contracts of the service and repository that manage it.
package people
