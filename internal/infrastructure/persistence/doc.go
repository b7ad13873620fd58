// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer against postgres or sqlite, and offers a
// transactional unit of work that repositories join through the context.
package persistence
