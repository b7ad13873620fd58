package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
)

// checkTimeout bounds a single health check
const checkTimeout = 5 * time.Second

// HealthCheck reports the state of one dependency. A non-nil error marks it unhealthy.
type HealthCheck interface {
	Check(ctx context.Context) (string, error)
}

// HealthCheckFunc adapts a function to the HealthCheck interface
type HealthCheckFunc func(ctx context.Context) (string, error)

// Check calls f(ctx)
func (f HealthCheckFunc) Check(ctx context.Context) (string, error) {
	return f(ctx)
}

// Result is the outcome of a single health check
type Result struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// HealthCheckRegistry holds named health checks
type HealthCheckRegistry struct {
	mu     sync.RWMutex
	checks map[string]HealthCheck
}

// NewHealthCheckRegistry creates an empty registry
func NewHealthCheckRegistry() *HealthCheckRegistry {
	return &HealthCheckRegistry{checks: make(map[string]HealthCheck)}
}

// Register adds check under name, replacing an existing check of the same name
func (r *HealthCheckRegistry) Register(name string, check HealthCheck) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = check
}

// Names returns the registered check names in order
func (r *HealthCheckRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunAll runs every check concurrently
func (r *HealthCheckRegistry) RunAll(ctx context.Context) map[string]Result {
	r.mu.RLock()
	checks := make(map[string]HealthCheck, len(r.checks))
	for name, check := range r.checks {
		checks[name] = check
	}
	r.mu.RUnlock()

	var mu sync.Mutex
	var wg sync.WaitGroup
	results := make(map[string]Result, len(checks))
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check HealthCheck) {
			defer wg.Done()
			result := run(ctx, check)
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()
	return results
}

func run(ctx context.Context, check HealthCheck) (result Result) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			result = Result{Healthy: false, Message: fmt.Sprintf("check panicked: %v", r)}
		}
	}()

	message, err := check.Check(ctx)
	if err != nil {
		return Result{Healthy: false, Message: err.Error()}
	}
	return Result{Healthy: true, Message: message}
}

// NewEndpointsCheck is healthy while bundle has at least one published endpoint
func NewEndpointsCheck(bundle *soap.Bundle) HealthCheck {
	return HealthCheckFunc(func(context.Context) (string, error) {
		endpoints := bundle.Endpoints()
		if len(endpoints) == 0 {
			return "", errors.New("no SOAP endpoints published")
		}
		return fmt.Sprintf("%d SOAP endpoints published", len(endpoints)), nil
	})
}
