// Package driven defines the outbound ports of the core: the interfaces
// the services require from infrastructure adapters (NASA API clients,
// the history store, configuration).
package driven
