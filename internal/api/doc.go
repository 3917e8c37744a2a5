// Package api provides the HTTP client for the Pali todo server.
//
// Every endpoint wraps its payload in a {success, data, error} envelope
// and authenticates via the X-API-Key header. The client exposes the todo
// operations (create, list, get, update, delete, toggle, search) plus the
// admin key-management endpoints used by 'pacli admin'.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client := api.NewClient(cfg)
//
//	todos, err := client.ListTodos("", "")
//	if err != nil {
//	    return err
//	}
//
// # Errors
//
// All failures are returned as *api.Error with a Kind that distinguishes
// transport failures, authentication problems, not-found, and server
// errors. Use the helpers (api.IsNotFound, api.IsAuthError, ...) or
// errors.As to inspect them. Not-found is a distinct outcome so callers
// can react to a missing todo without string matching.
//
// # Partial IDs
//
// List output shows 8-character ID prefixes. ResolvePartialID expands a
// prefix back to a full ID, preferring the server's resolve endpoint and
// falling back to a client-side scan for older servers.
package api
