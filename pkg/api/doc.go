// Package api defines the public contracts shared by every vendor client in
// this module.
//
// # Overview
//
// Vendor packages under pkg/vendors expose typed clients built on one request
// pipeline. This package holds what callers interact with directly: Config and
// its functional options, the structured Logger interface with zap and hclog
// adapters, the Endpoint descriptor used by vendor catalogs, and the error
// taxonomy every call reports through.
//
// Getting a client
//
//	cli, err := commonroom.NewFromEnv(api.WithDebug(true))
//	if err != nil { log.Fatal(err) }
//
//	segments, err := cli.Segments().List(ctx)
//
// # Errors
//
// A call fails with one of four error types:
//
//   - *TransportError when no response was received after retries
//   - *ServerError carrying the status and exact response body
//   - *UnexpectedResponseError carrying the status and response handle
//   - *DecodeError when a 2xx body does not match the declared type
//
// StatusCode, IsNotFound, IsUnauthorized and IsRateLimited inspect any of
// them without a type switch.
//
// # Queries
//
// Query collects query parameters. Optional setters take pointers and skip
// nil values, so a parameter the caller did not set never appears on the
// wire, not even as an empty key:
//
//	q := api.NewQuery().OptString("email", filter.Email).OptInt("page", filter.Page)
package api
