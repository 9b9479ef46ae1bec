// Package careapi provides types, interfaces, and helpers for working with the
// healthcare platform REST API.
//
// # Overview
//
// The careapi package defines the domain types (User, Patient, Program,
// Exercise, Assignment), the interfaces of the endpoint groups (AuthClient,
// UsersClient, PatientsClient, ProgramsClient, ExercisesClient) and the
// error taxonomy. A concrete implementation is provided by the careclient
// package, which wires configuration and the HTTP transport.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/careapi/pkg/careapi"
//	  "github.com/fivetwenty-io/careapi/pkg/careclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli := careclient.New(careapi.NewConfig(careapi.WithBaseURL("https://api.example.com")))
//
//	  auth, err := cli.Auth().Login(ctx, &careapi.LoginRequest{Email: "a@b.com", Password: "secret"})
//	  if err != nil { log.Fatal(err) }
//	  cli.SetAPIKey(auth.AccessToken)
//
//	  programs, err := cli.Programs().List(ctx, careapi.NewQueryParams().WithLimit(20))
//	  if err != nil { log.Fatal(err) }
//	  _ = programs
//	}
//
// # Credentials
//
// The client never stores tokens returned by the auth endpoints and never
// refreshes them. Call SetAPIKey after login or refresh; the new value is
// used by every endpoint group from the next request on.
//
// # Errors
//
// Every failure is an *Error carrying one of a closed set of kinds. Use
// errors.Is with the Err* sentinels, or the helpers IsAuthenticationFailed,
// IsTimeout, IsNetworkError, IsNotFound and IsForbidden, to branch:
// re-authenticate on ErrAuthenticationFailed, retry (if desired) on
// ErrTimeout or ErrNetwork, surface anything else. The client performs no
// retries of its own.
//
// # Queries and pagination
//
// Use QueryParams to express list options (page, limit, search, sort_by,
// sort_order, filters). CollectAll walks every page of a list endpoint:
//
//	all, err := careapi.CollectAll(ctx, cli.Patients().List, careapi.NewQueryParams().WithLimit(100))
package careapi
