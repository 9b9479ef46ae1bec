// Package careclient provides the primary entry point for constructing a
// healthcare platform API client that implements the careapi.Client interface.
//
// It wires configuration and the HTTP transport on top of the endpoint group
// interfaces and types defined in the careapi package. Every client owns
// exactly one transport; the endpoint groups returned by Auth(), Users(),
// Patients(), Programs() and Exercises() share it, including its credential.
//
// Quick start
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
//
//	  // Defaults: platform endpoint, no credential, 30 second timeout.
//	  cli := careclient.New(nil)
//
//	  // Or with a token you already have:
//	  cli = careclient.NewWithAPIKey("https://api.example.com", "eyJhbGciOi...")
//
//	  // Or log in and install the returned token:
//	  auth, err := cli.Auth().Login(ctx, &careapi.LoginRequest{Email: "a@b.com", Password: "secret"})
//	  if err != nil { log.Fatal(err) }
//	  cli.SetAPIKey(auth.AccessToken)
//
//	  patients, err := cli.Patients().List(ctx, careapi.NewQueryParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = patients
//	}
//
// # Default client
//
// Applications that want a single shared client call Init once at startup and
// Default wherever the client is needed. Default returns ErrNotInitialized
// until Init has run; a second Init returns ErrAlreadyInitialized.
//
// # Logging
//
// Pass WithLogger(careapi.NewZerologLogger(logger)) to log failed requests,
// and add WithDebug(true) to log every request and response.
package careclient
