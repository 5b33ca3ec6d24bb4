// Package paw provides types, interfaces, and helpers for working with the
// PythonAnywhere web API.
//
// # Overview
//
// The paw package defines the domain types (e.g., Webapp, SSLInfo, CPUUsage)
// and the interfaces for resource-oriented clients (WebappsClient, CPUClient).
// A concrete implementation of these clients is provided by the pawclient
// package, which wires configuration, transport, and token resolution. Most
// consumers should import pawclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/paw-tools/paw/pkg/paw"
//	  "github.com/paw-tools/paw/pkg/pawclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := pawclient.New(&paw.Config{Username: "alice"})
//	  if err != nil { log.Fatal(err) }
//
//	  webapps, err := cli.Webapps().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = webapps
//	}
//
// # Webapp handles
//
// A single webapp is identified by its domain name. WebappRef is a comparable
// handle around that domain; construct one with Ref:
//
//	info, err := cli.Webapps().Get(ctx, paw.Ref("alice.pythonanywhere.com"))
//
// # Errors
//
// Failed API responses are represented by APIError, which carries the request
// URL, the HTTP status, and the raw response body. Helpers such as IsNotFound,
// IsConflict, and IsForbidden make it easy to branch on common cases. Local
// precondition failures use static sentinel errors (ErrAPITokenMissing,
// ErrWebappExists) that can be tested with errors.Is.
package paw
