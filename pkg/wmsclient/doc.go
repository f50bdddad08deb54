// Package wmsclient provides the primary entry point for constructing a
// warehouse management API client that implements the wms.Client interface.
//
// It wires the request pipeline on top of the resource interfaces and types
// defined in the wms package: the busy indicator, bearer token and warehouse
// headers on the way out; envelope decoding, notifications and session
// invalidation on the way back.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/wms-client/pkg/wms"
//	  "github.com/fivetwenty-io/wms-client/pkg/wmsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := wmsclient.New(ctx, &wms.Config{
//	    APIEndpoint: "wms.example.com/api",
//	    WarehouseID: "5",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  if _, err := cli.Auth().Login(ctx, &wms.Credentials{Username: "u", Password: "p"}); err != nil {
//	    log.Fatal(err)
//	  }
//
//	  env, err := cli.Products().List(ctx, wms.NewQueryParams().WithPage(1))
//	  if err != nil { log.Fatal(wms.ErrorMessage(err)) }
//	  _ = env.Data
//	}
//
// # Collaborators
//
// Session state, client-side storage, notifications and the busy indicator
// are injected through wms.Config. Share one wms.SessionStore between clients
// to share the token and the in-flight counter.
//
// # Metrics
//
// WithRegisterer registers Prometheus collectors for in-flight requests,
// settled responses and notifications.
package wmsclient
