// Package wms provides types, interfaces, and the interceptor pipeline for
// working with the warehouse management API.
//
// # Overview
//
// The backend wraps every JSON response in an envelope:
//
//	{"success": true, "code": 0, "message": "Created", "data": {...}}
//
// Calls go through an InterceptorChain. Request interceptors drive the busy
// indicator, attach the bearer token, the warehouse header and the Accept
// header. Response interceptors release the in-flight slot, raise
// user-facing notifications, destroy the session when the backend asks for a
// new login, and classify failures into a *RequestError.
//
// A concrete client is built by the wmsclient package:
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
//	  cli, err := wmsclient.New(ctx, &wms.Config{APIEndpoint: "https://wms.example.com/api"})
//	  if err != nil { log.Fatal(err) }
//
//	  env, err := cli.Products().List(ctx, wms.NewQueryParams().WithPage(1))
//	  if err != nil { log.Fatal(wms.ErrorMessage(err)) }
//	  _ = env.Data
//	}
//
// # Errors
//
// Every failure is returned exactly once as a *RequestError; nothing is
// retried. Use IsReauthRequired, IsServerError, IsApplicationFailure and
// IsTransportSetup to branch on the classification, and ErrorMessage for the
// text that was shown to the user.
package wms
