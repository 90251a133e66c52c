// Package server is the web framework layer the application settings are
// projected into.
//
// A Config carries the framework-level knobs: environment, listen address and
// port, log level, worker count, the secret key used to sign cookies and an
// open-ended table of extras. DefaultConfig supplies the values used for any
// knob the application leaves unset:
//
//	env          address    port  log       workers
//	development  localhost  8000  normal    2 x CPUs
//	staging      0.0.0.0    8000  normal    2 x CPUs
//	production   0.0.0.0    8000  critical  2 x CPUs
//
// # Serving
//
//	srv, err := server.New(cfg, server.Options{
//	    StaticDir:   "public",
//	    StaticRoute: "/static",
//	})
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
//
// The router assigns request IDs, logs requests according to the log level,
// limits in-flight requests to the worker count, and enables CORS when the
// cors_allowed_origins extra is set.
//
// # Secret Key
//
// The secret key must be 256 bits encoded as standard base64. When it is empty
// a random key is generated at startup.
package server
