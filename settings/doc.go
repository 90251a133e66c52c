// Package settings loads the application settings and projects them into the
// server configuration.
//
// # Configuration Precedence
//
// Values are merged in this order (later sources override earlier ones):
//
//  1. Default values (static_dir=public, static_route=/static)
//  2. Directly mapped environment variables (PORT → port)
//  3. config.<ext> in the working directory
//  4. config-<env>.<ext>, where <env> is APP_ENV and one of development,
//     production or staging
//  5. APP_ prefixed environment variables (APP_WORKERS → workers); empty
//     values never override
//
// Both files are optional and their format is picked from the extension
// (yaml, yml, json, toml, env).
//
// # Extras
//
// Every APP_ prefixed variable that does not name a Settings field ends up in
// Settings.Extras under its lower-cased suffix, so APP_FEATURE_FLAGS=beta becomes
// extras["feature_flags"]. Field names are matched after lower-casing, which
// keeps APP_Port out of the extras as well.
//
// # Usage
//
//	s, err := settings.Load(settings.Sources{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env := server.ActiveEnvironment(os.Getenv(settings.EnvSelector))
//	srv, err := server.New(s.ServerConfig(env, slog.Default()), server.Options{
//	    StaticDir:   s.StaticDir,
//	    StaticRoute: s.StaticRoute,
//	})
//
// # Errors
//
// Load fails with website.ErrConfigRead, website.ErrConfigParse,
// website.ErrTypeMismatch or website.ErrInvalidSettings. ServerConfig never
// fails.
package settings
