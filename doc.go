// Package website holds the error values shared by the settings loader and the
// web server it configures.
//
// Settings are assembled at process start by the settings package from, in order
// of increasing precedence:
//
//  1. Built-in defaults
//  2. Directly mapped environment variables (PORT)
//  3. config.<ext> in the working directory
//  4. config-<env>.<ext>, where <env> is APP_ENV (development, staging, production)
//  5. APP_ prefixed environment variables
//
// The resulting settings.Settings value is projected into a server.Config and
// handed to server.New. Loading errors wrap one of the sentinel errors below and
// are meant to stop the process before a listener is bound:
//
//	s, err := settings.Load(settings.Sources{Env: settings.OSEnv{}, Fs: afero.NewOsFs(), Dir: "."})
//	if errors.Is(err, website.ErrConfigParse) {
//	    // malformed config file
//	}
package website
