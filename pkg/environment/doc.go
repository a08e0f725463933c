// Package environment names the deployment environment the simulation runs
// in (development, staging or production).
//
// The environment only selects logging presets: text output at debug level
// for development, JSON at info level for staging and production. The value
// is usually decoded from APP_ENV by the config package, which works because
// Environment implements encoding.TextUnmarshaler.
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// # Error Handling
//
// Parse wraps ErrUnknownEnvironment for unrecognised values.
package environment
