// Package environment names the deployment environments the module
// distinguishes (development, staging, production) and parses them from
// configuration strings.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // quieter logs, JSON output
//	}
package environment
