// Package config provides configuration management for the upload service.
//
// Configuration is loaded from environment variables using the env package.
// Everything except the wallet key has a default suitable for development;
// set IRYS_PROVIDER=memory to run without a key.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
