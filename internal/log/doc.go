// Package log provides the structured logger used by creditroll, built on
// the standard slog package.
//
// The SecureHandler masks credentials before they reach the output:
//   - attributes whose key names a credential (token, authorization, secret)
//   - values that look like GitHub tokens, bearer headers or JWTs
//   - the same tokens embedded inside longer strings such as error messages
//
// CI logs are often public, so tokens are masked even in verbose mode.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("requesting members", "project", id, "token", token) // token=***REDACTED***
//	slog.SetDefault(logger)
package log
