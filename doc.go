// Package dotenv loads settings from a ".env" file in the working directory
// into the process environment and restores the previous environment on
// request.
//
// The file holds a single flat JSON object:
//
//	{"DATABASE_URL":"postgres://localhost/app","LOG_LEVEL":"debug"}
//
// Typical startup code:
//
//	if err := dotenv.Install(dotenv.FailOnInvalidFile); err != nil {
//		log.Fatal(err)
//	}
//	defer dotenv.Uninstall()
//
// Install and Uninstall operate on a process-wide session created by the
// first Install call; the flags of that first call apply for the lifetime
// of the process. Callers that prefer an explicit object use NewSession.
// The process environment is shared state: concurrent sessions touching the
// same keys must be serialized by the caller.
package dotenv
