// Package http implements the REST transport of the marketplace service.
//
// Every protected route runs the same ordered chain before its handler:
// authenticate (bearer credential and identity resolution), authorize (the
// route's access gate) and validate (the route's payload schema). A stage
// that rejects a request writes the response itself and the handler is never
// invoked. Handlers only translate the validated payload and the resolved
// principal into service calls.
package http
