// Package pkgrouter is the request pipeline of the HTTP server.
//
// It wraps httprouter and runs every request through a fixed sequence of
// stages: recovery, correlation ID, logging, static assets, body decoding,
// the registered resource handlers, and finally the not-found fallthrough.
// Every stage reports problems by returning an error; the router owns a single
// normalizer that turns any error into one JSON error response.
package pkgrouter
