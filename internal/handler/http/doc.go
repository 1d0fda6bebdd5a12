// Package http implements the REST API of the delivery board.
//
// Routes cover the profile session, spreadsheet uploads, filtered delivery
// listings with their summary, and month deletion. Session state travels in
// a signed bearer token that handlers rotate on every session change.
// Request tracing, access logging and response compression are applied as
// chi middleware before a request reaches the service layer.
package http
