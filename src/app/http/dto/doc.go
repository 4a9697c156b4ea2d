// Package dto contains the request and response bodies of the HTTP API.
//
// Request types are named <Action><Resource>Request and carry gin binding
// tags. Response types are named <Resource>Response and are built from
// domain values with a From<Resource> constructor.
package dto
