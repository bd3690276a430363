// Package client talks to the roadmap service over HTTP.
//
// The service exposes two endpoints:
//
//	GET  /get-suggestions?query=<text>   -> ["Data Analyst", ...]
//	POST /get-roadmap   (form: role=...) -> Roadmap JSON or {"error": "..."}
//
// Transport failures and 5xx/429 responses are retried with
// [httputil.DefaultPolicy]. An {"error": ...} body is never retried and is
// returned as a BACKEND_ERROR whose message is the service's text, unchanged,
// so front-ends can show it verbatim.
package client
