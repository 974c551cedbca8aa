// Package nfield is the HTTP connector for the Nfield survey platform
// API. It owns the sign-in flow, token rotation, rate limiting and the
// typed service handles the core ports describe.
//
// A Client is bound to one server URL. Authentication uses the
// platform's token scheme: POST v1/SignIn exchanges domain/username/
// password for an AuthenticationToken, which is sent as
// "Authorization: Basic <token>" on every call. The platform rotates
// tokens by returning a replacement in the X-AuthenticationToken
// response header; the transport adopts replacements transparently.
package nfield
