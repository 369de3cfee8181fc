// Package common contains shared constants and sentinel errors used across
// postkeeper components.
package common

// Header names used on every outbound request to the post service.
const (
	AuthorizationHeaderName = "Authorization"
	PageHeaderName          = "x-page"
	RequestIDHeaderName     = "X-Request-ID"
)

// PageSize is the fixed number of posts per page of the "mine" feed.
const PageSize = 10

// MaxBioLength is the longest profile bio accepted, in characters.
const MaxBioLength = 250

// Keys under which client-held values live in the local metadata store.
const (
	MetadataKeyAccessToken = "access_token"
	MetadataKeyServerURL   = "server_url"
)
