package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on outbound API requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request id so failures can be reported
// to the platform team with a traceable reference.
const RequestIDHeaderName = "X-Request-Id"
