package v1

// BasePath is the URL prefix shared by every route in this API version.
const BasePath = "/api/v1"

// AuthBasePath is the URL prefix of the authentication routes, which sit
// outside the versioned API.
const AuthBasePath = "/auth"
