package constants

import "errors"

// Credential errors.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrNoRefreshToken           = errors.New("refresh token cannot be empty")
	ErrNoTokenURL               = errors.New("no token URL configured")
	ErrEmptyAccessToken         = errors.New("token endpoint returned an empty access token")
	ErrNoAuthorizationCode      = errors.New("authorization code is required")
)

// Request construction errors.
var (
	ErrEmptyMethod       = errors.New("request method is required")
	ErrBodyAndStream     = errors.New("request cannot carry both a JSON body and a stream")
	ErrNoBaseURL         = errors.New("base URL is required for relative paths")
	ErrRequestIntercept  = errors.New("request rejected by interceptor")
	ErrResponseIntercept = errors.New("response rejected by interceptor")
)
