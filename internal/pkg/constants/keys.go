package constants

const (
	CookieKeyAuthToken   = "lux_session"
	CookieKeySecretToken = "lux_admin"

	CtxKeyUserID = "user_id"

	HeaderRequestID  = "X-Request-Id"
	HeaderAdminToken = "X-Admin-Token"
)
