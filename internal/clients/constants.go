package clients

const (
	USER_AGENT         = "sentireport-client/1.0 (+https://github.com/spacesedan/sentireport)"
	REQUEST_ID_HEADER  = "X-Request-ID"
	MAX_PREVIEW_LENGTH = 50
)
