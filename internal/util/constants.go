package util

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// 建议来源，用于日志与指标标签
const (
	AdviceSourceLive     = "live"
	AdviceSourceFallback = "fallback"
	AdviceSourceApology  = "apology"
	AdviceSourceEmpty    = "empty"
)
