package security

import (
	"career_advisor_backend/internal/config"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	allowedMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	allowedHeaders = strings.Join([]string{"Content-Type", "Accept", "Origin", "Cache-Control", "X-Requested-With", "X-Request-ID"}, ", ")
)

// CORS 中间件 按配置的Origin白名单放行；不在白名单中的预检请求返回 403
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	originSet := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		originSet[strings.TrimRight(o, "/")] = struct{}{}
	}
	maxAge := strconv.Itoa(cfg.MaxAgeSeconds)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		_, allowed := originSet[origin]

		// 响应随 Origin 变化，避免缓存串用
		c.Writer.Header().Add("Vary", "Origin")

		if origin != "" && allowed {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Expose-Headers", "X-Request-ID")
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method != http.MethodOptions || c.GetHeader("Access-Control-Request-Method") == "" {
			c.Next()
			return
		}

		// 预检请求
		if !allowed {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Set("Access-Control-Allow-Headers", allowedHeaders)
		if cfg.MaxAgeSeconds > 0 {
			h.Set("Access-Control-Max-Age", maxAge)
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}

// apiHeaders JSON 接口统一附带的安全响应头，接口不加载任何资源
var apiHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Referrer-Policy":         "no-referrer",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

const hstsValue = "max-age=31536000; includeSubDomains"

// Secure 中间件 /swagger 页面需要加载脚本与样式，不设置 CSP
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range apiHeaders {
			if k == "Content-Security-Policy" && strings.HasPrefix(c.Request.URL.Path, "/swagger") {
				continue
			}
			h.Set(k, v)
		}

		// 直连 TLS 或反向代理终止 TLS 时启用 HSTS
		if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		c.Next()
	}
}
