package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows all origins, matching the public storefront the form is
// embedded in.
func CORS() gin.HandlerFunc {
	return cors.Default()
}
