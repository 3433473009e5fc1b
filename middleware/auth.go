package middleware

import (
	"net/http"
	"os"
	"strings"

	"bathroom-report-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Claims carried by the session token. The token only asserts identity;
// role and active status are re-read from the store on every request.
type Claims struct {
	AdminID int    `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and re-checks that the admin
// account still exists and is active.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Check Bearer prefix
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Parse token
		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Authorization state is always re-derived live, never trusted from
		// the token.
		var admin models.Admin
		if err := db.WithContext(c.Request.Context()).
			Where("id = ? AND active = ?", claims.AdminID, true).
			First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin account not found or deactivated"})
			c.Abort()
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminEmail", admin.Email)
		c.Set("adminName", admin.Name)
		c.Set("adminRole", admin.Role)

		c.Next()
	}
}

// RoleAllowed reports whether role is in the allowed set.
func RoleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRole rejects authenticated principals whose role is not in the set.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		role, _ := roleVal.(string)
		if !RoleAllowed(role, roles) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
