package middleware

import (
	"net/http"
	"strings"

	therapistRepo "santai/database/repository/therapist"
	"santai/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthTherapistMiddleware validates the bearer token and resolves the
// therapist by token hash. The therapist ID is placed in the context.
func JWTAuthTherapistMiddleware(repo therapistRepo.TherapistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Query the database using the token hash.
		computedHash := utils.HashToken(tokenString)
		therapist, err := repo.GetByTokenHash(computedHash)
		if err != nil || therapist == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or therapist not found"})
			return
		}

		c.Set("therapistID", therapist.ID)
		c.Next()
	}
}
