package middleware

import (
	"net/http"
	"strings"

	"kubra-market/internal/data/repository"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

// Auth middleware validates the bearer JWT and resolves the merchant
func Auth(userRepo repository.UserRepository, jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			// Verify signature and expiry
			userID, err := utils.ParseToken(token, jwtSecret)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			// Resolve the principal. A token whose embedded id no longer
			// resolves is treated the same as a bad token.
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve user from token",
					zap.Int64("user_id", userID),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token references unknown user", zap.Int64("user_id", userID))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
