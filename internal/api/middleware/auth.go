package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rafflehq/raffle-sales-api/internal/api/handler/v1/response"
	"github.com/rafflehq/raffle-sales-api/internal/pkg/jwthelper"
)

// ContextKeyEmail is where VerifyJWT stores the verified email claim.
const ContextKeyEmail = "verifiedEmail"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT turns the bearer credential into a verified email claim.
// It has no side effects beyond stashing the claim in the request
// context; account lookup happens in the handlers.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			zap.L().Info("request rejected: missing bearer credential",
				zap.String("path", ctx.Request.URL.Path),
			)
			response.RenderErr(ctx, response.ErrInvalidAuth())

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			zap.L().Info("request rejected: unverifiable bearer credential",
				zap.String("path", ctx.Request.URL.Path),
				zap.Error(err),
			)
			response.RenderErr(ctx, response.ErrInvalidAuth())

			return
		}

		ctx.Set(ContextKeyEmail, claims.Email)
		ctx.Next()
	}
}
