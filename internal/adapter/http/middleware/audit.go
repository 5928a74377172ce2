package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// auditActions maps governed write routes to the audit action they record.
var auditActions = map[string]string{
	"POST /api/v1/wallets":                                            "wallet.register",
	"PUT /api/v1/wallets/:wallet_id/spending-policy":                  "wallet.spending_policy",
	"PUT /api/v1/wallets/:wallet_id/members/:user_id/spending-policy": "member.spending_policy",
	"POST /api/v1/wallets/:wallet_id/server-key-policy":               "server_key.propose",
	"POST /api/v1/wallets/:wallet_id/dummy-transactions":              "dummy_tx.create",
	"POST /api/v1/dummy-transactions/:id/signatures":                  "dummy_tx.sign",
	"POST /api/v1/dummy-transactions/:id/cancel":                      "dummy_tx.cancel",
	"POST /api/v1/dummy-transactions/:id/broadcast":                   "dummy_tx.broadcast",
	"POST /api/v1/dummy-transactions/:id/confirm":                     "dummy_tx.confirm",
	"POST /api/v1/wallets/:wallet_id/inheritance":                     "inheritance.create",
	"PUT /api/v1/wallets/:wallet_id/inheritance":                      "inheritance.update",
	"DELETE /api/v1/wallets/:wallet_id/inheritance":                   "inheritance.cancel",
	"POST /api/v1/wallets/:wallet_id/health/:xfp/request":             "health.request",
	"POST /api/v1/wallets/:wallet_id/health/:xfp/cancel":              "health.cancel",
}

// AuditLog writes one structured audit line per successful governed write.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	audit := log.With().Str("log", "audit").Logger()
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		action, ok := auditActions[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		member, _ := MemberID(c)
		event := audit.Info().
			Str("action", action).
			Str("member_id", member).
			Str("request_id", c.GetString(CtxRequestID)).
			Str("client_ip", c.ClientIP()).
			Int("status", status)
		for _, p := range c.Params {
			event = event.Str(p.Key, p.Value)
		}
		event.Msg("governance action")
	}
}
