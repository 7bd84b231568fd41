package router

import (
	"net/http"
	"time"

	"github.com/RichardSimmons/receipt-processor-challenge/internal/auth"
	"github.com/RichardSimmons/receipt-processor-challenge/internal/middleware"
	"github.com/RichardSimmons/receipt-processor-challenge/internal/receipt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const landingPage = `<html>
    <head>
        <title>Receipt Processing Service</title>
    </head>
    <body>
        <h1>Welcome to the Receipt Processing Service</h1>
        <p>POST /token to obtain a bearer token, then POST /receipts/process to submit a receipt.</p>
    </body>
</html>`

// New wires every route onto a fresh engine. The receipt endpoints sit
// behind the bearer-token middleware; token issuance and the landing
// page are public.
func New(authHandler *auth.Handler, receiptHandler *receipt.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Root landing page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
	})

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Token login for user authentication
	r.POST("/token", authHandler.Token)

	receipts := r.Group("/receipts")
	receipts.Use(middleware.AuthMiddleware())
	{
		receipts.POST("/process", receiptHandler.ProcessReceipt)
		receipts.GET("/:id/points", receiptHandler.GetPoints)
	}

	return r
}
