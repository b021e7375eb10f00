package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/svc"
)

// NewRouter serves the same endpoints as the Lambdas for local development
func NewRouter(s *Service, origins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(origins)))

	group := router.Group("/api")
	group.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})
	group.POST("/chat", func(c *gin.Context) {
		var req svc.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
			return
		}
		c.JSON(s.Chat(c.Request.Context(), req, c.GetHeader("Accept-Language")))
	})
	group.GET("/chatbot-answers", func(c *gin.Context) {
		c.JSON(s.ListAnswers(c.Request.Context()))
	})
	group.GET("/contacts", func(c *gin.Context) {
		c.JSON(s.ListContacts(c.Request.Context(), c.GetHeader("Authorization")))
	})
	group.POST("/contact", func(c *gin.Context) {
		var inquiry contact.Inquiry
		if err := c.ShouldBind(&inquiry); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
			return
		}
		c.JSON(s.Contact(c.Request.Context(), inquiry, c.GetHeader("Accept-Language")))
	})
	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			config.AllowCredentials = false
			return config
		}
	}
	config.AllowOrigins = origins
	return config
}
