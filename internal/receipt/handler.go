package receipt

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Submit a receipt for processing
// --------------------------------------------------
func (h *Handler) ProcessReceipt(c *gin.Context) {
	var req Receipt

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": []FieldError{{Field: "body", Message: "invalid receipt payload"}},
		})
		return
	}

	stored, breakdown, err := h.service.Process(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store receipt"})
		return
	}

	log.Printf("Processed receipt for %s: ID %s, Points %d", stored.Receipt.Retailer, stored.ID, stored.Points)

	c.JSON(http.StatusOK, gin.H{
		"id":        stored.ID,
		"points":    stored.Points,
		"breakdown": breakdown,
	})
}

// --------------------------------------------------
// Look up points by receipt id
// --------------------------------------------------
func (h *Handler) GetPoints(c *gin.Context) {
	id := c.Param("id")

	points, err := h.service.Points(id)
	if err != nil {
		log.Printf("Receipt ID %s not found", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "no receipt found for that id"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}
