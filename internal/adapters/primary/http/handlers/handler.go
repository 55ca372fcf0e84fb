package handlers

import (
	"phonebook-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	phonebookSvc *services.PhonebookService
}

func New(phonebookSvc *services.PhonebookService) *Handler {
	return &Handler{phonebookSvc: phonebookSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Contacts
	r.GET("/contacts", h.ListContacts)
	r.GET("/contacts/:id", h.GetContact)
	r.GET("/contact", h.FindContact)
	r.POST("/contacts", h.CreateContact)
	r.PUT("/contacts/:id", h.UpdateContact)
	r.DELETE("/contacts/:id", h.DeleteContact)

	// Phones (nested under contact)
	r.POST("/contacts/:id/phones", h.AddPhone)
	r.DELETE("/contacts/:id/phones", h.RemovePhone)

	// Reference data
	r.GET("/phone_types", h.ListPhoneTypes)
}
