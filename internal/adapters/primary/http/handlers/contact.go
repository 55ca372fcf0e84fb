package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"phonebook-service/internal/adapters/primary/http/dto"
	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListContacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ListFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	contacts, total, err := h.phonebookSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list contacts failed")
		mapDomainError(c, err)
		return
	}

	items := dto.ToContactResponses(contacts)
	if offset < 0 {
		offset = 0
	}
	c.JSON(http.StatusOK, dto.ListContactsResponse{
		Items:      items,
		Total:      total,
		PageSize:   len(items),
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	contact, err := h.phonebookSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *Handler) FindContact(c *gin.Context) {
	contact, err := h.phonebookSvc.GetByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.phonebookSvc.Create(c.Request.Context(), req.FullName, dto.ToPhoneNumbers(req.Phones))
	if err != nil {
		log.WithError(err).Error("create contact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.phonebookSvc.Update(c.Request.Context(), id, req.FullName, dto.ToPhoneNumbers(req.Phones))
	if err != nil {
		log.WithError(err).Error("update contact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	if err := h.phonebookSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete contact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) AddPhone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	var req dto.PhoneDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.phonebookSvc.AddPhone(c.Request.Context(), id, dto.ToPhoneNumber(req))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *Handler) RemovePhone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	number := strings.TrimSpace(c.Query("number"))
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidPhoneNumber.Error()})
		return
	}

	phone := dto.ToPhoneNumber(dto.PhoneDTO{Number: number, Type: c.Query("type")})
	contact, err := h.phonebookSvc.RemovePhone(c.Request.Context(), id, phone)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *Handler) ListPhoneTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": dto.ToPhoneTypeResponses(domain.PhoneTypes())})
}
