package handlers

import (
	"net/http"
	"strconv"
	"time"

	"canteen/internal/middleware"
	"canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListMenu returns every item annotated with availability at this instant
// and its current average rating.
func (h *MenuHandler) ListMenu(c *gin.Context) {
	entries, err := h.menuService.ListMenu(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MenuHandler) AddItem(c *gin.Context) {
	var req struct {
		Name          string `json:"name"`
		Price         string `json:"price"`
		AvailableFrom string `json:"available_from"`
		AvailableTo   string `json:"available_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	item, err := h.menuService.AddItem(ident, req.Name, req.Price, req.AvailableFrom, req.AvailableTo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) ToggleAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	item, err := h.menuService.ToggleAvailability(ident, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
