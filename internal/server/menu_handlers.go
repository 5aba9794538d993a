package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/service"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := s.menu.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "category created", category)
}

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.menu.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "categories fetched", categories)
}

func (s *Server) handleRenameCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := s.menu.RenameCategory(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "category updated", nil)
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	if err := s.menu.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "category deleted", nil)
}

type menuItemRequest struct {
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	FoodType  string   `json:"foodType"`
	IsSpecial bool     `json:"isSpecial"`
}

func (s *Server) handleAddMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := s.menu.AddItem(c.Request.Context(), c.Param("id"), service.AddMenuItemParams{
		Name:      req.Name,
		Price:     *req.Price,
		FoodType:  req.FoodType,
		IsSpecial: req.IsSpecial,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "menu item created", item)
}

func (s *Server) handleUpdateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := s.menu.UpdateItem(c.Request.Context(), c.Param("itemId"), service.AddMenuItemParams{
		Name:      req.Name,
		Price:     *req.Price,
		FoodType:  req.FoodType,
		IsSpecial: req.IsSpecial,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "menu item updated", item)
}

func (s *Server) handleDeleteMenuItem(c *gin.Context) {
	if err := s.menu.DeleteItem(c.Request.Context(), c.Param("itemId")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "menu item deleted", nil)
}
