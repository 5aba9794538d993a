package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/service"
	"github.com/dinewise/pos/internal/storage"
)

type addOrderItemRequest struct {
	TableID             string `json:"tableId"`
	CustomerName        string `json:"customerName"`
	OrderID             string `json:"orderId"`
	MenuItemID          string `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,gt=0"`
	FoodType            string `json:"foodType"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (s *Server) handleAddOrderItem(c *gin.Context) {
	var req addOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := s.orders.AddItem(c.Request.Context(), service.AddItemParams{
		TableID:             req.TableID,
		CustomerName:        req.CustomerName,
		OrderID:             req.OrderID,
		MenuItemID:          req.MenuItemID,
		Quantity:            req.Quantity,
		FoodType:            req.FoodType,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "item added", order)
}

func (s *Server) handleListOrders(c *gin.Context) {
	filter := storage.OrderFilter{
		Status:    models.OrderStatus(c.Query("status")),
		TableID:   c.Query("tableId"),
		OrderType: models.OrderType(c.Query("type")),
	}
	orders, err := s.orders.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "orders fetched", orders)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	order, err := s.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "order fetched", order)
}

type orderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (s *Server) handleSetOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := s.orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "order updated", order)
}

type cancelItemRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	ItemID  string `json:"itemId" binding:"required"`
}

func (s *Server) handleCancelOrderItem(c *gin.Context) {
	var req cancelItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := s.orders.CancelItem(c.Request.Context(), req.OrderID, req.ItemID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "item cancelled", order)
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (s *Server) handleUpdateQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := s.orders.UpdateQuantity(c.Request.Context(), c.Param("id"), c.Param("itemId"), *req.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "quantity updated", order)
}
