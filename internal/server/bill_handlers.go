package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/service"
)

func (s *Server) handleListBills(c *gin.Context) {
	bills, err := s.bills.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "bills fetched", bills)
}

func (s *Server) handleListUnpaidBills(c *gin.Context) {
	bills, err := s.bills.ListUnpaid(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "unpaid bills fetched", bills)
}

func (s *Server) handleGetBill(c *gin.Context) {
	bill, err := s.bills.Get(c.Request.Context(), c.Param("billId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "bill fetched", bill)
}

type payBillRequest struct {
	PaymentMethod  models.PaymentMethod   `json:"paymentMethod" binding:"required"`
	PaymentAmounts *models.PaymentAmounts `json:"paymentAmounts"`
}

func (s *Server) handlePayBill(c *gin.Context) {
	var req payBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	params := service.PayParams{Method: req.PaymentMethod}
	if req.PaymentAmounts != nil {
		params.Amounts = *req.PaymentAmounts
	}

	bill, err := s.bills.Pay(c.Request.Context(), c.Param("billId"), params)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "bill paid", bill)
}

type discountRequest struct {
	DiscountValue *float64 `json:"discountValue" binding:"required"`
}

func (s *Server) handleApplyDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	bill, err := s.bills.ApplyDiscount(c.Request.Context(), c.Param("billId"), *req.DiscountValue)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "discount applied", bill)
}
