package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/models"
)

func (s *Server) handleCreateTable(c *gin.Context) {
	table, err := s.tables.Create(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "table created", table)
}

func (s *Server) handleListTables(c *gin.Context) {
	tables, err := s.tables.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "tables fetched", tables)
}

type tableStatusRequest struct {
	Status models.TableStatus `json:"status" binding:"required"`
}

func (s *Server) handleSetTableStatus(c *gin.Context) {
	var req tableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	table, err := s.tables.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "table updated", table)
}

func (s *Server) handleDeleteTable(c *gin.Context) {
	if err := s.tables.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "table deleted", nil)
}

type moveTableRequest struct {
	FromTableID string `json:"fromTableId" binding:"required"`
	ToTableID   string `json:"toTableId" binding:"required"`
}

func (s *Server) handleMoveTable(c *gin.Context) {
	var req moveTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := s.bills.MoveTable(c.Request.Context(), req.FromTableID, req.ToTableID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "table moved", nil)
}
