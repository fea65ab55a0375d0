package controllers

import (
	"strconv"

	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{Service: service}
}

// GET /inventory
func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.Service.ListTracked()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /inventory/low-stock
func (ic *InventoryController) LowStock(c *gin.Context) {
	items, err := ic.Service.LowStock()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type movementReq struct {
	MovementType string `json:"movementType" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	Notes        string `json:"notes"`
	ReferenceID  string `json:"referenceId"`
}

// POST /inventory/:id/movements
func (ic *InventoryController) ApplyMovement(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req movementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ic.Service.ApplyMovement(uint(id), req.MovementType, req.Quantity, req.Notes, utils.ActingUserID(c), req.ReferenceID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type setStockReq struct {
	// pointer so an explicit zero survives binding
	Quantity *int   `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

// PUT /inventory/:id/stock
func (ic *InventoryController) SetStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req setStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ic.Service.SetStock(uint(id), *req.Quantity, req.Notes, utils.ActingUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type stockSettingsReq struct {
	LowStockThreshold *int  `json:"lowStockThreshold"`
	TrackStock        *bool `json:"trackStock"`
}

// PATCH /inventory/:id/settings
func (ic *InventoryController) UpdateSettings(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req stockSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ic.Service.UpdateItemSettings(uint(id), req.LowStockThreshold, req.TrackStock); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// GET /inventory/:id/history?limit=
func (ic *InventoryController) History(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := ic.Service.History(uint(id), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}
