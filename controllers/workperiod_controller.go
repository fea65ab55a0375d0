package controllers

import (
	"strconv"

	"pos-backend/pkg/resp"
	"pos-backend/services"

	"github.com/gin-gonic/gin"
)

type WorkPeriodController struct {
	Service *services.WorkPeriodService
}

func NewWorkPeriodController(service *services.WorkPeriodService) *WorkPeriodController {
	return &WorkPeriodController{Service: service}
}

type startPeriodReq struct {
	OperatorName string  `json:"operatorName"`
	OpeningCash  float64 `json:"openingCash"`
}

// POST /work-periods
func (wc *WorkPeriodController) Start(c *gin.Context) {
	var req startPeriodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := wc.Service.Start(req.OperatorName, req.OpeningCash)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

type endPeriodReq struct {
	ClosingCash float64 `json:"closingCash"`
}

// PATCH /work-periods/:id/end
func (wc *WorkPeriodController) End(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req endPeriodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := wc.Service.End(uint(id), req.ClosingCash)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /work-periods/active
func (wc *WorkPeriodController) Active(c *gin.Context) {
	p, err := wc.Service.Active()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /work-periods?limit=
func (wc *WorkPeriodController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := wc.Service.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
