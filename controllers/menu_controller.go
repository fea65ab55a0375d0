package controllers

import (
	"errors"
	"strconv"

	"pos-backend/entity"
	"pos-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ DB *gorm.DB }

func NewMenuController(db *gorm.DB) *MenuController { return &MenuController{DB: db} }

// GET /menu-items?categoryId=
func (mc *MenuController) List(c *gin.Context) {
	q := mc.DB.Model(&entity.MenuItem{}).Order("display_order, name")
	if cid := c.Query("categoryId"); cid != "" {
		q = q.Where("category_id = ?", cid)
	}
	if c.Query("all") == "" {
		q = q.Where("is_available = ?", true)
	}
	var items []entity.MenuItem
	if err := q.Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type menuItemReq struct {
	CategoryID   uint    `json:"categoryId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Code         *string `json:"code"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	IsAvailable  *bool   `json:"isAvailable"`
	DisplayOrder int     `json:"displayOrder"`
}

// POST /menu-items
func (mc *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var cat entity.Category
	if err := mc.DB.Select("id").First(&cat, req.CategoryID).Error; err != nil {
		resp.BadRequest(c, "category not found")
		return
	}

	item := entity.MenuItem{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Code:              req.Code,
		Price:             req.Price,
		Description:       req.Description,
		IsAvailable:       true,
		DisplayOrder:      req.DisplayOrder,
		TrackStock:        true,
		LowStockThreshold: 10,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu-items/:id
// Catalog fields only; stock quantity changes go through the inventory
// endpoints so they always leave a movement row.
func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item entity.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{
		"category_id":   req.CategoryID,
		"name":          req.Name,
		"code":          req.Code,
		"price":         req.Price,
		"description":   req.Description,
		"display_order": req.DisplayOrder,
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if err := mc.DB.Model(&item).Updates(updates).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /menu-items/:id
// Soft delete; historical order lines keep their own name/rate snapshot.
func (mc *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.DB.Delete(&entity.MenuItem{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
