package controllers

import (
	"time"

	"pos-backend/entity"
	"pos-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct{ DB *gorm.DB }

func NewSettingsController(db *gorm.DB) *SettingsController { return &SettingsController{DB: db} }

// GET /settings
func (sc *SettingsController) GetAll(c *gin.Context) {
	var rows []entity.Setting
	if err := sc.DB.Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	out := map[string]string{}
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	resp.OK(c, out)
}

type settingReq struct {
	Value string `json:"value" binding:"required"`
}

// PUT /settings/:key
func (sc *SettingsController) Update(c *gin.Context) {
	key := c.Param("key")
	var req settingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row := entity.Setting{Key: key, Value: req.Value, UpdatedAt: time.Now()}
	if err := sc.DB.Save(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}
