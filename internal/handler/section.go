package handler

import (
	"net/http"
	"strconv"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SectionHandler owns task grouping labels.
type SectionHandler struct {
	DB *gorm.DB
}

func NewSectionHandler(db *gorm.DB) *SectionHandler {
	return &SectionHandler{DB: db}
}

type createSectionReq struct {
	Title string `json:"title" binding:"required,max=64"`
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createSectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "title required")
		return
	}
	if err := util.ValidateTitle(req.Title); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "title required")
		return
	}

	section := models.Section{UserID: user.ID, Title: req.Title}
	if err := h.DB.Create(&section).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create section")
		return
	}

	util.Success(c, util.Response{"section": section})
}

// DeleteSection removes the label; tasks that referenced it are detached,
// not deleted.
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var deleted int64
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("user_id = ? AND section_id = ?", user.ID, id).
			Update("section_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Section{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete section")
		return
	}
	if deleted == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "section not found")
		return
	}

	util.Success(c, util.Response{"message": "deleted"})
}
