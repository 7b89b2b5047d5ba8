package handler

import (
	"net/http"
	"strconv"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FinanceHandler owns payment/installment records. Plain listing and
// named-field partial update; no derived state.
type FinanceHandler struct {
	DB *gorm.DB
}

func NewFinanceHandler(db *gorm.DB) *FinanceHandler {
	return &FinanceHandler{DB: db}
}

func (h *FinanceHandler) ListRecords(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var records []models.FinancialRecord
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
		return
	}

	util.Success(c, util.Response{"records": records})
}

type createFinanceReq struct {
	Title       string `json:"title" binding:"required,max=128"`
	AmountCent  int64  `json:"amount_cent"`
	Kind        string `json:"kind" binding:"omitempty,oneof=payment installment"`
	TotalMonths int    `json:"total_months"`
	PaidMonths  int    `json:"paid_months"`
	Note        string `json:"note" binding:"max=255"`
}

func (h *FinanceHandler) CreateRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createFinanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.Kind == "" {
		req.Kind = models.FinanceKindPayment
	}

	record := models.FinancialRecord{
		UserID:      user.ID,
		Title:       req.Title,
		AmountCent:  req.AmountCent,
		Kind:        req.Kind,
		TotalMonths: req.TotalMonths,
		PaidMonths:  req.PaidMonths,
		Note:        req.Note,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create record")
		return
	}

	util.Success(c, util.Response{"record": record})
}

type updateFinanceReq struct {
	Title         *string `json:"title"`
	AmountCent    *int64  `json:"amount_cent"`
	Kind          *string `json:"kind"`
	TotalMonths   *int    `json:"total_months"`
	PaidMonths    *int    `json:"paid_months"`
	LastPaidMonth *string `json:"last_paid_month"`
	Note          *string `json:"note"`
}

// UpdateRecord patches only the fields named in the body.
func (h *FinanceHandler) UpdateRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req updateFinanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if err := util.ValidateTitle(*req.Title); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid title")
			return
		}
		updates["title"] = *req.Title
	}
	if req.AmountCent != nil {
		updates["amount_cent"] = *req.AmountCent
	}
	if req.Kind != nil {
		if *req.Kind != models.FinanceKindPayment && *req.Kind != models.FinanceKindInstallment {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid kind")
			return
		}
		updates["kind"] = *req.Kind
	}
	if req.TotalMonths != nil {
		updates["total_months"] = *req.TotalMonths
	}
	if req.PaidMonths != nil {
		updates["paid_months"] = *req.PaidMonths
	}
	if req.LastPaidMonth != nil {
		if *req.LastPaidMonth != "" {
			if err := util.ValidateMonth(*req.LastPaidMonth); err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid month, format YYYY-MM")
				return
			}
		}
		updates["last_paid_month"] = *req.LastPaidMonth
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if len(updates) == 0 {
		util.Success(c, util.Response{"message": "nothing to update"})
		return
	}

	res := h.DB.Model(&models.FinancialRecord{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Updates(updates)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update record")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
		return
	}

	util.Success(c, util.Response{"message": "updated"})
}

func (h *FinanceHandler) DeleteRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.FinancialRecord{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete record")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
		return
	}

	util.Success(c, util.Response{"message": "deleted"})
}
