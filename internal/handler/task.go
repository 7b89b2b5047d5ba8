package handler

import (
	"net/http"
	"strconv"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TaskHandler owns ad-hoc tasks and habit templates.
type TaskHandler struct {
	DB *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{DB: db}
}

type createTaskReq struct {
	Date      string `json:"date"`
	Title     string `json:"title" binding:"required"`
	Priority  int    `json:"priority"`
	Type      string `json:"type"` // "task" (default) or "habit"
	SectionID *uint  `json:"section_id"`
}

// CreateTask creates an ad-hoc task, or a habit template when type=habit.
// A habit created with a date also gets its first task row for that date.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if err := util.ValidateTitle(req.Title); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "title required")
		return
	}
	if req.Priority == 0 {
		req.Priority = 1
	}
	if err := util.ValidatePriority(req.Priority); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "priority out of range")
		return
	}

	if req.Type == "habit" {
		habit := models.Habit{
			UserID:   user.ID,
			Title:    req.Title,
			Priority: req.Priority,
		}
		err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&habit).Error; err != nil {
				return err
			}
			if req.Date == "" {
				return nil
			}
			if err := util.ValidateDate(req.Date); err != nil {
				return err
			}
			habitID := habit.ID
			task := models.Task{
				UserID:   user.ID,
				Date:     req.Date,
				Title:    req.Title,
				Priority: req.Priority,
				HabitID:  &habitID,
			}
			return tx.Create(&task).Error
		})
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create habit")
			return
		}
		util.Success(c, util.Response{
			"habit": gin.H{
				"id":       habit.ID,
				"title":    habit.Title,
				"priority": habit.Priority,
			},
		})
		return
	}

	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date required, format YYYY-MM-DD")
		return
	}

	task := models.Task{
		UserID:    user.ID,
		Date:      req.Date,
		Title:     req.Title,
		Priority:  req.Priority,
		SectionID: req.SectionID,
	}
	if err := h.DB.Create(&task).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create task")
		return
	}

	util.Success(c, util.Response{"task": toTaskResp(&task)})
}

type updateTaskReq struct {
	Completed *bool   `json:"completed"`
	Note      *string `json:"note"`
	Priority  *int    `json:"priority"`
}

// UpdateTask patches only the fields named in the body.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	updates := make(map[string]interface{})
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.Priority != nil {
		if err := util.ValidatePriority(*req.Priority); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "priority out of range")
			return
		}
		updates["priority"] = *req.Priority
	}
	if len(updates) == 0 {
		util.Success(c, util.Response{"message": "nothing to update"})
		return
	}

	res := h.DB.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Updates(updates)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update task")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "task not found")
		return
	}

	util.Success(c, util.Response{"message": "updated"})
}

// DeleteTask removes one task owned by the current user.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Task{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete task")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "task not found")
		return
	}

	util.Success(c, util.Response{"message": "deleted"})
}
