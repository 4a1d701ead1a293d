package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/service"
	"crm-service/pkg/utils"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *logrus.Logger
	config              *configs.Config
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService service.NotificationService, logger *logrus.Logger, config *configs.Config) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
		config:              config,
	}
}

// GetAll handles listing the authenticated user's notifications
func (h *NotificationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "user ID not found in context")
		return
	}

	views, unread, err := h.notificationService.GetForUser(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("Failed to get notifications: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to retrieve notifications")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "notifications retrieved successfully", map[string]interface{}{
		"notifications": views,
		"unread_count":  unread,
	})
}

// MarkRead handles marking a single notification as read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "user ID not found in context")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification ID")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), userID, id); err != nil {
		h.logger.Warnf("Failed to mark notification read: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "notification marked as read", nil)
}

// MarkAllRead handles marking all visible notifications as read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "user ID not found in context")
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), userID); err != nil {
		h.logger.Warnf("Failed to mark all notifications read: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to mark notifications as read")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "all notifications marked as read", nil)
}

// Remove handles hiding a notification from the user's bell
func (h *NotificationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "user ID not found in context")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification ID")
		return
	}

	if err := h.notificationService.Remove(r.Context(), userID, id); err != nil {
		h.logger.Warnf("Failed to remove notification: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "notification removed", nil)
}

// Delete handles permanently dismissing a notification for the user
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "user ID not found in context")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification ID")
		return
	}

	if err := h.notificationService.Delete(r.Context(), userID, id); err != nil {
		h.logger.Warnf("Failed to delete notification: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "notification deleted", nil)
}
