package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"movieplus/internal/chat/service"
	"movieplus/internal/common"
)

// DeviceHandler covers the push-gateway surface: device token
// registration plus the batched presence lookup used by contact lists.
type DeviceHandler struct {
	push     service.PushService
	presence service.PresenceService
	logger   *zap.Logger
}

func NewDeviceHandler(push service.PushService, presence service.PresenceService, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{push: push, presence: presence, logger: logger}
}

type registerTokenRequest struct {
	DeviceToken string  `json:"device_token"`
	Platform    *string `json:"platform,omitempty"`
}

func (h *DeviceHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	var req registerTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeviceToken == "" {
		http.Error(w, "device_token is required", http.StatusBadRequest)
		return
	}

	if err := h.push.RegisterToken(r.Context(), userID, req.DeviceToken, req.Platform); err != nil {
		h.logger.Error("token registration failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeviceHandler) UnregisterToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.push.UnregisterToken(r.Context(), token); err != nil {
		h.logger.Error("token removal failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OnlineStatus answers presence for a comma-separated id list in one
// round trip. Presence is advisory: a stale row reads as online until
// the transport reports the drop.
func (h *DeviceHandler) OnlineStatus(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		http.Error(w, "ids is required", http.StatusBadRequest)
		return
	}
	ids := strings.Split(raw, ",")

	status, err := h.presence.OnlineStatus(r.Context(), ids)
	if err != nil {
		h.logger.Error("online status lookup failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error("response encoding failed", zap.Error(err))
	}
}
