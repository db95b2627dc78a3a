package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/user"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

// tokenTTLSeconds matches the JWT expiry.
const tokenTTLSeconds = 24 * 60 * 60

type credentialsRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	secure := h.cfg != nil && h.cfg.AppEnv == "production"
	c.SetCookie("access_token", token, tokenTTLSeconds, "/", "", secure, true)
}

func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.Fullname, req.Email, req.Password, user.RoleCustomer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": u.ID, "email": u.Email})
}

// AdminRegister creates another admin account. Reachable only through the
// admin group, so the caller is already an authenticated admin.
func (h *Handler) AdminRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.Fullname, req.Email, req.Password, user.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": u.ID, "email": u.Email, "role": u.Role})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": u.ID, "fullname": u.Fullname, "email": u.Email, "role": u.Role},
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, u, err := h.users.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": u.ID, "fullname": u.Fullname, "email": u.Email, "role": u.Role},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) ListUsers(c *gin.Context) {
	filter := user.Filter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
	}

	users, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for _, u := range users {
		items = append(items, gin.H{
			"id":        u.ID,
			"fullname":  u.Fullname,
			"email":     u.Email,
			"role":      u.Role,
			"is_active": u.IsActive,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": items})
}

func (h *Handler) ResetUserPassword(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), id, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

func (h *Handler) ToggleUserActive(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.users.ToggleActive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}
