package doctor

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mediguide/mediguide/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// RegisterRoutes mounts the login endpoint on the public group and doctor
// lookup on the authenticated group.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.POST("/auth/login", h.Login)
	api.GET("/doctors/:id", h.GetDoctor)
}

type loginRequest struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type loginData struct {
	DoctorID   int    `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Token      string `json:"token"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *loginData `json:"data,omitempty"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID == 0 || req.Username == "" {
		return c.JSON(http.StatusBadRequest, loginResponse{
			Success: false,
			Message: "用户名和ID不能为空",
		})
	}

	d, err := h.svc.Login(c.Request().Context(), req.ID, req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "登录过程中发生错误")
	}
	if d == nil {
		return c.JSON(http.StatusUnauthorized, loginResponse{
			Success: false,
			Message: "用户名与ID不匹配，请检查输入",
		})
	}

	token, err := h.tokens.Issue(d.ID, d.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "登录过程中发生错误")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "登录成功",
		Data:    &loginData{DoctorID: d.ID, DoctorName: d.Name, Token: token},
	})
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if d == nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, d)
}
