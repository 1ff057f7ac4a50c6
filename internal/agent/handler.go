package agent

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguide/mediguide/internal/platform/llm"
)

// Handler exposes the two chat personas over HTTP. Conversation identity is
// the caller-supplied chatId query parameter, so distinct doctors or intake
// kiosks keep distinct histories.
type Handler struct {
	runner       *Runner
	doctorTools  []llm.Tool
	patientTools []llm.Tool
}

func NewHandler(runner *Runner, doctorTools, patientTools []llm.Tool) *Handler {
	return &Handler{runner: runner, doctorTools: doctorTools, patientTools: patientTools}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/doctor/helper", h.DoctorHelper)
	e.GET("/patient/intake", h.PatientIntake)
}

func (h *Handler) DoctorHelper(c echo.Context) error {
	msg := c.QueryParam("msg")
	if msg == "" {
		msg = "请告诉我当前病人的病情简述"
	}
	chatID := c.QueryParam("chatId")
	if chatID == "" {
		chatID = "helper000"
	}

	reply, err := h.runner.Chat(c.Request().Context(), Persona{
		SystemPrompt: DoctorAssistantPrompt,
		Tools:        h.doctorTools,
	}, chatID, msg)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.String(http.StatusOK, reply)
}

func (h *Handler) PatientIntake(c echo.Context) error {
	msg := c.QueryParam("msg")
	if msg == "" {
		msg = "你是谁"
	}
	chatID := c.QueryParam("chatId")
	if chatID == "" {
		chatID = "intake000"
	}

	reply, err := h.runner.Chat(c.Request().Context(), Persona{
		SystemPrompt: PatientIntakePrompt,
		Tools:        h.patientTools,
	}, chatID, msg)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.String(http.StatusOK, reply)
}
