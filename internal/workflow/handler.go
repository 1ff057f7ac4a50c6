package workflow

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mediguide/mediguide/internal/domain/patient"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors/:id/queue", h.ListQueue)
	api.GET("/doctors/:id/next", h.NextPatient)
	api.POST("/diagnoses", h.RecordDiagnosis)
	api.POST("/medications", h.RecordMedication)
	api.POST("/consultations/finish", h.FinishConsultation)
	api.POST("/patients", h.RegisterPatient)
	api.POST("/assignments", h.AssignPatient)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) ListQueue(c echo.Context) error {
	doctorID, err := pathID(c)
	if err != nil {
		return err
	}
	patients, err := h.svc.ListQueue(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if patients == nil {
		patients = []*patient.Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) NextPatient(c echo.Context) error {
	doctorID, err := pathID(c)
	if err != nil {
		return err
	}
	text, err := h.svc.DescribeNextPatient(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": text})
}

type diagnosisRequest struct {
	PatientID  int    `json:"patientId"`
	DoctorID   int    `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Conclusion string `json:"conclusion"`
}

func (h *Handler) RecordDiagnosis(c echo.Context) error {
	var req diagnosisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	text, err := h.svc.RecordDiagnosis(c.Request().Context(),
		req.PatientID, req.DoctorID, req.DoctorName, req.Conclusion)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": text})
}

type medicationRequest struct {
	PatientID    int    `json:"patientId"`
	DoctorID     int    `json:"doctorId"`
	DoctorName   string `json:"doctorName"`
	Drugs        string `json:"drugs"`
	Instructions string `json:"instructions"`
}

func (h *Handler) RecordMedication(c echo.Context) error {
	var req medicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	text, err := h.svc.RecordMedication(c.Request().Context(),
		req.PatientID, req.DoctorID, req.DoctorName, req.Drugs, req.Instructions)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": text})
}

type finishRequest struct {
	DoctorID  int `json:"doctorId"`
	PatientID int `json:"patientId"`
}

func (h *Handler) FinishConsultation(c echo.Context) error {
	var req finishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DoctorID == 0 || req.PatientID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId and patientId are required")
	}
	text, err := h.svc.FinishAndAdvance(c.Request().Context(), req.DoctorID, req.PatientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": text})
}

type registerRequest struct {
	Name      string `json:"name"`
	Complaint string `json:"complaint"`
}

func (h *Handler) RegisterPatient(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pid, err := h.svc.RegisterPatient(c.Request().Context(), req.Name, req.Complaint)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"patientId": pid})
}

type assignRequest struct {
	DoctorID  int `json:"doctorId"`
	PatientID int `json:"patientId"`
}

func (h *Handler) AssignPatient(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DoctorID == 0 || req.PatientID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId and patientId are required")
	}
	if err := h.svc.AssignPatient(c.Request().Context(), req.DoctorID, req.PatientID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, req)
}
