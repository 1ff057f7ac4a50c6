// Package workflow composes the domain services into the flat operation set
// the consultation assistant calls. Every operation is self-contained: it
// assumes nothing about call order and tolerates repetition, because the
// caller is a language-model tool loop that may retry or skip steps.
package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mediguide/mediguide/internal/domain/catalog"
	"github.com/mediguide/mediguide/internal/domain/doctor"
	"github.com/mediguide/mediguide/internal/domain/patient"
	"github.com/mediguide/mediguide/internal/domain/records"
	"github.com/mediguide/mediguide/internal/domain/roster"
	"github.com/mediguide/mediguide/internal/triage"
)

const noDescription = "暂无描述"

type Service struct {
	doctors  *doctor.Service
	patients *patient.Service
	roster   *roster.Service
	catalog  *catalog.Service
	records  *records.Service
	log      zerolog.Logger
}

func NewService(
	doctors *doctor.Service,
	patients *patient.Service,
	rosterSvc *roster.Service,
	catalogSvc *catalog.Service,
	recordsSvc *records.Service,
	log zerolog.Logger,
) *Service {
	return &Service{
		doctors:  doctors,
		patients: patients,
		roster:   rosterSvc,
		catalog:  catalogSvc,
		records:  recordsSvc,
		log:      log,
	}
}

// GetDoctor resolves a doctor for identity verification. Absent is nil, not
// an error.
func (s *Service) GetDoctor(ctx context.Context, doctorID int) (*doctor.Doctor, error) {
	return s.doctors.GetByID(ctx, doctorID)
}

// DescribeNextPatient renders the brief of the doctor's next patient, or a
// "no patient" notice when the queue is empty.
func (s *Service) DescribeNextPatient(ctx context.Context, doctorID int) (string, error) {
	p, err := s.roster.NextPatient(ctx, doctorID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "该医生目前没有关联的患者信息。", nil
	}

	var b strings.Builder
	b.WriteString("患者信息如下：\n")
	fmt.Fprintf(&b, "  患者编号：%d\n", p.ID)
	fmt.Fprintf(&b, "  患者姓名：%s\n", p.Name)
	fmt.Fprintf(&b, "  病情描述：%s\n", orDefault(p.Complaint, noDescription))
	return b.String(), nil
}

// RecordDiagnosis saves the conclusion and appends a drug recommendation
// derived from it. A storage failure comes back as a failure message, not an
// error, so the tool loop always has text to show.
func (s *Service) RecordDiagnosis(ctx context.Context, patientID, doctorID int, doctorName, conclusion string) (string, error) {
	rec := &records.DiagnosisRecord{
		PatientID:  patientID,
		DoctorID:   doctorID,
		DoctorName: doctorName,
		Conclusion: conclusion,
	}
	if err := s.records.SaveDiagnosis(ctx, rec); err != nil {
		s.log.Error().Err(err).Int("patient_id", patientID).Msg("save diagnosis")
		return "诊断结果保存失败，请检查数据是否正确。", nil
	}

	drugs, err := s.catalog.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list drug catalog")
		drugs = nil
	}
	recommended := triage.Recommend(conclusion, drugs)

	var b strings.Builder
	fmt.Fprintf(&b, "诊断结果保存成功！\n患者编号：%d\n诊断医生：%s（ID：%d）\n最终诊断：%s\n",
		patientID, doctorName, doctorID, conclusion)
	if len(recommended) > 0 {
		b.WriteString("\n根据诊断结果，推荐以下药物：\n")
		for i, d := range recommended {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d.Name)
		}
	} else {
		b.WriteString("\n暂无匹配的药物推荐。\n")
	}
	return b.String(), nil
}

// QueryDrugsByCategory renders full drug details for a category, matching
// the category in either containment direction.
func (s *Service) QueryDrugsByCategory(ctx context.Context, category string) (string, error) {
	matched, err := s.catalog.FindByCategory(ctx, category)
	if err != nil {
		return "", err
	}
	if len(matched) == 0 {
		return "未找到匹配的药品信息。", nil
	}

	var b strings.Builder
	b.WriteString("找到以下匹配的药品信息：\n")
	for i, d := range matched {
		fmt.Fprintf(&b, "%d. 药品名称：%s\n", i+1, d.Name)
		fmt.Fprintf(&b, "   药品类别：%s\n", d.Category)
		fmt.Fprintf(&b, "   药品简介：%s\n", orDefault(d.Description, "暂无"))
		fmt.Fprintf(&b, "   适用症状：%s\n", orDefault(d.Indications, "暂无"))
		fmt.Fprintf(&b, "   药品优势：%s\n", orDefault(d.Advantages, "暂无"))
		fmt.Fprintf(&b, "   副作用：%s\n", orDefault(d.SideEffects, "暂无"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RecordMedication saves the dispensing decision.
func (s *Service) RecordMedication(ctx context.Context, patientID, doctorID int, doctorName, drugs, instructions string) (string, error) {
	rec := &records.MedicationRecord{
		PatientID:    patientID,
		DoctorID:     doctorID,
		DoctorName:   doctorName,
		Drugs:        drugs,
		Instructions: instructions,
	}
	if err := s.records.SaveMedication(ctx, rec); err != nil {
		s.log.Error().Err(err).Int("patient_id", patientID).Msg("save medication")
		return "配药结果保存失败，请检查数据是否正确。", nil
	}
	return fmt.Sprintf("配药结果保存成功！\n患者编号：%d\n配药医生：%s（ID：%d）\n配置药物：%s\n用药说明：%s",
		patientID, doctorName, doctorID, drugs, instructions), nil
}

// FinishAndAdvance closes the consultation and reports who is next. Closing
// a patient no longer on the queue still succeeds, so a retried call gives
// the same answer.
func (s *Service) FinishAndAdvance(ctx context.Context, doctorID, patientID int) (string, error) {
	next, err := s.roster.CloseAndAdvance(ctx, doctorID, patientID)
	if err != nil {
		return "", err
	}
	if next == nil {
		return "当前患者看诊已结束，医生工作队列中暂无其他患者。", nil
	}

	var b strings.Builder
	b.WriteString("当前患者看诊已结束，已从您的工作队列中移除。\n")
	b.WriteString("下一位患者信息如下：\n")
	fmt.Fprintf(&b, "  患者编号：%d\n", next.ID)
	fmt.Fprintf(&b, "  患者姓名：%s\n", next.Name)
	fmt.Fprintf(&b, "  病情描述：%s\n", orDefault(next.Complaint, noDescription))
	return b.String(), nil
}

// ListQueue returns the doctor's current queue ordered by patient id. Empty
// queue is an empty slice.
func (s *Service) ListQueue(ctx context.Context, doctorID int) ([]*patient.Patient, error) {
	return s.roster.ListPatients(ctx, doctorID)
}

// RegisterPatient stores a new patient and returns the assigned id as text,
// the form the intake assistant echoes back.
func (s *Service) RegisterPatient(ctx context.Context, name, complaint string) (string, error) {
	pid, err := s.patients.Register(ctx, name, complaint)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(pid), nil
}

// AssignPatient places a patient on a doctor's queue.
func (s *Service) AssignPatient(ctx context.Context, doctorID, patientID int) error {
	return s.roster.Assign(ctx, doctorID, patientID)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
