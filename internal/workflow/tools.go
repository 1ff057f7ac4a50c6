package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mediguide/mediguide/internal/platform/llm"
)

func intParam(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

func stringParam(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func toolDef(name, description string, required []string, props map[string]interface{}) llm.Tool {
	return llm.Tool{
		Type: "function",
		Function: llm.ToolFunction{
			Name:        name,
			Description: description,
			Parameters: map[string]interface{}{
				"type":       "object",
				"properties": props,
				"required":   required,
			},
		},
	}
}

// DoctorTools describes the operations the consultation assistant may call.
func (s *Service) DoctorTools() []llm.Tool {
	return []llm.Tool{
		toolDef("getByID",
			"根据医生输入的id来查询对应的医生信息",
			[]string{"id"},
			map[string]interface{}{
				"id": intParam("医生的id，参数id代表医生的id"),
			}),
		toolDef("getPatientDescriptions",
			"获取患者病情描述工具，根据医生ID查询该医生关联的序号最小的患者信息，包括患者姓名和病情描述，用于生成初步诊断报告",
			[]string{"doctorId"},
			map[string]interface{}{
				"doctorId": intParam("医生的ID，参数doctorId代表医生的ID"),
			}),
		toolDef("saveDiagnosisResult",
			"保存诊断结果工具，将医生的最终诊断信息保存到数据库中，包括患者ID、诊断医生ID、诊断医生姓名和最终诊断结果",
			[]string{"patientId", "doctorId", "doctorName", "result"},
			map[string]interface{}{
				"patientId":  intParam("患者编号，参数patientId代表患者的编号"),
				"doctorId":   intParam("诊断医生的ID，参数doctorId代表医生的编号"),
				"doctorName": stringParam("诊断医生的姓名，参数doctorName代表医生的姓名"),
				"result":     stringParam("最终诊断结果，参数result代表医生的诊断结论"),
			}),
		toolDef("queryDrugsByCategory",
			"根据药品类别查询药品信息工具，AI分析诊断结果后调用此工具查询匹配的药品信息",
			[]string{"category"},
			map[string]interface{}{
				"category": stringParam("药品类别，参数category代表AI分析出的适合该诊断的药品类别"),
			}),
		toolDef("saveMedicineResult",
			"保存配药结果工具，将医生确定的药物配置信息保存到数据库中，包括患者ID、配药医生ID、配药医生姓名、配置药物和用药说明",
			[]string{"patientId", "doctorId", "doctorName", "medicines", "medicineHelper"},
			map[string]interface{}{
				"patientId":      intParam("患者编号，参数patientId代表患者的编号"),
				"doctorId":       intParam("配药医生的ID，参数doctorId代表医生的编号"),
				"doctorName":     stringParam("配药医生的姓名，参数doctorName代表医生的姓名"),
				"medicines":      stringParam("配置药物，参数medicines代表医生确定的药物列表"),
				"medicineHelper": stringParam("用药说明，参数medicineHelper代表具体的用药指导"),
			}),
		toolDef("finishCurrentPatientAndMoveToNext",
			"结束当前患者看诊并移除医生与患者的关联关系，然后获取下一位患者信息",
			[]string{"doctorId", "currentPatientId"},
			map[string]interface{}{
				"doctorId":         intParam("医生ID，参数doctorId代表当前医生的ID"),
				"currentPatientId": intParam("当前患者ID，参数currentPatientId代表当前患者的编号"),
			}),
		toolDef("listWaitingPatients",
			"查询待诊患者工具，根据医生ID查询医生工作队列中所有待诊患者的编号、姓名和病情描述",
			[]string{"doctorId"},
			map[string]interface{}{
				"doctorId": intParam("医生的ID，参数doctorId代表医生的ID"),
			}),
	}
}

// PatientTools describes the single operation the intake assistant may call.
func (s *Service) PatientTools() []llm.Tool {
	return []llm.Tool{
		toolDef("savePatientInfo",
			"将病人的信息保存到数据库，并返回序列号，但必须收集病人的姓名与病情描述",
			[]string{"name", "descriptions"},
			map[string]interface{}{
				"name":         stringParam("病人的姓名，参数name表示病人的姓名"),
				"descriptions": stringParam("病人的病情描述，参数descriptions表示病人的病情描述"),
			}),
	}
}

type toolArgs struct {
	ID               int    `json:"id"`
	DoctorID         int    `json:"doctorId"`
	PatientID        int    `json:"patientId"`
	CurrentPatientID int    `json:"currentPatientId"`
	DoctorName       string `json:"doctorName"`
	Result           string `json:"result"`
	Category         string `json:"category"`
	Medicines        string `json:"medicines"`
	MedicineHelper   string `json:"medicineHelper"`
	Name             string `json:"name"`
	Descriptions     string `json:"descriptions"`
}

// Call dispatches one tool invocation by name with JSON-encoded arguments
// and returns the textual result the model consumes.
func (s *Service) Call(ctx context.Context, name, arguments string) (string, error) {
	var args toolArgs
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("tool %s: decode arguments: %w", name, err)
		}
	}

	switch name {
	case "getByID":
		d, err := s.GetDoctor(ctx, args.ID)
		if err != nil {
			return "", err
		}
		if d == nil {
			return "null", nil
		}
		out, err := json.Marshal(d)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "getPatientDescriptions":
		return s.DescribeNextPatient(ctx, args.DoctorID)
	case "saveDiagnosisResult":
		return s.RecordDiagnosis(ctx, args.PatientID, args.DoctorID, args.DoctorName, args.Result)
	case "queryDrugsByCategory":
		return s.QueryDrugsByCategory(ctx, args.Category)
	case "saveMedicineResult":
		return s.RecordMedication(ctx, args.PatientID, args.DoctorID, args.DoctorName, args.Medicines, args.MedicineHelper)
	case "finishCurrentPatientAndMoveToNext":
		return s.FinishAndAdvance(ctx, args.DoctorID, args.CurrentPatientID)
	case "listWaitingPatients":
		patients, err := s.ListQueue(ctx, args.DoctorID)
		if err != nil {
			return "", err
		}
		if len(patients) == 0 {
			return "该医生目前没有关联的患者信息。", nil
		}
		out, err := json.Marshal(patients)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "savePatientInfo":
		return s.RegisterPatient(ctx, args.Name, args.Descriptions)
	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
}
