package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediguide/mediguide/internal/domain/catalog"
	"github.com/mediguide/mediguide/internal/domain/patient"
	"github.com/mediguide/mediguide/internal/domain/roster"
	"github.com/mediguide/mediguide/internal/platform/db"
)

// seedDemoData loads a small demo world: three doctors, a few waiting
// patients per doctor, and a drug catalog spanning the triage categories.
// Everything runs in one transaction, routed through the repositories via
// db.WithTx. Safe to run more than once; existing doctors are left alone and
// patient/drug rows are only created when the tables are empty.
func seedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	txCtx := db.WithTx(ctx, tx)

	patientRepo := patient.NewRepoPG(pool)
	rosterRepo := roster.NewRepoPG(pool)
	drugRepo := catalog.NewRepoPG(pool)

	doctors := []struct {
		id   int
		name string
	}{
		{1, "华佗"},
		{2, "扁鹊"},
		{3, "李时珍"},
	}
	for _, d := range doctors {
		if _, err := tx.Exec(ctx,
			`INSERT INTO doctor (id, doc_name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			d.id, d.name); err != nil {
			return fmt.Errorf("seed doctor %d: %w", d.id, err)
		}
	}

	var patientCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&patientCount); err != nil {
		return err
	}
	if patientCount == 0 {
		patients := []struct {
			name      string
			complaint string
			doctorID  int
		}{
			{"张三", "头疼，发热，有咳嗽症状。", 1},
			{"李四", "咳嗽两周，夜间加重。", 1},
			{"王五", "普通感冒，流鼻涕。", 1},
			{"赵六", "高血压复诊，近期头晕。", 2},
			{"孙七", "皮肤过敏，出现红疹。", 2},
			{"周八", "糖尿病随访。", 3},
		}
		for _, entry := range patients {
			p := &patient.Patient{Name: entry.name, Complaint: entry.complaint}
			if err := patientRepo.Create(txCtx, p); err != nil {
				return fmt.Errorf("seed patient %s: %w", entry.name, err)
			}
			a := &roster.Assignment{DoctorID: entry.doctorID, PatientID: p.ID}
			if err := rosterRepo.Create(txCtx, a); err != nil {
				return fmt.Errorf("seed assignment for %s: %w", entry.name, err)
			}
		}
	}

	var drugCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&drugCount); err != nil {
		return err
	}
	if drugCount == 0 {
		drugs := []*catalog.Drug{
			{Name: "感冒灵颗粒", Category: "感冒药", Description: "复方制剂，缓解感冒症状", UsageMethod: "开水冲服，一次1袋，一日3次", Indications: "头痛、发热、鼻塞、流涕", Advantages: "起效快，适合普通感冒", SideEffects: "偶见困倦、口干"},
			{Name: "对乙酰氨基酚片", Category: "退烧药", Description: "解热镇痛药", UsageMethod: "口服，一次1片，间隔4-6小时", Indications: "发热、轻中度疼痛", Advantages: "退热平稳，耐受性好", SideEffects: "过量可致肝损伤"},
			{Name: "急支糖浆", Category: "止咳药", Description: "清热化痰，宣肺止咳", UsageMethod: "口服，一次20-30毫升，一日3-4次", Indications: "咳嗽、咳痰", Advantages: "中成药，口感易接受", SideEffects: "偶见胃肠不适"},
			{Name: "布洛芬缓释胶囊", Category: "止痛药", Description: "非甾体抗炎药", UsageMethod: "口服，一次1粒，一日2次", Indications: "头痛、关节痛、牙痛", Advantages: "镇痛持续时间长", SideEffects: "可能刺激胃肠道"},
			{Name: "阿莫西林胶囊", Category: "抗生素", Description: "青霉素类抗生素", UsageMethod: "口服，一次2粒，一日3次", Indications: "细菌性感染", Advantages: "抗菌谱广", SideEffects: "青霉素过敏者禁用"},
			{Name: "氯雷他定片", Category: "抗过敏药", Description: "抗组胺药", UsageMethod: "口服，一次1片，一日1次", Indications: "过敏性鼻炎、荨麻疹", Advantages: "不易嗜睡", SideEffects: "偶见头痛、口干"},
			{Name: "硝苯地平缓释片", Category: "降压药", Description: "钙通道阻滞剂", UsageMethod: "口服，一次1片，一日1-2次", Indications: "高血压", Advantages: "降压平稳", SideEffects: "可能出现面部潮红"},
			{Name: "二甲双胍片", Category: "降糖药", Description: "双胍类降糖药", UsageMethod: "口服，随餐服用", Indications: "2型糖尿病", Advantages: "不增加体重", SideEffects: "初期可有胃肠反应"},
			{Name: "维生素C片", Category: "常用药物", Description: "维生素补充剂", UsageMethod: "口服，一次1片，一日1次", Indications: "维生素C缺乏", Advantages: "日常保健", SideEffects: "大剂量可致腹泻"},
		}
		for _, d := range drugs {
			if err := drugRepo.Create(txCtx, d); err != nil {
				return fmt.Errorf("seed drug %s: %w", d.Name, err)
			}
		}
	}

	return tx.Commit(ctx)
}
