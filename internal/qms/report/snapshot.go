package report

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// DefaultFetchTimeout 单域拉取默认超时
const DefaultFetchTimeout = 15 * time.Second

// Fetcher 各业务域数据源。窗口化的域接收统计区间，
// 状态型的域（供应商、设备、文件、指标）始终取全量。
type Fetcher interface {
	Issues(ctx context.Context, r Range) ([]entity.Issue, error)
	Costs(ctx context.Context, r Range) ([]entity.QualityCost, error)
	Complaints(ctx context.Context, r Range) ([]entity.Complaint, error)
	Audits(ctx context.Context, r Range) ([]entity.Audit, error)
	Quarantine(ctx context.Context, r Range) ([]entity.QuarantineRecord, error)
	Deviations(ctx context.Context, r Range) ([]entity.Deviation, error)

	Suppliers(ctx context.Context) ([]entity.Supplier, error)
	Equipment(ctx context.Context) ([]entity.Equipment, error)
	Documents(ctx context.Context) ([]entity.Document, error)
	KPIs(ctx context.Context) ([]entity.KPI, error)
	QualityGoals(ctx context.Context) ([]entity.QualityGoal, error)
	Benchmarks(ctx context.Context) ([]entity.Benchmark, error)
	RiskAssessments(ctx context.Context) ([]entity.RiskAssessment, error)
}

// Snapshot 一次完整的质量报表快照
type Snapshot struct {
	ID          string    `json:"id"`
	Period      Period    `json:"period"`
	PeriodLabel string    `json:"period_label"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	GeneratedAt time.Time `json:"generated_at"`

	// 拉取失败的业务域；对应指标为零值，快照整体仍然可用
	FailedDomains []string `json:"failed_domains,omitempty"`

	Issues     IssueMetrics      `json:"issues"`
	Suppliers  SupplierMetrics   `json:"suppliers"`
	Costs      CostMetrics       `json:"costs"`
	Complaints ComplaintMetrics  `json:"complaints"`
	Equipment  EquipmentMetrics  `json:"equipment"`
	Audits     AuditMetrics      `json:"audits"`
	Quarantine QuarantineMetrics `json:"quarantine"`
	Deviations DeviationMetrics  `json:"deviations"`
	Documents  DocumentMetrics   `json:"documents"`

	HighCostIssues []CostRankedIssue `json:"high_cost_issues"`
	HighRPNIssues  []RPNRankedIssue  `json:"high_rpn_issues"`
	Recurring      []RecurringGroup  `json:"recurring"`

	QualityWall  QualityWall  `json:"quality_wall"`
	Heatmap      Heatmap      `json:"heatmap"`
	TodayActions ActionList   `json:"today_actions"`
	Alerts       AlertBundle  `json:"alerts"`
	CostAnomaly  *CostAnomaly `json:"cost_anomaly,omitempty"`

	KPIs            []entity.KPI            `json:"kpis"`
	QualityGoals    []entity.QualityGoal    `json:"quality_goals"`
	Benchmarks      []entity.Benchmark      `json:"benchmarks"`
	RiskAssessments []entity.RiskAssessment `json:"risk_assessments"`
}

// Engine 报表聚合引擎
type Engine struct {
	fetcher      Fetcher
	fetchTimeout time.Duration
	now          func() time.Time
}

// EngineOption 引擎可选配置
type EngineOption func(*Engine)

// WithFetchTimeout 设置单域拉取超时
func WithFetchTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.fetchTimeout = d
		}
	}
}

// WithClock 替换时钟，测试用
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(fetcher Fetcher, opts ...EngineOption) *Engine {
	e := &Engine{
		fetcher:      fetcher,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeSnapshot 并发拉取全部业务域并聚合为一份快照。
// 单域失败只记入FailedDomains，仅上游ctx取消会让整次调用失败。
func (e *Engine) ComputeSnapshot(ctx context.Context, period Period) (*Snapshot, error) {
	now := e.now()
	window, label := period.Resolve(now)

	var (
		issues      []entity.Issue
		costs       []entity.QualityCost
		complaints  []entity.Complaint
		audits      []entity.Audit
		quarantine  []entity.QuarantineRecord
		deviations  []entity.Deviation
		suppliers   []entity.Supplier
		equipments  []entity.Equipment
		documents   []entity.Document
		kpis        []entity.KPI
		goals       []entity.QualityGoal
		benchmarks  []entity.Benchmark
		assessments []entity.RiskAssessment
	)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)

	fetch := func(domain string, fn func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fctx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
			defer cancel()
			if err := fn(fctx); err != nil {
				mu.Lock()
				failed = append(failed, domain)
				mu.Unlock()
			}
		}()
	}

	fetch("issues", func(ctx context.Context) (err error) {
		issues, err = e.fetcher.Issues(ctx, window)
		return
	})
	fetch("costs", func(ctx context.Context) (err error) {
		costs, err = e.fetcher.Costs(ctx, window)
		return
	})
	fetch("complaints", func(ctx context.Context) (err error) {
		complaints, err = e.fetcher.Complaints(ctx, window)
		return
	})
	fetch("audits", func(ctx context.Context) (err error) {
		audits, err = e.fetcher.Audits(ctx, window)
		return
	})
	fetch("quarantine", func(ctx context.Context) (err error) {
		quarantine, err = e.fetcher.Quarantine(ctx, window)
		return
	})
	fetch("deviations", func(ctx context.Context) (err error) {
		deviations, err = e.fetcher.Deviations(ctx, window)
		return
	})
	fetch("suppliers", func(ctx context.Context) (err error) {
		suppliers, err = e.fetcher.Suppliers(ctx)
		return
	})
	fetch("equipment", func(ctx context.Context) (err error) {
		equipments, err = e.fetcher.Equipment(ctx)
		return
	})
	fetch("documents", func(ctx context.Context) (err error) {
		documents, err = e.fetcher.Documents(ctx)
		return
	})
	fetch("kpis", func(ctx context.Context) (err error) {
		kpis, err = e.fetcher.KPIs(ctx)
		return
	})
	fetch("quality_goals", func(ctx context.Context) (err error) {
		goals, err = e.fetcher.QualityGoals(ctx)
		return
	})
	fetch("benchmarks", func(ctx context.Context) (err error) {
		benchmarks, err = e.fetcher.Benchmarks(ctx)
		return
	})
	fetch("risk_assessments", func(ctx context.Context) (err error) {
		assessments, err = e.fetcher.RiskAssessments(ctx)
		return
	})

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Strings(failed)

	snap := &Snapshot{
		ID:            uuid.New().String()[:32],
		Period:        period,
		PeriodLabel:   label,
		WindowStart:   window.Start,
		WindowEnd:     window.End,
		GeneratedAt:   now,
		FailedDomains: failed,

		Issues:     AggregateIssues(issues, now),
		Suppliers:  AggregateSuppliers(suppliers),
		Costs:      AggregateCosts(costs),
		Complaints: AggregateComplaints(complaints, now),
		Equipment:  AggregateEquipment(equipments, now),
		Audits:     AggregateAudits(audits),
		Quarantine: AggregateQuarantine(quarantine),
		Deviations: AggregateDeviations(deviations),
		Documents:  DocumentMetrics{Total: len(documents)},

		HighCostIssues: TopCostIssues(issues, costs),
		HighRPNIssues:  TopRPNIssues(issues),
		Recurring:      RecurringIssues(issues),

		QualityWall:  RankDepartments(issues),
		Heatmap:      BuildHeatmap(issues),
		TodayActions: BuildActionList(issues, equipments, now),
		Alerts:       BuildAlerts(issues, equipments, documents, costs, now),

		KPIs:            kpis,
		QualityGoals:    goals,
		Benchmarks:      benchmarks,
		RiskAssessments: assessments,
	}
	snap.CostAnomaly = snap.Alerts.CostAnomaly

	return snap, nil
}
