package jobs

import (
	"context"
	"log/slog"

	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"

	"github.com/robfig/cron/v3"
)

// RecordLister is satisfied by ports.RecordRepository.
type RecordLister interface {
	List(ctx context.Context, model string) ([]*record.Record, error)
}

// SchemaAuditJob validates every stored record against the current schema of
// its model. Records written before a schema change, or while validation
// was off, show up as logged violations. Nothing is modified.
type SchemaAuditJob struct {
	lister   RecordLister
	catalog  *record.Catalog
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSchemaAuditJob creates an audit job running on schedule.
func NewSchemaAuditJob(lister RecordLister, catalog *record.Catalog, schedule string, logger *slog.Logger) *SchemaAuditJob {
	return &SchemaAuditJob{
		lister:   lister,
		catalog:  catalog,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "schema_audit_job"),
	}
}

func (j *SchemaAuditJob) Name() string {
	return "schema audit job"
}

// AuditReport counts audited and violating records per model.
type AuditReport struct {
	Checked   map[string]int
	Violating map[string]int
}

// Run audits all models once.
func (j *SchemaAuditJob) Run(ctx context.Context) (AuditReport, error) {
	report := AuditReport{Checked: map[string]int{}, Violating: map[string]int{}}

	for _, name := range j.catalog.Names() {
		decl, err := j.catalog.Get(name)
		if err != nil {
			continue
		}
		if len(decl.Schema) == 0 {
			continue
		}

		records, err := j.lister.List(ctx, name)
		if err != nil {
			return report, err
		}

		label := name + ".audit"
		for _, rec := range records {
			policy := &countingPolicy{next: schema.NewWarnPolicy(j.logger.With("record", rec.ID().String()))}
			if err = schema.Validate(ctx, decl.Schema, rec.Values(), label, policy); err != nil {
				return report, err
			}
			report.Checked[name]++
			if policy.count > 0 {
				report.Violating[name]++
			}
		}
	}

	return report, nil
}

// Start schedules Run.
func (j *SchemaAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		report, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Schema audit failed", "error", err)
			return
		}
		for model, n := range report.Violating {
			j.logger.WarnContext(ctx, "Stored records violate schema",
				"model", model, "violating", n, "checked", report.Checked[model])
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schema audit job started", "schedule", j.schedule)
	return nil
}

func (j *SchemaAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Schema audit job stopped")
}

type countingPolicy struct {
	next  schema.Policy
	count int
}

func (p *countingPolicy) Report(ctx context.Context, label, key string, violation error) error {
	p.count++
	return p.next.Report(ctx, label, key, violation)
}
