package dto

import "github.com/selebrow/dbquota/pkg/models"

func NewCycleReport(r *models.CycleReport) *CycleReport {
	res := &CycleReport{
		ID:        r.ID,
		Started:   r.Started,
		Duration:  r.Duration,
		Processed: r.Processed,
		Revoked:   r.Revoked,
		Restored:  r.Restored,
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}
	return res
}
