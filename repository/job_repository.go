package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// JobRepository handles store operations for indexing jobs. The
// reconciliation worker runs platform-wide without a session, so jobs
// are saved under the firm id they already carry.
type JobRepository struct {
	kv store.KV
}

// NewJobRepository creates a new indexing job repository
func NewJobRepository(kv store.KV) *JobRepository {
	return &JobRepository{kv: kv}
}

func (r *JobRepository) readAll(ctx context.Context) ([]*models.IndexingJob, error) {
	payload, err := r.kv.Get(ctx, store.TableKey(store.TableIndexingJobs))
	if err != nil {
		return nil, fmt.Errorf("read indexing jobs: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var jobs []*models.IndexingJob
	if err := json.Unmarshal(payload, &jobs); err != nil {
		return nil, nil
	}
	return jobs, nil
}

// Pending returns every job still awaiting reconciliation, across all
// firms.
func (r *JobRepository) Pending(ctx context.Context) ([]*models.IndexingJob, error) {
	jobs, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*models.IndexingJob
	for _, j := range jobs {
		if j.Status == models.JobPending {
			out = append(out, j)
		}
	}
	return out, nil
}

// Save upserts the job by id.
func (r *JobRepository) Save(ctx context.Context, job *models.IndexingJob) error {
	jobs, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, j := range jobs {
		if j.ID == job.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		jobs[idx] = job
	} else {
		jobs = append(jobs, job)
	}

	payload, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("marshal indexing jobs: %w", err)
	}
	if err := r.kv.Set(ctx, store.TableKey(store.TableIndexingJobs), payload); err != nil {
		return fmt.Errorf("write indexing jobs: %w", err)
	}
	return nil
}
