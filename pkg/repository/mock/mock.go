package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

// In-memory test doubles for the repository interfaces.

type ResourceRepo struct {
	Resources []models.Resource
	NextID    int64
	Err       error
}

var _ repository.ResourceRepo = (*ResourceRepo)(nil)

func (m *ResourceRepo) CreateResource(ctx context.Context, res *models.Resource) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.NextID++
	res.ID = m.NextID
	m.Resources = append(m.Resources, *res)
	return res.ID, nil
}

func (m *ResourceRepo) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Resources {
		if m.Resources[i].ID == id {
			out := m.Resources[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (m *ResourceRepo) ListResources(ctx context.Context, f repository.ListFilter) ([]models.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Resource
	for _, res := range m.Resources {
		if res.IsActive == f.IncludeInactive {
			continue
		}
		if f.Type != "" && res.Type != f.Type {
			continue
		}
		if f.Search != "" {
			term := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(res.Name), term) &&
				!strings.Contains(strings.ToLower(res.Address), term) &&
				!strings.Contains(strings.ToLower(res.Description), term) {
				continue
			}
		}
		out = append(out, res)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}

func (m *ResourceRepo) UpdateResource(ctx context.Context, res *models.Resource) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Resources {
		if m.Resources[i].ID == res.ID {
			m.Resources[i] = *res
			return true, nil
		}
	}
	return false, nil
}

func (m *ResourceRepo) DeleteResource(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Resources {
		if m.Resources[i].ID == id {
			m.Resources = append(m.Resources[:i], m.Resources[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *ResourceRepo) NearbyResources(ctx context.Context, box repository.BoundingBox) ([]models.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Resource
	for _, res := range m.Resources {
		if !res.IsActive {
			continue
		}
		if abs(res.Latitude-box.Lat) > box.LatDelta {
			continue
		}
		if box.LngDelta != nil && abs(res.Longitude-box.Lng) > *box.LngDelta {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// JobRepo is safe for concurrent use; the sweeper exercises it from a
// background goroutine.
type JobRepo struct {
	mu          sync.Mutex
	Jobs        []models.Job
	NextID      int64
	Deactivated int64
	Err         error
}

// DeactivatedCount reads the sweep counter under the lock.
func (m *JobRepo) DeactivatedCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Deactivated
}

var _ repository.JobRepo = (*JobRepo)(nil)

func (m *JobRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.NextID++
	j.ID = m.NextID
	m.Jobs = append(m.Jobs, *j)
	return j.ID, nil
}

func (m *JobRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Jobs {
		if m.Jobs[i].ID == id {
			out := m.Jobs[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (m *JobRepo) ListJobs(ctx context.Context, f repository.ListFilter) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Job
	for _, j := range m.Jobs {
		if j.IsActive == f.IncludeInactive {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *JobRepo) UpdateJob(ctx context.Context, j *models.Job) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Jobs {
		if m.Jobs[i].ID == j.ID {
			m.Jobs[i] = *j
			return true, nil
		}
	}
	return false, nil
}

func (m *JobRepo) DeleteJob(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Jobs {
		if m.Jobs[i].ID == id {
			m.Jobs = append(m.Jobs[:i], m.Jobs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *JobRepo) NearbyJobs(ctx context.Context, box repository.BoundingBox) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Job
	for _, j := range m.Jobs {
		if !j.IsActive || j.Latitude == nil || j.Longitude == nil {
			continue
		}
		if abs(*j.Latitude-box.Lat) > box.LatDelta {
			continue
		}
		if box.LngDelta != nil && abs(*j.Longitude-box.Lng) > *box.LngDelta {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *JobRepo) DeactivateJobsBefore(ctx context.Context, cutoff int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for i := range m.Jobs {
		if m.Jobs[i].IsActive && m.Jobs[i].PostedDate < cutoff {
			m.Jobs[i].IsActive = false
			n++
		}
	}
	m.Deactivated += n
	return n, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
