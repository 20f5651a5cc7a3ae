package repository

import (
	"context"
	"strings"

	"github.com/tempdev/site/internal/model"
)

// JSONContactRepository stores submissions in a JSON array file (contacts.json).
type JSONContactRepository struct {
	file *jsonFile[model.ContactSubmission]
}

// NewJSONContactRepository opens path, creating an empty array if it is missing.
func NewJSONContactRepository(path string) (*JSONContactRepository, error) {
	f, err := openJSONFile[model.ContactSubmission](path)
	if err != nil {
		return nil, err
	}
	return &JSONContactRepository{file: f}, nil
}

var _ ContactRepository = (*JSONContactRepository)(nil)

// Save appends c to the array.
func (r *JSONContactRepository) Save(_ context.Context, c *model.ContactSubmission) error {
	return r.file.update(func(items []model.ContactSubmission) ([]model.ContactSubmission, error) {
		return append(items, *c), nil
	})
}

// UpdateStatus sets the delivery status of the submission with the given id.
func (r *JSONContactRepository) UpdateStatus(_ context.Context, id, status string) error {
	return r.file.update(func(items []model.ContactSubmission) ([]model.ContactSubmission, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
}

// List returns submissions newest first, filtered by status and paginated.
// Status "" or "all" returns all submissions.
func (r *JSONContactRepository) List(_ context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	items, err := r.file.read()
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(opts.Status)
	filterStatus := status != "" && status != "all"

	var out []*model.ContactSubmission
	skipped := 0
	for i := len(items) - 1; i >= 0; i-- {
		c := items[i]
		if filterStatus && c.Status != status {
			continue
		}
		if skipped < opts.Offset {
			skipped++
			continue
		}
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
		out = append(out, &c)
	}
	return out, nil
}
