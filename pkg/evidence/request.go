package evidence

import (
	"context"
	"fmt"
	"time"

	"github.com/borsuksoftware/conical-es/pkg/criteria"
	"github.com/borsuksoftware/conical-es/pkg/dates"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

// Metadata is the top level description of the evidence set to create.
type Metadata struct {
	Product        string
	Name           string
	Description    string
	Tags           []string
	Links          []models.ExternalLink
	RefDate        dates.Raw
	ConflictPolicy models.ConflictPolicy
}

// Validate checks the fields that must be present before anything is sent.
func (m Metadata) Validate() error {
	if m.Product == "" {
		return fmt.Errorf("%w: no target product specified", criteria.ErrConfiguration)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: no evidence set name specified", criteria.ErrConfiguration)
	}
	for _, tag := range m.Tags {
		if err := models.ValidateTagName(tag); err != nil {
			return fmt.Errorf("%w: %v", criteria.ErrConfiguration, err)
		}
	}
	for _, link := range m.Links {
		if link.Name == "" || link.URL == "" {
			return fmt.Errorf("%w: links need a name and a url", criteria.ErrConfiguration)
		}
	}
	return nil
}

// ResolveRefDate parses the reference date in the resolver's location even
// when a format is given: unlike criteria dates it is never assumed to be UTC.
func (m Metadata) ResolveRefDate(resolver *dates.Resolver) (*time.Time, error) {
	return resolver.ResolveRaw(m.RefDate, dates.AssumeLocal, "ref date")
}

// Build assembles the creation request.
func Build(resolver *dates.Resolver, meta Metadata, sources []models.SourceReference) (models.EvidenceSetRequest, error) {
	refDate, err := meta.ResolveRefDate(resolver)
	if err != nil {
		return models.EvidenceSetRequest{}, err
	}

	policy := meta.ConflictPolicy
	if policy == "" {
		policy = models.PolicyNotAllowed
	}

	req := models.EvidenceSetRequest{
		Name:           meta.Name,
		RefDate:        refDate,
		Tags:           append([]string{}, meta.Tags...),
		ExternalLinks:  append([]models.ExternalLink{}, meta.Links...),
		ConflictPolicy: policy,
		Sources:        sources,
	}
	if meta.Description != "" {
		d := meta.Description
		req.Description = &d
	}
	return req, nil
}

// Creator is the remote evidence set creation capability.
type Creator interface {
	CreateEvidenceSet(ctx context.Context, product models.Product, req models.EvidenceSetRequest) (models.EvidenceSet, error)
}

// Submit performs exactly one creation call. Errors are returned unchanged.
func Submit(ctx context.Context, c Creator, product models.Product, req models.EvidenceSetRequest) (models.EvidenceSet, error) {
	return c.CreateEvidenceSet(ctx, product, req)
}
