// Package services provides internal service implementations for the OSLC backend.
package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/osv-scanner/pkg/models"

	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
	"github.com/oslc/oslc-backend/util"
)

// AdvisoryFetcher retrieves OSV advisories for a package URL.
type AdvisoryFetcher interface {
	FetchAdvisories(ctx context.Context, purl string) ([]models.Vulnerability, error)
}

// StaticAdvisoryFetcher is the default fetcher. It serves advisories from an
// in-memory index keyed by base PURL, which is how feed imports hand their
// advisory payloads to the tagging pass.
type StaticAdvisoryFetcher struct {
	advisories map[string][]models.Vulnerability
}

// NewStaticAdvisoryFetcher builds a fetcher over a pre-loaded advisory index.
func NewStaticAdvisoryFetcher(index map[string][]models.Vulnerability) *StaticAdvisoryFetcher {
	return &StaticAdvisoryFetcher{advisories: index}
}

// FetchAdvisories returns the advisories recorded for the given PURL.
func (f *StaticAdvisoryFetcher) FetchAdvisories(_ context.Context, purl string) ([]models.Vulnerability, error) {
	if purl == "" {
		return nil, fmt.Errorf("purl is empty")
	}
	base, err := util.GetBasePURL(purl)
	if err != nil {
		return nil, err
	}
	return f.advisories[base], nil
}

var _ AdvisoryFetcher = (*StaticAdvisoryFetcher)(nil)

// VulnerabilitySummary aggregates the advisories matched against one release.
type VulnerabilitySummary struct {
	ReleaseID    string   `json:"release_id"`
	IDs          []string `json:"ids"`
	HighestScore float64  `json:"highest_score"`
	Severity     string   `json:"severity"`
}

// VulnerabilityService tags cataloged releases with the advisories whose
// affected ranges cover their version.
type VulnerabilityService struct {
	Fetcher AdvisoryFetcher
}

// TagRelease matches advisories against one release and records the hits on
// the release itself. Returns the summary of what matched.
func (s *VulnerabilityService) TagRelease(ctx context.Context, os *resolver.OS, release *model.Release) (*VulnerabilitySummary, error) {
	purl := util.ReleasePURL(os.Label, release.Version.Key())
	advisories, err := s.Fetcher.FetchAdvisories(ctx, purl)
	if err != nil {
		return nil, fmt.Errorf("fetching advisories for %s: %w", purl, err)
	}

	summary := &VulnerabilitySummary{ReleaseID: release.ID()}
	vectors := []string{}

	for _, adv := range advisories {
		if !util.IsVersionAffectedAny(release.Version.Key(), adv.Affected) {
			continue
		}
		release.AddVulnerability(adv.ID)
		summary.IDs = append(summary.IDs, adv.ID)
		for _, sev := range adv.Severity {
			if sev.Type == models.SeverityCVSSV3 || sev.Type == models.SeverityCVSSV4 {
				vectors = append(vectors, sev.Score)
			}
		}
	}

	if len(vectors) > 0 {
		summary.HighestScore = util.HighestCVSSScore(vectors)
		summary.Severity = util.GetSeverityRating(summary.HighestScore)
	}

	return summary, nil
}

// TagCatalog runs TagRelease over every release of an OS catalog. Per-release
// fetch failures are logged and skipped so one bad advisory feed does not
// block the rest of the catalog.
func (s *VulnerabilityService) TagCatalog(ctx context.Context, os *resolver.OS) ([]*VulnerabilitySummary, error) {
	cat, err := os.Catalog()
	if err != nil {
		return nil, err
	}

	summaries := []*VulnerabilitySummary{}
	for _, release := range cat.All() {
		summary, err := s.TagRelease(ctx, os, release)
		if err != nil {
			log.Printf("Worker: advisory tagging failed for %s: %v", release.ID(), err)
			continue
		}
		if len(summary.IDs) > 0 {
			summaries = append(summaries, summary)
		}
	}
	return summaries, nil
}
