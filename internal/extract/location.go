package extract

import (
	"context"
	"io"

	"github.com/jonathan/company-scraper/internal/geocode"
	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultGeocodeConcurrency resolves places one at a time.
const DefaultGeocodeConcurrency = 1

// Locator resolves GPE entities into structured locations.
type Locator struct {
	resolver    geocode.Resolver
	concurrency int
	log         *logrus.Logger
}

// NewLocator creates a Locator. Concurrency below 1 falls back to the default.
func NewLocator(resolver geocode.Resolver, concurrency int, log *logrus.Logger) *Locator {
	if concurrency < 1 {
		concurrency = DefaultGeocodeConcurrency
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Locator{resolver: resolver, concurrency: concurrency, log: log}
}

// Locate geocodes each distinct GPE entity. Places that fail to resolve or
// resolve without a country are skipped, as are lookups that panic. Output
// follows first-seen order.
func (l *Locator) Locate(ctx context.Context, doc *nlp.Document) []types.StructuredLocation {
	places := uniqueStrings(doc.EntitiesWithLabel(types.LabelGPE))
	locations := make([]types.StructuredLocation, 0, len(places))
	if len(places) == 0 || l.resolver == nil {
		return locations
	}

	resolved := make([]*types.StructuredLocation, len(places))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, place := range places {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					l.log.WithField("place", place).WithField("panic", r).Debug("geocoding panicked, skipping place")
				}
			}()
			resolved[i] = l.resolve(ctx, place)
			return nil
		})
	}
	_ = g.Wait()

	for _, loc := range resolved {
		if loc != nil {
			locations = append(locations, *loc)
		}
	}
	return locations
}

func (l *Locator) resolve(ctx context.Context, place string) *types.StructuredLocation {
	entry := l.log.WithField("place", place)

	components, err := l.resolver.Resolve(ctx, place)
	if err != nil {
		entry.WithError(err).Debug("geocoding failed, skipping place")
		return nil
	}
	if components == nil || components.Country == "" {
		entry.Debug("no country for place, skipping")
		return nil
	}

	loc := &types.StructuredLocation{Country: components.Country}
	if city := components.Locality(); city != "" {
		loc.City = &city
	}
	return loc
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
