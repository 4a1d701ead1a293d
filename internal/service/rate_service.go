package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/repository"
)

// RateSvc is an implementation of the service.RateService interface.
// It fetches the benchmark lending rate from the configured XML feed,
// caches it in Redis, and falls back to the configured default when the
// feed is unreachable.
type RateSvc struct {
	repos  *repository.Repository
	logger *logrus.Logger
	config *configs.Config
	client *http.Client
}

// NewRateService creates a new RateSvc
func NewRateService(deps Dependencies) *RateSvc {
	return &RateSvc{
		repos:  deps.Repos,
		logger: deps.Logger,
		config: deps.Config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetBenchmarkRate returns the current benchmark lending rate. Cache first,
// then the feed, then the configured default.
func (s *RateSvc) GetBenchmarkRate(ctx context.Context) (float64, error) {
	cached, ok, err := s.repos.RateCache.Get(ctx)
	if err != nil {
		s.logger.Warnf("Rate cache unavailable: %v", err)
	} else if ok {
		return cached, nil
	}

	rate, err := s.fetchRate(ctx)
	if err != nil {
		s.logger.Warnf("Failed to fetch benchmark rate: %v. Using default rate of %.2f%%.", err, s.config.Rates.DefaultRate)
		return s.config.Rates.DefaultRate, nil
	}

	s.cacheRate(ctx, rate)

	return rate, nil
}

// Refresh fetches the feed and replaces the cached rate
func (s *RateSvc) Refresh(ctx context.Context) error {
	rate, err := s.fetchRate(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh benchmark rate: %w", err)
	}

	s.cacheRate(ctx, rate)
	s.logger.Infof("Benchmark rate refreshed: %.2f%%", rate)

	return nil
}

func (s *RateSvc) cacheRate(ctx context.Context, rate float64) {
	ttl := time.Duration(s.config.Rates.CacheMinutes) * time.Minute

	if err := s.repos.RateCache.Set(ctx, rate, ttl); err != nil {
		s.logger.Warnf("Failed to cache benchmark rate: %v", err)
	}
}

// fetchRate downloads and parses the rate feed XML
func (s *RateSvc) fetchRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.Rates.FeedURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rate feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read rate feed: %w", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return 0, fmt.Errorf("failed to parse rate feed: %w", err)
	}

	rateElem := doc.FindElement(fmt.Sprintf("//RateList/Rate[@code='%s']", s.config.Rates.RateCode))
	if rateElem == nil {
		return 0, fmt.Errorf("rate %s not found in feed", s.config.Rates.RateCode)
	}

	valueElem := rateElem.FindElement("Value")
	if valueElem == nil {
		return 0, errors.New("value element not found in rate")
	}

	// Some feeds use a comma as the decimal separator
	valueStr := strings.Replace(strings.TrimSpace(valueElem.Text()), ",", ".", 1)

	rate, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate value %q: %w", valueStr, err)
	}

	if rate < 0 {
		return 0, fmt.Errorf("rate feed returned negative rate %f", rate)
	}

	return rate, nil
}
