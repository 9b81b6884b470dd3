// Package snapshot orchestrates one fetch → aggregate → render pass over
// the live PnL data and frames the outcome for each entry shape: a text
// report for direct runs and an API-Gateway envelope for the Lambda.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"pnlsnap/internal/core"
	applog "pnlsnap/internal/log"
	"pnlsnap/internal/report"
)

// Fetcher returns one parsed PnL snapshot document.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*core.Document, error)
}

// Publisher forwards a rendered snapshot to a side channel.
type Publisher interface {
	PublishSnapshot(ctx context.Context, p report.Payload) error
}

// Service runs the snapshot pipeline. Each invocation builds fresh
// accumulators; nothing is shared between calls.
type Service struct {
	fetcher   Fetcher
	publisher Publisher // optional, may be nil
	logger    *applog.Logger
	out       io.Writer
	now       func() time.Time
}

func NewService(fetcher Fetcher, publisher Publisher, logger *applog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		publisher: publisher,
		logger:    logger.WithComponent(applog.ComponentSnapshot),
		out:       os.Stdout,
		now:       time.Now,
	}
}

type errorBody struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// Run drives the direct-run contract: fetch, aggregate and write the
// text report to the output sink. Failures at any stage are logged and
// returned; no partial report is ever written.
func (s *Service) Run(ctx context.Context) error {
	agg, err := s.collect(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Snapshot failed", applog.FieldError, err)
		return err
	}

	now := s.now()
	s.logger.InfoContext(ctx, "Calculated PnL statistics",
		applog.FieldTimestamp, now.Format(report.TimestampLayout),
		applog.FieldTimezone, report.TimezoneLabel(now),
		applog.FieldTotalPnL, agg.Total,
		applog.FieldCategories, len(agg.ByCategory),
		applog.FieldDesks, len(agg.ByDesk))

	fmt.Fprintln(s.out, report.RenderText(agg))
	return nil
}

// Handle drives the request/response contract. Success yields a 200
// envelope carrying the JSON payload; a failure at any stage, including
// a panic, yields a 500 envelope with a message and timestamp. It never
// lets an error or panic escape its boundary.
func (s *Service) Handle(ctx context.Context) (resp events.APIGatewayProxyResponse) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected error: %v", r)
			s.logger.ErrorContext(ctx, "Snapshot handler panicked", applog.FieldError, err)
			resp = s.errorResponse(err)
		}
	}()

	agg, err := s.collect(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Snapshot failed", applog.FieldError, err)
		return s.errorResponse(err)
	}

	payload := report.BuildPayload(agg, s.now())

	if s.publisher != nil {
		// The response is the contract; a dead queue only costs the side
		// channel, so publish failures are logged and swallowed.
		if err := s.publisher.PublishSnapshot(ctx, payload); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish snapshot", applog.FieldError, err)
		}
	}

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode payload", applog.FieldError, err)
		return s.errorResponse(fmt.Errorf("encode payload: %w", err))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func (s *Service) collect(ctx context.Context) (*core.AggregateResult, error) {
	s.logger.InfoContext(ctx, "Querying PnL dashboard API")
	doc, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve data from API: %w", err)
	}

	agg, err := core.Aggregate(doc)
	if err != nil {
		return nil, fmt.Errorf("calculate statistics: %w", err)
	}
	return agg, nil
}

func (s *Service) errorResponse(err error) events.APIGatewayProxyResponse {
	body, merr := json.Marshal(errorBody{
		Error:     err.Error(),
		Timestamp: s.now().Format(time.RFC3339),
	})
	if merr != nil {
		// errorBody holds two strings; this cannot realistically fail.
		body = []byte(`{"error":"internal error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Body:       string(body),
	}
}
