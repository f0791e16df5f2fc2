package scheduler

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func noopJob(ctx context.Context) error { return nil }

func TestScheduleRejectsBadExpression(t *testing.T) {
	s := New(testLogger())
	if err := s.Schedule("not a cron expr", "bad", noopJob); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

func TestStartRequiresJobs(t *testing.T) {
	s := New(testLogger())
	if err := s.Start(); err == nil {
		t.Error("expected error starting with no jobs")
	}
}

func TestLifecycle(t *testing.T) {
	s := New(testLogger())
	if err := s.Schedule("@every 1h", "reports", noopJob); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !s.IsRunning() {
		t.Error("expected scheduler running")
	}
	if err := s.Start(); err == nil {
		t.Error("expected error on double start")
	}
	if s.NextRun().IsZero() {
		t.Error("expected a next run time")
	}

	if err := s.Schedule("@every 1h", "late", noopJob); err == nil {
		t.Error("expected error scheduling while running")
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.IsRunning() {
		t.Error("expected scheduler stopped")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("stop should be idempotent, got %v", err)
	}
}
