package reporters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cookie-analytics/internal/shared/filestorages"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists")
)

const reportExt = ".csv"

// ReportStore keeps a copy of each run's rendered report, keyed by run ID.
// Reports are write-once: a second Put for the same run fails with ErrReportAlreadyExists.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, runID string, report []byte) (string, error)
	Get(ctx context.Context, runID string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Put(ctx context.Context, runID string, report []byte) (string, error) {
	key := s.getKey(runID)
	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(report), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExists
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return key, nil
}

func (s *reportStore) Get(ctx context.Context, runID string) ([]byte, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return data, nil
}

// List returns the run IDs of stored reports, oldest first (run IDs are ULIDs).
func (s *reportStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	runIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		if path.Dir(key) != s.dir || !strings.HasSuffix(key, reportExt) {
			continue
		}
		runIDs = append(runIDs, strings.TrimSuffix(path.Base(key), reportExt))
	}
	return runIDs, nil
}

func (s *reportStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s%s", s.dir, runID, reportExt)
}
