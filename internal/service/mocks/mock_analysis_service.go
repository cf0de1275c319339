package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, up service.Upload, jobDescription string) (*model.AnalysisReport, error) {
	args := m.Called(ctx, up, jobDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisReport), args.Error(1)
}

func (m *MockAnalysisService) AnalyzeBatch(ctx context.Context, ups []service.Upload, jobDescription string) []model.BulkItem {
	args := m.Called(ctx, ups, jobDescription)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.BulkItem)
}
