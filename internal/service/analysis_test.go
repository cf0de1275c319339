package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	extractMocks "resumeapi/internal/extract/mocks"
	"resumeapi/internal/nlp"
	"resumeapi/internal/storage"
	storageMocks "resumeapi/internal/storage/mocks"
	"resumeapi/internal/worker"
)

var (
	testModelOnce sync.Once
	testModel     *nlp.Model
	testModelErr  error
)

func sharedModel(t *testing.T) *nlp.Model {
	t.Helper()
	testModelOnce.Do(func() {
		testModel, testModelErr = nlp.Load()
	})
	require.NoError(t, testModelErr)
	return testModel
}

const sampleResume = `Jane Doe
jane@example.com | 555-123-4567

Summary
Senior Python developer with cloud experience.

Work History
Built Docker deployments and REST services at Acme.

Education
BSc, State University.

Skills
Python, Docker, SQL.`

// panicExtractor simulates an extractor bug to exercise fault isolation.
type panicExtractor struct{}

func (panicExtractor) Extract([]byte, string) (string, bool) {
	panic("index out of range")
}

func newTestService(t *testing.T, ex *extractMocks.MockTextExtractor, archive storage.ObjectStore) *analysisService {
	t.Helper()
	svc := NewAnalysisService(sharedModel(t), ex, worker.NewPool(2), archive).(*analysisService)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAnalyze(t *testing.T) {
	t.Run("extraction failure", func(t *testing.T) {
		ex := new(extractMocks.MockTextExtractor)
		ex.On("Extract", mock.Anything, "broken.pdf").Return("", false).Once()

		svc := newTestService(t, ex, nil)
		report, err := svc.Analyze(context.Background(), Upload{Data: []byte{1}, Filename: "broken.pdf"}, "")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrNoText)

		ex.AssertExpectations(t)
	})

	t.Run("full report without job description", func(t *testing.T) {
		ex := new(extractMocks.MockTextExtractor)
		ex.On("Extract", mock.Anything, "resume.txt").Return(sampleResume, true).Once()

		svc := newTestService(t, ex, nil)
		report, err := svc.Analyze(context.Background(), Upload{Data: []byte(sampleResume), Filename: "resume.txt"}, "")
		require.NoError(t, err)

		assert.Equal(t, "resume.txt", report.FileInfo.Filename)
		assert.Equal(t, "txt", report.FileInfo.FileType)
		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), report.AnalysisDate)

		require.NotNil(t, report.ContactInfo.Email)
		assert.Equal(t, "jane@example.com", *report.ContactInfo.Email)
		require.NotNil(t, report.ContactInfo.Phone)

		assert.True(t, report.SectionsDetected.ContactInfo)
		assert.True(t, report.SectionsDetected.Summary)
		assert.True(t, report.SectionsDetected.Experience)
		assert.True(t, report.SectionsDetected.Education)
		assert.True(t, report.SectionsDetected.Skills)

		assert.False(t, report.HasJobDescription)
		assert.Nil(t, report.FileIndex)

		// Slices are always present in the payload, never null
		assert.NotNil(t, report.Keywords.ResumeKeywords)
		assert.NotNil(t, report.Keywords.JobKeywords)
		assert.NotNil(t, report.Keywords.MatchedKeywords)
		assert.NotNil(t, report.Keywords.MissingKeywords)
		assert.Empty(t, report.Keywords.JobKeywords)
		assert.Zero(t, report.Keywords.MatchPercentage)

		assert.Positive(t, report.WordCount)
		assert.Positive(t, report.ATSScore.Score)
		assert.Equal(t, 100, report.ATSScore.MaxScore)
		assert.InDelta(t, float64(report.ATSScore.Score), report.ATSScore.Percentage, 0.001)

		ex.AssertExpectations(t)
	})

	t.Run("job description drives keyword match", func(t *testing.T) {
		ex := new(extractMocks.MockTextExtractor)
		ex.On("Extract", mock.Anything, "resume.txt").Return(sampleResume, true).Once()

		svc := newTestService(t, ex, nil)
		report, err := svc.Analyze(context.Background(),
			Upload{Data: []byte(sampleResume), Filename: "resume.txt"},
			"Looking for Python and Docker experience plus Kubernetes operations.")
		require.NoError(t, err)

		assert.True(t, report.HasJobDescription)
		assert.Contains(t, report.Keywords.JobKeywords, "python")
		assert.Contains(t, report.Keywords.MatchedKeywords, "python")
		assert.Contains(t, report.Keywords.MatchedKeywords, "docker")
		assert.Contains(t, report.Keywords.MissingKeywords, "kubernetes")
		assert.LessOrEqual(t, len(report.Keywords.MissingKeywords), 10)
		assert.Positive(t, report.Keywords.MatchPercentage)

		ex.AssertExpectations(t)
	})

	t.Run("panic inside analysis becomes an error", func(t *testing.T) {
		svc := NewAnalysisService(sharedModel(t), panicExtractor{}, worker.NewPool(1), nil).(*analysisService)

		report, err := svc.Analyze(context.Background(), Upload{Data: []byte{1}, Filename: "x.txt"}, "")

		assert.Nil(t, report)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "analysis fault")
	})
}

func TestAnalyze_Archive(t *testing.T) {
	t.Run("upload is archived under a generated key", func(t *testing.T) {
		ex := new(extractMocks.MockTextExtractor)
		ex.On("Extract", mock.Anything, "resume.txt").Return(sampleResume, true).Once()

		store := new(storageMocks.MockObjectStore)
		store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "resumes/") && strings.HasSuffix(key, ".txt")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutOptions) bool {
			return opt.Metadata["original-filename"] == "resume.txt"
		})).Return(storage.ObjectInfo{}, nil).Once()

		svc := newTestService(t, ex, store)
		_, err := svc.Analyze(context.Background(), Upload{Data: []byte(sampleResume), Filename: "resume.txt"}, "")
		require.NoError(t, err)

		store.AssertExpectations(t)
	})

	t.Run("archive failure does not fail the analysis", func(t *testing.T) {
		ex := new(extractMocks.MockTextExtractor)
		ex.On("Extract", mock.Anything, "resume.txt").Return(sampleResume, true).Once()

		store := new(storageMocks.MockObjectStore)
		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket unavailable")).Once()

		svc := newTestService(t, ex, store)
		report, err := svc.Analyze(context.Background(), Upload{Data: []byte(sampleResume), Filename: "resume.txt"}, "")

		require.NoError(t, err)
		assert.NotNil(t, report)

		store.AssertExpectations(t)
	})
}

func TestAnalyzeBatch(t *testing.T) {
	ex := new(extractMocks.MockTextExtractor)
	ex.On("Extract", mock.Anything, "good.txt").Return(sampleResume, true).Once()
	ex.On("Extract", mock.Anything, "bad.pdf").Return("", false).Once()
	ex.On("Extract", mock.Anything, "also-good.txt").Return(sampleResume, true).Once()

	svc := newTestService(t, ex, nil)
	items := svc.AnalyzeBatch(context.Background(), []Upload{
		{Data: []byte("a"), Filename: "good.txt"},
		{Data: []byte("b"), Filename: "bad.pdf"},
		{Data: []byte("c"), Filename: "also-good.txt"},
	}, "")

	require.Len(t, items, 3)

	require.NotNil(t, items[0].Report)
	require.NotNil(t, items[0].Report.FileIndex)
	assert.Equal(t, 0, *items[0].Report.FileIndex)

	require.NotNil(t, items[1].Err)
	assert.Equal(t, 1, items[1].Err.FileIndex)
	assert.Equal(t, "bad.pdf", items[1].Err.Filename)
	assert.Equal(t, ErrNoText.Error(), items[1].Err.Error)

	require.NotNil(t, items[2].Report)
	require.NotNil(t, items[2].Report.FileIndex)
	assert.Equal(t, 2, *items[2].Report.FileIndex)

	ex.AssertExpectations(t)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, round1(100.0/3.0))
	assert.Equal(t, 66.7, round1(200.0/3.0))
	assert.Equal(t, 50.0, round1(50.0))
}
