// Package service contains the use cases of the application: the analysis
// orchestrator and the authentication collaborator.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"resumeapi/internal/analyzer"
	"resumeapi/internal/extract"
	"resumeapi/internal/model"
	"resumeapi/internal/nlp"
	"resumeapi/internal/storage"
	"resumeapi/internal/worker"
)

// ErrNoText is the extraction failure: unsupported, corrupt, or empty
// document content. It is recovered into a structured error payload at the
// handler, never surfaced as a transport error.
var ErrNoText = errors.New("could not extract text from the uploaded file")

// Upload is one document handed to the orchestrator: raw bytes plus the
// caller-declared filename. It lives only for the duration of one analysis
// call.
type Upload struct {
	Data     []byte
	Filename string
}

// AnalysisService sequences extraction, detection, scoring, and suggestion
// generation into one report per document.
type AnalysisService interface {
	// Analyze produces a report for one document, optionally measured
	// against a job description. ErrNoText marks extraction failure; any
	// other error is an unexpected fault.
	Analyze(ctx context.Context, up Upload, jobDescription string) (*model.AnalysisReport, error)

	// AnalyzeBatch processes documents strictly in input order. The result
	// always has exactly one entry per input, positions preserved; a
	// per-document failure never aborts the remaining documents.
	AnalyzeBatch(ctx context.Context, ups []Upload, jobDescription string) []model.BulkItem
}

// analysisService is the concrete orchestrator. All components are
// read-only after construction, so one instance serves all requests.
type analysisService struct {
	extractor extract.TextExtractor
	contacts  *analyzer.ContactExtractor
	sections  *analyzer.SectionDetector
	keywords  *analyzer.KeywordExtractor
	scorer    *analyzer.ScoringEngine
	suggester *analyzer.SuggestionEngine
	pool      *worker.Pool
	archive   storage.ObjectStore // nil disables upload archiving
	now       func() time.Time
}

// NewAnalysisService constructs the orchestrator. The NLP model must be
// fully initialized before the first call is dispatched. archive may be nil
// to disable best-effort upload archiving.
func NewAnalysisService(m *nlp.Model, ex extract.TextExtractor, pool *worker.Pool, archive storage.ObjectStore) AnalysisService {
	contacts := analyzer.NewContactExtractor()
	return &analysisService{
		extractor: ex,
		contacts:  contacts,
		sections:  analyzer.NewSectionDetector(contacts),
		keywords:  analyzer.NewKeywordExtractor(m),
		scorer:    analyzer.NewScoringEngine(),
		suggester: analyzer.NewSuggestionEngine(),
		pool:      pool,
		archive:   archive,
		now:       time.Now,
	}
}

// Analyze dispatches the CPU-bound analysis to the bounded worker pool so a
// single long document cannot stall unrelated requests.
func (s *analysisService) Analyze(ctx context.Context, up Upload, jobDescription string) (*model.AnalysisReport, error) {
	var report *model.AnalysisReport
	err := s.pool.Do(ctx, func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("analysis fault: %v", r)
			}
		}()
		report, err = s.analyze(ctx, up, jobDescription)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// AnalyzeBatch runs the single-document flow per input, in order, isolating
// failures per item.
func (s *analysisService) AnalyzeBatch(ctx context.Context, ups []Upload, jobDescription string) []model.BulkItem {
	results := make([]model.BulkItem, 0, len(ups))
	for i, up := range ups {
		report, err := s.Analyze(ctx, up, jobDescription)
		if err != nil {
			results = append(results, model.BulkItem{Err: &model.BulkError{
				FileIndex: i,
				Filename:  up.Filename,
				Error:     err.Error(),
			}})
			continue
		}
		idx := i
		report.FileIndex = &idx
		results = append(results, model.BulkItem{Report: report})
	}
	return results
}

func (s *analysisService) analyze(ctx context.Context, up Upload, jobDescription string) (*model.AnalysisReport, error) {
	text, ok := s.extractor.Extract(up.Data, up.Filename)
	if !ok {
		return nil, ErrNoText
	}

	s.archiveUpload(ctx, up)

	contact := s.contacts.Extract(text)
	sections := s.sections.Detect(text)

	resumeKeywords, err := s.keywords.ResumeKeywords(text)
	if err != nil {
		return nil, fmt.Errorf("resume keywords: %w", err)
	}
	jobKeywords, err := s.keywords.JobKeywords(jobDescription)
	if err != nil {
		return nil, fmt.Errorf("job keywords: %w", err)
	}

	score := s.scorer.Score(text, sections, jobKeywords)
	suggestions := s.suggester.Suggest(text, sections, jobKeywords)

	matched, missing := analyzer.MatchKeywords(jobKeywords, text)
	if len(missing) > 10 {
		missing = missing[:10]
	}
	matchPercentage := 0.0
	if len(jobKeywords) > 0 {
		matchPercentage = round1(float64(len(matched)) / float64(len(jobKeywords)) * 100)
	}

	return &model.AnalysisReport{
		AnalysisDate: s.now(),
		FileInfo: model.FileInfo{
			Filename: up.Filename,
			FileType: extract.FileType(up.Filename),
		},
		ContactInfo:      contact,
		SectionsDetected: sections,
		ATSScore: model.ATSScore{
			Score:      score.Score,
			MaxScore:   score.MaxScore,
			Percentage: round1(float64(score.Score) / float64(score.MaxScore) * 100),
			Feedback:   score.Feedback,
		},
		Keywords: model.KeywordReport{
			ResumeKeywords:  emptyIfNil(resumeKeywords),
			JobKeywords:     emptyIfNil(jobKeywords),
			MatchedKeywords: emptyIfNil(matched),
			MissingKeywords: emptyIfNil(missing),
			MatchPercentage: matchPercentage,
		},
		Suggestions:       suggestions,
		WordCount:         analyzer.WordCount(text),
		HasJobDescription: jobDescription != "",
	}, nil
}

// archiveUpload stores the raw upload bytes best-effort; failures are
// logged and never affect the analysis result.
func (s *analysisService) archiveUpload(ctx context.Context, up Upload) {
	if s.archive == nil {
		return
	}
	key := "resumes/" + uuid.New().String() + filepath.Ext(up.Filename)
	_, err := s.archive.Put(ctx, key, bytes.NewReader(up.Data), storage.PutOptions{
		Size:        int64(len(up.Data)),
		ContentType: "application/octet-stream",
		Metadata:    map[string]string{"original-filename": up.Filename},
	})
	if err != nil {
		log.Printf("archive upload failed: %v", err)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
