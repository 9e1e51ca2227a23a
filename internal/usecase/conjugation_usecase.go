package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/repository"
)

// Conjugator produces full conjugation tables for an infinitive.
type Conjugator interface {
	Conjugate(infinitive string, lang entity.Language) (*entity.Conjugation, bool)
}

// ConjugationUsecase defines business logic for conjugation tables.
type ConjugationUsecase interface {
	Conjugate(ctx context.Context, infinitive string, language entity.Language) (*entity.Conjugation, error)
	Sync(ctx context.Context, candidates []entity.VerbCandidate) (*SyncReport, error)
	Get(ctx context.Context, language entity.Language, infinitive string) (*entity.StoredConjugation, error)
	List(ctx context.Context, query *repository.ListConjugationQuery) ([]entity.StoredConjugation, int64, error)
}

// SyncReport summarizes one Sync run.
type SyncReport struct {
	Inserted     int
	Skipped      int
	Unrecognized int
	Unsupported  int
}

// Total is the number of candidates accounted for.
func (r SyncReport) Total() int {
	return r.Inserted + r.Skipped + r.Unrecognized + r.Unsupported
}

const (
	_defaultLimit   = int32(20)
	_maxLimit       = int32(1000)
	_defaultWorkers = 4
)

// SyncWorkers bounds the number of candidates processed concurrently.
type SyncWorkers int

type conjugationUsecase struct {
	engine  Conjugator
	repo    repository.ConjugationRepository
	logger  logrus.FieldLogger
	workers int
	now     func() time.Time
}

func NewConjugationUsecase(engine Conjugator, repo repository.ConjugationRepository, logger logrus.FieldLogger, workers SyncWorkers) ConjugationUsecase {
	n := int(workers)
	if n <= 0 {
		n = _defaultWorkers
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &conjugationUsecase{engine: engine, repo: repo, logger: logger, workers: n, now: time.Now}
}

func (u *conjugationUsecase) Conjugate(_ context.Context, infinitive string, language entity.Language) (*entity.Conjugation, error) {
	infinitive, err := validateVerbKey(language, infinitive)
	if err != nil {
		return nil, err
	}
	conj, ok := u.engine.Conjugate(infinitive, language)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", infinitive, language, entity.ErrVerbNotRecognized)
	}
	return conj, nil
}

func (u *conjugationUsecase) Sync(ctx context.Context, candidates []entity.VerbCandidate) (*SyncReport, error) {
	var inserted, skipped, unrecognized, unsupported atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for _, raw := range candidates {
		cand := raw.Normalize()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := u.syncOne(gctx, cand)
			if err != nil {
				return err
			}
			switch outcome {
			case syncInserted:
				inserted.Add(1)
			case syncSkipped:
				skipped.Add(1)
			case syncUnrecognized:
				unrecognized.Add(1)
			case syncUnsupported:
				unsupported.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()

	report := &SyncReport{
		Inserted:     int(inserted.Load()),
		Skipped:      int(skipped.Load()),
		Unrecognized: int(unrecognized.Load()),
		Unsupported:  int(unsupported.Load()),
	}
	if err != nil {
		return report, fmt.Errorf("sync conjugations: %w", err)
	}
	u.logger.WithFields(logrus.Fields{
		"inserted":     report.Inserted,
		"skipped":      report.Skipped,
		"unrecognized": report.Unrecognized,
		"unsupported":  report.Unsupported,
	}).Info("conjugation sync finished")
	return report, nil
}

type syncOutcome int

const (
	syncInserted syncOutcome = iota
	syncSkipped
	syncUnrecognized
	syncUnsupported
)

func (u *conjugationUsecase) syncOne(ctx context.Context, cand entity.VerbCandidate) (syncOutcome, error) {
	log := u.logger.WithFields(logrus.Fields{"infinitive": cand.Infinitive, "language": cand.Language})
	if cand.Infinitive == "" || !cand.Language.IsConjugable() {
		log.Debug("skipping candidate in unsupported language")
		return syncUnsupported, nil
	}

	exists, err := u.repo.Exists(ctx, cand.Language, cand.Infinitive)
	if err != nil {
		return 0, fmt.Errorf("check %s/%s: %w", cand.Language, cand.Infinitive, err)
	}
	if exists {
		return syncSkipped, nil
	}

	conj, ok := u.engine.Conjugate(cand.Infinitive, cand.Language)
	if !ok {
		log.Debug("not a recognized verb pattern")
		return syncUnrecognized, nil
	}

	inserted, err := u.repo.Save(ctx, &entity.StoredConjugation{
		Conjugation: *conj,
		Translation: cand.Translation,
		CreatedAt:   u.now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("save %s/%s: %w", cand.Language, cand.Infinitive, err)
	}
	if !inserted {
		return syncSkipped, nil
	}
	log.Debug("conjugation stored")
	return syncInserted, nil
}

func (u *conjugationUsecase) Get(ctx context.Context, language entity.Language, infinitive string) (*entity.StoredConjugation, error) {
	infinitive, err := validateVerbKey(language, infinitive)
	if err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, language, infinitive)
}

func (u *conjugationUsecase) List(ctx context.Context, query *repository.ListConjugationQuery) ([]entity.StoredConjugation, int64, error) {
	if query == nil {
		query = &repository.ListConjugationQuery{}
	}
	if query.PageSize <= 0 {
		query.PageSize = _defaultLimit
	}
	if query.PageSize > _maxLimit {
		query.PageSize = _maxLimit
	}
	if query.PageNo <= 0 {
		query.PageNo = 1
	}
	return u.repo.List(ctx, query)
}

func validateVerbKey(language entity.Language, infinitive string) (string, error) {
	infinitive = entity.NormalizeWordToken(infinitive)
	if infinitive == "" {
		return "", entity.ErrInvalidInfinitive
	}
	if !language.IsConjugable() {
		return "", fmt.Errorf("%q: %w", language, entity.ErrUnsupportedLanguage)
	}
	return infinitive, nil
}
