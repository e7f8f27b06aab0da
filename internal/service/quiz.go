package service

import (
	"context"
	"math/rand"
	"time"

	"photoquiz/internal/domain"
	"photoquiz/internal/dto"
	"photoquiz/internal/logger"
	"photoquiz/internal/util"
	"photoquiz/internal/validation"

	"go.uber.org/zap"
)

// Detached deadline for best-effort artifact writes; the request does not
// wait for them and may already be gone.
const persistTimeout = 5 * time.Second

// QuizService defines the image-to-quiz generation operation
type QuizService interface {
	// GenerateQuiz runs the full pipeline for one request: validate the
	// parameters, describe the image, synthesize a draft, normalize it.
	GenerateQuiz(ctx context.Context, image domain.ImageInput, difficulty, category string) (*dto.QuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	describer   domain.ImageDescriber
	synthesizer domain.QuizSynthesizer
	sink        domain.ArtifactSink
	validator   *validation.Validator
}

// NewQuizService creates a new instance of quizService. The sink may be
// nil, which disables artifact persistence entirely.
func NewQuizService(
	describer domain.ImageDescriber,
	synthesizer domain.QuizSynthesizer,
	sink domain.ArtifactSink,
	validator *validation.Validator,
) QuizService {
	return &quizService{
		describer:   describer,
		synthesizer: synthesizer,
		sink:        sink,
		validator:   validator,
	}
}

// GenerateQuiz implements QuizService. The stages are strictly sequential:
// synthesis needs the description, normalization needs the draft. All
// fatal errors carry the failing stage; artifact persistence never fails
// the request.
func (s *quizService) GenerateQuiz(ctx context.Context, image domain.ImageInput, difficulty, category string) (*dto.QuizResponse, error) {
	parsedDifficulty, parsedCategory, verrs := s.validator.ValidateGenerateQuizRequest(difficulty, category, len(image.Data) > 0)
	if len(verrs) > 0 {
		return nil, verrs
	}

	requestID := util.NewULID()
	log := logger.Get().With(
		zap.String("request_id", requestID),
		zap.String("difficulty", string(parsedDifficulty)),
		zap.String("category", string(parsedCategory)),
	)
	log.Info("Starting quiz generation",
		zap.Int("image_bytes", len(image.Data)),
		zap.String("mime_type", image.MIMEType))

	description, err := s.describer.Describe(ctx, image)
	if err != nil {
		log.Error("Description extraction failed", zap.Error(err))
		return nil, err
	}
	s.persist(requestID, "description", description)

	draft, err := s.synthesizer.Synthesize(ctx, description, parsedDifficulty, parsedCategory)
	if err != nil {
		log.Error("Quiz synthesis failed", zap.Error(err))
		return nil, err
	}
	s.persist(requestID, "draft", draft)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	record, err := domain.NormalizeDraft(draft, parsedDifficulty, parsedCategory, rng)
	if err != nil {
		log.Error("Draft normalization failed", zap.Error(err))
		return nil, err
	}
	s.persist(requestID, "quiz", record)

	log.Info("Quiz generated",
		zap.String("title", record.Title),
		zap.Int("option_count", len(record.Options)))
	return dto.NewQuizResponse(record), nil
}

// persist hands an artifact to the sink without blocking the pipeline.
// The request context is not used: it may be cancelled while the write is
// still worth keeping for debugging.
func (s *quizService) persist(requestID, name string, artifact interface{}) {
	if s.sink == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.sink.Persist(ctx, requestID+"/"+name, artifact); err != nil {
			logger.Get().Warn("Failed to persist artifact",
				zap.String("request_id", requestID),
				zap.String("artifact", name),
				zap.Error(err))
		}
	}()
}
