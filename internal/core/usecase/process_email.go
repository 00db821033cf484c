package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
	"github.com/sttve/mail-classifier-ai/internal/core/ports"
)

const defaultGenerationTimeout = 30 * time.Second

// Fallback messages embedded in the reply field when generation fails. The
// classification result is still valid without a generated reply, so the
// request as a whole succeeds.
const (
	fallbackGenerationFailed = "Não foi possível gerar uma resposta automática no momento. Por favor, tente novamente mais tarde."
	fallbackNotConfigured    = "Geração de resposta indisponível: a chave da API de completions não está configurada."
)

type ProcessEmailUseCase struct {
	extractor  ports.TextExtractor
	normalizer ports.Normalizer
	classifier ports.EmailClassifier
	generator  ports.ReplyGenerator
	genTimeout time.Duration
}

func NewProcessEmailUseCase(
	extractor ports.TextExtractor,
	normalizer ports.Normalizer,
	classifier ports.EmailClassifier,
	generator ports.ReplyGenerator,
	genTimeout time.Duration,
) *ProcessEmailUseCase {
	if genTimeout <= 0 {
		genTimeout = defaultGenerationTimeout
	}
	return &ProcessEmailUseCase{
		extractor:  extractor,
		normalizer: normalizer,
		classifier: classifier,
		generator:  generator,
		genTimeout: genTimeout,
	}
}

// Process runs extract -> normalize -> classify -> generate. Extraction
// failures fail the request; generation failures degrade to a fallback
// message with Generated=false.
func (uc *ProcessEmailUseCase) Process(ctx context.Context, input domain.RawInput) (domain.ReplyResult, error) {
	text, err := uc.extractor.Extract(ctx, input)
	if err != nil {
		return domain.ReplyResult{}, fmt.Errorf("extract email content: %w", err)
	}

	category := uc.classifier.Classify(uc.normalizer.Normalize(text))

	genCtx, cancel := context.WithTimeout(ctx, uc.genTimeout)
	defer cancel()

	reply, err := uc.generator.Generate(genCtx, category, text)
	if err != nil {
		return domain.ReplyResult{
			Category:          category,
			SuggestedResponse: fallbackFor(err),
			Generated:         false,
		}, nil
	}

	return domain.ReplyResult{
		Category:          category,
		SuggestedResponse: reply,
		Generated:         true,
	}, nil
}

func fallbackFor(err error) string {
	if domain.IsKind(err, domain.ErrGeneratorNotConfigured) {
		return fallbackNotConfigured
	}
	return fallbackGenerationFailed
}
