package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

// DefaultKeywords returns the built-in Portuguese keyword lists. List order
// is significant and must survive any round-trip through configuration.
func DefaultKeywords() domain.Keywords {
	return domain.Keywords{
		Productive: []string{
			"urgente", "problema", "ajuda", "suporte", "defeito", "bug", "erro",
			"falha", "solicitação", "atraso", "cancelar", "reembolso",
			"devolução", "dúvida", "questão", "impedimento", "urgência",
			"chamado", "incidente",
		},
		Unproductive: []string{
			"obrigado", "feedback", "parabéns", "ótimo", "excelente", "legal",
			"bem", "concluído", "finalizado", "perfeito", "ótima", "agradeço",
			"convite", "newsletter", "marketing", "promoção", "feliz",
			"boas notícias", "sucesso", "informação", "atualização",
		},
	}
}

// LoadKeywords reads keyword lists from a YAML file, falling back to the
// built-in defaults when no path is configured.
func LoadKeywords(path string) (domain.Keywords, error) {
	if path == "" {
		return DefaultKeywords(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Keywords{}, fmt.Errorf("read keywords file: %w", err)
	}

	var kw domain.Keywords
	if err := yaml.Unmarshal(raw, &kw); err != nil {
		return domain.Keywords{}, fmt.Errorf("parse keywords file: %w", err)
	}
	if len(kw.Productive) == 0 || len(kw.Unproductive) == 0 {
		return domain.Keywords{}, fmt.Errorf("keywords file %s must define non-empty productive and unproductive lists", path)
	}
	return kw, nil
}
