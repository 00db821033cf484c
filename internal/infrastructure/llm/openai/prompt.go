package openai

import (
	"fmt"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

const systemPrompt = "Você é um assistente de e-mail profissional e prestativo."

// Productive replies get a larger budget: they carry resolution or
// acknowledgment substance. Unproductive replies are a short thank-you.
const (
	maxTokensProductive   = 150
	maxTokensUnproductive = 80
)

func maxTokensFor(category domain.Category) int {
	if category == domain.CategoryProductive {
		return maxTokensProductive
	}
	return maxTokensUnproductive
}

// buildUserPrompt embeds the original, un-normalized email text so the
// model sees natural casing and punctuation.
func buildUserPrompt(category domain.Category, emailContent string) string {
	if category == domain.CategoryProductive {
		return fmt.Sprintf(`Baseado no seguinte e-mail classificado como 'Produtivo', gere uma resposta formal, educada e concisa que confirme o recebimento, agradeça o contato e informe que a solicitação está sendo analisada.
Não inclua saudações iniciais como "Prezado(a)" e nem despedidas como "Atenciosamente". Apenas o corpo da resposta.

Email:
"%s"

Resposta:`, emailContent)
	}

	return fmt.Sprintf(`Baseado no seguinte e-mail classificado como 'Improdutivo', gere uma resposta curta, cordial e informal que seja um simples agradecimento ou reconhecimento.
Não inclua saudações iniciais como "Prezado(a)" e nem despedidas como "Atenciosamente". Apenas o corpo da resposta.

Email:
"%s"

Resposta:`, emailContent)
}
