package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

func newCompletionServer(t *testing.T, captured *capturedRequest, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + reply + `"}}]}`))
	}))
}

func TestGenerateProductiveUsesLargerTokenBudget(t *testing.T) {
	var captured capturedRequest
	server := newCompletionServer(t, &captured, "Recebemos sua solicitação. ")
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	got, err := gen.Generate(context.Background(), domain.CategoryProductive, "Preciso de SUPORTE urgente!")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Recebemos sua solicitação." {
		t.Fatalf("expected trimmed model text, got %q", got)
	}
	if captured.MaxTokens != maxTokensProductive {
		t.Fatalf("expected max_tokens %d, got %d", maxTokensProductive, captured.MaxTokens)
	}
	if captured.Model != DefaultModel {
		t.Fatalf("expected default model, got %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
	// The prompt must carry the original casing, not a normalized copy.
	if !strings.Contains(captured.Messages[1].Content, "Preciso de SUPORTE urgente!") {
		t.Fatalf("prompt missing original text: %s", captured.Messages[1].Content)
	}
}

func TestGenerateUnproductiveUsesSmallerTokenBudget(t *testing.T) {
	var captured capturedRequest
	server := newCompletionServer(t, &captured, "Nós que agradecemos!")
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if _, err := gen.Generate(context.Background(), domain.CategoryUnproductive, "obrigado"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if captured.MaxTokens != maxTokensUnproductive {
		t.Fatalf("expected max_tokens %d, got %d", maxTokensUnproductive, captured.MaxTokens)
	}
	if !strings.Contains(captured.Messages[1].Content, "Improdutivo") {
		t.Fatalf("prompt missing category instruction: %s", captured.Messages[1].Content)
	}
}

func TestGenerateSurfacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if _, err := gen.Generate(context.Background(), domain.CategoryProductive, "texto"); err == nil {
		t.Fatalf("expected error from upstream failure")
	}
}

func TestGenerateWithoutCredentialShortCircuits(t *testing.T) {
	gen := NewGenerator(Config{})
	_, err := gen.Generate(context.Background(), domain.CategoryProductive, "texto")
	if !domain.IsKind(err, domain.ErrGeneratorNotConfigured) {
		t.Fatalf("expected ErrGeneratorNotConfigured, got %v", err)
	}
}
