package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

var ErrAllModelsFailed = errors.New("no available model succeeded")

// Preferred fallback order, most capable first. Overridable via GEMINI_MODELS
// (comma-separated).
var defaultGeminiModels = []string{
	"models/gemini-1.5-pro-latest",
	"models/gemini-1.5-flash-latest",
	"models/gemini-pro",
	"models/gemini-pro-vision",
}

type GeminiService struct {
	apiKey  string
	baseURL string
	models  []string
	client  *http.Client
}

// NewGeminiService builds a client for the generative-text API from the
// environment: GEMINI_API_KEY, GEMINI_API_URL (tests point this at a stub
// server) and GEMINI_MODELS.
func NewGeminiService() *GeminiService {
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1"
	}

	modelList := defaultGeminiModels
	if raw := os.Getenv("GEMINI_MODELS"); raw != "" {
		modelList = nil
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				modelList = append(modelList, m)
			}
		}
	}

	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: strings.TrimRight(baseURL, "/"),
		models:  modelList,
		client:  &http.Client{},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type modelListResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

// GenerateDescription asks each configured model in order for a short visitor
// description of the painting and returns the first usable answer together
// with the model that produced it.
func (s *GeminiService) GenerateDescription(paintingName, artist string) (string, string, error) {
	prompt := fmt.Sprintf("Write 100-150 words about %q by %s. Include history, style, impact.", paintingName, artist)

	payload, err := json.Marshal(generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", "", err
	}

	for _, model := range s.models {
		description, err := s.generateWith(model, payload)
		if err != nil {
			log.Printf("Gemini model %s failed: %v\n", model, err)
			continue
		}
		log.Printf("Gemini description generated with %s\n", model)
		return description, model, nil
	}

	return "", "", ErrAllModelsFailed
}

// generateWith issues a single generateContent call; one attempt per model,
// no same-model retry.
func (s *GeminiService) generateWith(model string, payload []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, model, url.QueryEscape(s.apiKey))

	resp, err := s.client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("response contained no candidates")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", errors.New("response contained empty text")
	}
	return text, nil
}

// ListModels returns the upstream models that support text generation. Used
// diagnostically from the admin UI; GenerateDescription does not consult it.
func (s *GeminiService) ListModels() ([]string, error) {
	endpoint := fmt.Sprintf("%s/models?key=%s", s.baseURL, url.QueryEscape(s.apiKey))

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed modelListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	var names []string
	for _, model := range parsed.Models {
		for _, method := range model.SupportedGenerationMethods {
			if method == "generateContent" {
				names = append(names, model.Name)
				break
			}
		}
	}
	return names, nil
}
