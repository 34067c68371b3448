package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/vantix-dev/supplierguard/dtos"
	"github.com/vantix-dev/supplierguard/shared"
	"google.golang.org/genai"
)

const insightsPreamble = "You are a compliance insights assistant. Analyze the following compliance records and provide insights. You can change contract terms to improve compliance."

type InsightsService struct {
	complianceRecordRepository shared.ComplianceRecordRepository
	client                     *genai.Client
	model                      string
	timeout                    time.Duration
}

func NewInsightsService(complianceRecordRepository shared.ComplianceRecordRepository, apiKey, model string, timeout time.Duration) (*InsightsService, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create genai client")
	}

	return &InsightsService{
		complianceRecordRepository: complianceRecordRepository,
		client:                     client,
		model:                      model,
		timeout:                    timeout,
	}, nil
}

// GenerateInsights serializes the full compliance record set under a fixed
// instruction preamble and asks the model for a free-text summary. The
// provider call is bounded by the configured timeout.
func (s *InsightsService) GenerateInsights(ctx context.Context) (string, error) {
	records, err := s.complianceRecordRepository.All()
	if err != nil {
		return "", err
	}

	prompt, err := s.buildPrompt(dtos.ComplianceRecordsToDTO(records))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "insights provider request failed")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("insights provider returned an empty response")
	}

	return text, nil
}

func (s *InsightsService) buildPrompt(records []dtos.ComplianceRecordDTO) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}

	return insightsPreamble + "\nCompliance Records:\n" + string(data), nil
}
