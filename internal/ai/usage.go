package ai

import "google.golang.org/genai"

// Usage captures the token counts the Gemini API reports for one call.
type Usage struct {
	PromptTokens int64
	OutputTokens int64
	TotalTokens  int64
}

func (u Usage) Add(other Usage) Usage {
	return Usage{
		PromptTokens: u.PromptTokens + other.PromptTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
		TotalTokens:  u.TotalTokens + other.TotalTokens,
	}
}

func usageFromResponse(resp *genai.GenerateContentResponse) Usage {
	if resp == nil || resp.UsageMetadata == nil {
		return Usage{}
	}
	md := resp.UsageMetadata
	return Usage{
		PromptTokens: int64(md.PromptTokenCount),
		OutputTokens: int64(md.CandidatesTokenCount),
		TotalTokens:  int64(md.TotalTokenCount),
	}
}
