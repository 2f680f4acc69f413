package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"wa-bazaar-be/pkg/transcribe"
)

// WhisperTranscriber talks to a whisper.cpp-compatible server over HTTP.
type WhisperTranscriber struct {
	BaseURL string
	Client  *http.Client
}

// Ensure WhisperTranscriber implements Transcriber
var _ transcribe.Transcriber = &WhisperTranscriber{}

func NewWhisperTranscriber(baseURL string) *WhisperTranscriber {
	return &WhisperTranscriber{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type whisperResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

func (w *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType, language string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileNameFor(mimeType))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return "", fmt.Errorf("write language field: %w", err)
		}
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("write format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	url := w.BaseURL + "/inference"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var whisperResp whisperResponse
	if err := json.Unmarshal(bodyBytes, &whisperResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if whisperResp.Error != "" {
		return "", fmt.Errorf("whisper returned error: %s", whisperResp.Error)
	}

	return strings.TrimSpace(whisperResp.Text), nil
}

func fileNameFor(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "ogg"):
		return "audio.ogg"
	case strings.Contains(mimeType, "mpeg"), strings.Contains(mimeType, "mp3"):
		return "audio.mp3"
	case strings.Contains(mimeType, "wav"):
		return "audio.wav"
	default:
		return "audio.bin"
	}
}
