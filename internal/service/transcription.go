package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	app_errors "omnichat/client/internal/errors"
)

// Transcribe converts base64-encoded WAV audio to text with the local speech engine.
func (s *ChatService) Transcribe(ctx context.Context, wavBase64 string) (string, error) {
	if err := s.gate.Check("transcribe"); err != nil {
		return "", err
	}
	wavBase64 = strings.TrimSpace(wavBase64)
	if wavBase64 == "" {
		return "", fmt.Errorf("%w: audio is required", app_errors.ErrValidation)
	}
	audio, err := base64.StdEncoding.DecodeString(wavBase64)
	if err != nil {
		return "", fmt.Errorf("%w: audio is not valid base64", app_errors.ErrValidation)
	}
	if mtype := mimetype.Detect(audio); !mtype.Is("audio/wav") {
		return "", fmt.Errorf("%w: expected WAV audio, got %s", app_errors.ErrValidation, mtype.String())
	}

	text, err := s.backend.TranscribeAudio(ctx, wavBase64)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Transcription failed: %v", err))
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	slog.Debug("Audio transcribed", "bytes", len(audio), "chars", len(text))
	return strings.TrimSpace(text), nil
}
