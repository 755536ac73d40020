package application

import (
	"bytes"
	"context"
	"errors"
	"log"
	"time"

	"github.com/linskybing/catalyst/internal/domain/voice"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/integrations/storage"
)

const transcriptionTimeout = 2 * time.Minute

var ErrEmptyAudio = errors.New("uploaded audio file is empty")

type VoiceService struct {
	Transcriber integrations.Transcriber
	// Archive receives the raw upload when set.
	Archive integrations.ObjectStore

	now func() time.Time
}

func NewVoiceService(transcriber integrations.Transcriber, archive integrations.ObjectStore) *VoiceService {
	return &VoiceService{
		Transcriber: transcriber,
		Archive:     archive,
		now:         time.Now,
	}
}

// Transcribe sends one recorded file to the speech-to-text provider.
func (s *VoiceService) Transcribe(ctx context.Context, filename, mimeType string, audio []byte) (*voice.Transcription, error) {
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	if !s.Transcriber.Configured() {
		return nil, integrations.ErrMissingAPIKey
	}
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	ctx, cancel := context.WithTimeout(ctx, transcriptionTimeout)
	defer cancel()

	archiveKey := ""
	if s.Archive != nil {
		key := storage.AudioKey(filename, s.now())
		if err := s.Archive.Put(ctx, key, mimeType, bytes.NewReader(audio), int64(len(audio))); err != nil {
			log.Printf("[Voice] archiving %s failed: %v", filename, err)
		} else {
			archiveKey = key
		}
	}

	result, err := s.Transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}
	result.Metadata.ArchiveKey = archiveKey
	return &result, nil
}

func (s *VoiceService) APIKeyStatus() voice.APIKeyStatus {
	if s.Transcriber.Configured() {
		return voice.APIKeyStatus{Configured: true}
	}
	return voice.APIKeyStatus{Configured: false, Message: "DEEPGRAM_API_KEY not found in environment variables"}
}
