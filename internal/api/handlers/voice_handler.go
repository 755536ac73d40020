package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/meeting"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/pkg/response"
)

const maxAudioBytes = 200 << 20

type VoiceHandler struct {
	voice   *application.VoiceService
	meeting *application.MeetingService
}

func NewVoiceHandler(voice *application.VoiceService, meeting *application.MeetingService) *VoiceHandler {
	return &VoiceHandler{voice: voice, meeting: meeting}
}

// TranscribeFile godoc
// @Summary Transcribe an audio recording
// @Description Sends the whole file to the speech-to-text provider in one request.
// @Tags voice
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 200 {object} voice.Transcription
// @Failure 400 {object} response.ErrorResponse "Missing or empty file"
// @Failure 500 {object} response.ErrorResponse "Transcription failed"
// @Failure 503 {object} response.ErrorResponse "API key not configured"
// @Failure 504 {object} response.ErrorResponse "Timed out"
// @Router /voice/transcribe-file [post]
func (h *VoiceHandler) TranscribeFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fh.Size > maxAudioBytes {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "file too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()
	audio, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	log.Printf("[Voice] transcribing %s (%d bytes)", fh.Filename, len(audio))
	result, err := h.voice.Transcribe(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), audio)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyAudio):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, integrations.ErrMissingAPIKey):
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: h.voice.APIKeyStatus().Message})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusGatewayTimeout, response.ErrorResponse{Error: "Transcription timed out after 2 minutes. Please try a smaller file."})
		default:
			log.Printf("[Voice] transcription error: %v", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("File transcription failed: %v", err)})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// APIKeyStatus godoc
// @Summary Report whether the speech-to-text key is configured
// @Tags voice
// @Produce json
// @Success 200 {object} voice.APIKeyStatus
// @Router /voice/api-key-status [get]
func (h *VoiceHandler) APIKeyStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.voice.APIKeyStatus())
}

// ProcessMeeting godoc
// @Summary Turn a meeting transcript into tickets
// @Description Analyzes the transcript, creates the project, assignees, labels and tickets it describes, and returns a Mermaid diagram of them. Tickets created before a failure are kept.
// @Tags voice
// @Accept json
// @Produce json
// @Param request body meeting.ProcessMeetingRequest true "Transcript"
// @Success 200 {object} meeting.Result
// @Failure 400 {object} response.ErrorResponse "Transcript too short"
// @Failure 500 {object} response.ErrorResponse "Workflow stage failed"
// @Failure 504 {object} response.ErrorResponse "Timed out"
// @Router /voice/process-meeting [post]
func (h *VoiceHandler) ProcessMeeting(c *gin.Context) {
	var req meeting.ProcessMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.meeting.ProcessMeeting(c.Request.Context(), req)
	if err != nil {
		var stageErr *application.StageError
		switch {
		case errors.Is(err, application.ErrTranscriptTooShort):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusGatewayTimeout, response.ErrorResponse{Error: "Meeting processing timed out after 5 minutes. Please try a shorter transcript."})
		case errors.As(err, &stageErr):
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: stageErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Failed to process meeting: %v", err)})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
